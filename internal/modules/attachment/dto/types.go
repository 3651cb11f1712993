package dto

import "io"

type SaveInput struct {
	Kind     string
	Company  string
	Role     string
	FileName string
	Content  io.Reader
}

type AttachmentOutput struct {
	Ref        string `json:"ref"`
	Kind       string `json:"kind"`
	Size       int64  `json:"size"`
	Extension  string `json:"extension"`
	MIME       string `json:"mime"`
	Pages      int    `json:"pages,omitempty"`
	ModifiedAt string `json:"modified_at"`
}
