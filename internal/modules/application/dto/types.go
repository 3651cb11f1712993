package dto

// AddInput creates an application. Dates use the YYYY-MM-DD form; an empty
// AppliedDate means today and an empty Status means the first configured one.
type AddInput struct {
	Company        string `json:"company"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	AppliedDate    string `json:"applied_date"`
	ResumeRef      string `json:"resume_ref"`
	CoverLetterRef string `json:"cover_letter_ref"`
	Notes          string `json:"notes"`
}

// UpdateInput is a partial update; nil fields are not touched.
type UpdateInput struct {
	ID             string  `json:"-"`
	Company        *string `json:"company"`
	Role           *string `json:"role"`
	Status         *string `json:"status"`
	AppliedDate    *string `json:"applied_date"`
	ResumeRef      *string `json:"resume_ref"`
	CoverLetterRef *string `json:"cover_letter_ref"`
	Notes          *string `json:"notes"`
}

type ListInput struct {
	Statuses []string
	From     string
	To       string
}

type ApplicationOutput struct {
	ID             string `json:"id"`
	Company        string `json:"company"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	AppliedDate    string `json:"applied_date"`
	ResumeRef      string `json:"resume_ref,omitempty"`
	CoverLetterRef string `json:"cover_letter_ref,omitempty"`
	Notes          string `json:"notes,omitempty"`
	LastUpdated    string `json:"last_updated"`
}

type ResetOutput struct {
	Deleted int `json:"deleted"`
}
