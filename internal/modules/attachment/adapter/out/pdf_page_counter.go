package out

import (
	"context"
	"fmt"

	"rsc.io/pdf"

	attachmentout "hunttrack/internal/modules/attachment/port/out"
)

type PDFPageCounter struct{}

func NewPDFPageCounter() attachmentout.PageCounter {
	return &PDFPageCounter{}
}

func (PDFPageCounter) CountPages(_ context.Context, path string) (n int, err error) {
	// rsc.io/pdf panics on some malformed documents
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("read pdf: %v", r)
		}
	}()
	doc, err := pdf.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open pdf: %w", err)
	}
	return doc.NumPage(), nil
}
