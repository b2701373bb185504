package dto

import (
	"errors"
	"mime/multipart"
	"strings"
)

// StatementRequest represents an uploaded statement to parse or import.
type StatementRequest struct {
	File      *multipart.FileHeader `form:"file" binding:"required"`
	Password  string                `form:"password"`
	AccountID string                `form:"account_id"`
}

// Validate performs basic validation on the request
func (r *StatementRequest) Validate() error {
	if r.File == nil {
		return errors.New("statement file is required")
	}
	if !strings.HasSuffix(strings.ToLower(r.File.Filename), ".pdf") {
		return errors.New("statement must be a PDF file")
	}
	return nil
}
