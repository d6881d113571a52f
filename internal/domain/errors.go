package domain

import (
	"encoding/json"
	"fmt"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	ErrInternal     ErrorCode = "INTERNAL_ERROR"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Extraction errors (per-document)
	ErrExtraction     ErrorCode = "EXTRACTION_ERROR"
	ErrOCRTimeout     ErrorCode = "OCR_TIMEOUT"
	ErrOCREmptyResult ErrorCode = "OCR_EMPTY_RESULT"
	ErrPDFDisabled    ErrorCode = "PDF_DISABLED"

	// Pipeline errors
	ErrUpstream ErrorCode = "UPSTREAM_ERROR"
	ErrRecovery ErrorCode = "RECOVERY_ERROR"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Raw     string    `json:"-"` // diagnostic excerpt of unparseable upstream output
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Helper functions for common errors
func NewInvalidInputError(message string) *DomainError {
	return NewError(ErrInvalidInput, message, nil)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(ErrInternal, message, err)
}

func NewExtractionError(message string, err error) *DomainError {
	return NewError(ErrExtraction, message, err)
}

func NewOCRTimeoutError() *DomainError {
	return NewError(ErrOCRTimeout,
		"Reading the image took too long. Try a smaller/clearer image or a plain-text file.", nil)
}

func NewOCREmptyResultError() *DomainError {
	return NewError(ErrOCREmptyResult,
		"No text could be read from the image. Try a smaller/clearer image or a plain-text file.", nil)
}

func NewPDFDisabledError() *DomainError {
	return NewError(ErrPDFDisabled,
		"PDF uploads are currently disabled. Please upload a plain-text file or an image instead.", nil)
}

func NewUpstreamError(message string, err error) *DomainError {
	return NewError(ErrUpstream, message, err)
}

// NewRecoveryError reports that the model output could not be turned into a
// valid quiz. rawExcerpt carries a truncated copy of the response for
// diagnostics.
func NewRecoveryError(message string, rawExcerpt string) *DomainError {
	return &DomainError{
		Code:    ErrRecovery,
		Message: message,
		Raw:     rawExcerpt,
	}
}
