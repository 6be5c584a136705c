package dto

import "errors"

// Custom errors
var (
	ErrTextTooShort = errors.New("recognized text too short to parse")
	ErrNotPaymentQR = errors.New("decoded string is not a payment QR")
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Code    int    `json:"code"`
}

// ScanResponse wraps the draft returned to the expense form.
type ScanResponse struct {
	Draft       ExpenseDraft `json:"draft"`
	Source      string       `json:"source"` // "ocr" or "qr"
	ProcessedAt string       `json:"processed_at"`
}
