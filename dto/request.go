package dto

import "errors"

// ScanTextRequest carries raw recognized text from the OCR collaborator.
type ScanTextRequest struct {
	RecognizedText string `json:"recognized_text" binding:"required"`
}

// Validate performs basic validation on the request
func (r *ScanTextRequest) Validate() error {
	if len(r.RecognizedText) < 10 {
		return ErrTextTooShort
	}
	return nil
}

// ScanQRRequest carries the decoded string from the QR collaborator.
type ScanQRRequest struct {
	DecodedString string `json:"decoded_string" binding:"required"`
}

// Validate performs basic validation on the request
func (r *ScanQRRequest) Validate() error {
	if r.DecodedString == "" {
		return errors.New("decoded_string is required")
	}
	return nil
}
