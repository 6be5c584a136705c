package client

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/makiuchi-d/gozxing"
	"github.com/makiuchi-d/gozxing/qrcode"
)

// QRClient decodes QR codes out of uploaded receipt images. Payment QRs
// carry a structured UPI URI, so a successful decode here skips the OCR
// path entirely.
type QRClient struct{}

func NewQRClient() *QRClient {
	return &QRClient{}
}

// DecodeImage scans image bytes for a QR code and returns its payload
// string. A missing or unreadable QR code is an error; the caller falls
// back to OCR on the same image.
func (qc *QRClient) DecodeImage(data []byte) (string, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	bmp, err := gozxing.NewBinaryBitmapFromImage(img)
	if err != nil {
		return "", fmt.Errorf("failed to create binary bitmap: %w", err)
	}

	reader := qrcode.NewQRCodeReader()
	result, err := reader.Decode(bmp, nil)
	if err != nil {
		return "", fmt.Errorf("no QR code found in image: %w", err)
	}

	return result.GetText(), nil
}
