package service

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"log"
	"mime/multipart"
	"os"
	"strings"
	"time"

	"github.com/Aashish23092/receipt-scan-service/client"
	"github.com/Aashish23092/receipt-scan-service/dto"
	"github.com/Aashish23092/receipt-scan-service/utils"
)

const (
	// SourceOCR and SourceQR tag which path produced a draft.
	SourceOCR = "ocr"
	SourceQR  = "qr"

	minReadableTextLen = 10
)

// ScanService turns scanned receipt input (raw OCR text, decoded QR
// strings, uploaded images or PDF bills) into expense drafts for the
// entry form. The extraction pipeline itself is pure; this layer hosts
// the OCR, QR-decode and PDF collaborators around it.
type ScanService struct {
	tesseractClient *client.TesseractClient
	qrClient        *client.QRClient
	pdfProcessor    PDFProcessor
	parseOpts       utils.ParseOptions
}

func NewScanService(
	tesseractClient *client.TesseractClient,
	qrClient *client.QRClient,
	pdfProcessor PDFProcessor,
	parseOpts utils.ParseOptions,
) *ScanService {
	return &ScanService{
		tesseractClient: tesseractClient,
		qrClient:        qrClient,
		pdfProcessor:    pdfProcessor,
		parseOpts:       parseOpts,
	}
}

// ScanText parses already-recognized receipt text into a draft. It never
// fails: an undetectable amount simply comes back absent and the form
// asks the user to fill it in.
func (s *ScanService) ScanText(recognizedText string) *dto.ScanResponse {
	draft := utils.ParseReceipt(recognizedText, s.parseOpts)
	return s.respond(draft, SourceOCR)
}

// ScanQR parses a decoded QR string. Non-payment QR content surfaces
// dto.ErrNotPaymentQR so the caller can retry via the OCR path.
func (s *ScanService) ScanQR(decodedString string) (*dto.ScanResponse, error) {
	payload, err := utils.ParseUPIPayload(decodedString)
	if err != nil {
		return nil, err
	}

	draft := utils.DraftFromQRPayload(payload, s.parseOpts)
	return s.respond(draft, SourceQR), nil
}

// ScanUpload processes an uploaded receipt image or PDF bill. Images are
// probed for a payment QR first; everything else goes through OCR and the
// text pipeline.
func (s *ScanService) ScanUpload(fileHeader *multipart.FileHeader, password string) (*dto.ScanResponse, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	if strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return s.scanPDF(data, password)
	}
	return s.scanImage(fileHeader, data)
}

func (s *ScanService) scanImage(fileHeader *multipart.FileHeader, data []byte) (*dto.ScanResponse, error) {
	// A payment QR in the frame beats OCR heuristics every time.
	if decoded, err := s.qrClient.DecodeImage(data); err == nil {
		if payload, err := utils.ParseUPIPayload(decoded); err == nil {
			log.Printf("Payment QR decoded for %s", fileHeader.Filename)
			return s.respond(utils.DraftFromQRPayload(payload, s.parseOpts), SourceQR), nil
		}
		log.Printf("QR in %s is not a payment QR, falling back to OCR", fileHeader.Filename)
	}

	text, confidence, err := s.tesseractClient.RecognizeUpload(fileHeader)
	if err != nil {
		return nil, fmt.Errorf("image OCR failed: %w", err)
	}
	log.Printf("OCR finished for %s (confidence %.1f)", fileHeader.Filename, confidence)

	if len(strings.TrimSpace(text)) < minReadableTextLen {
		return nil, fmt.Errorf("could not extract readable text from the image")
	}

	return s.ScanText(text), nil
}

func (s *ScanService) scanPDF(data []byte, password string) (*dto.ScanResponse, error) {
	text, err := s.pdfProcessor.ExtractText(data)
	if err != nil {
		log.Printf("PDF text extraction failed: %v", err)
	}

	// Scanned PDFs have no embedded text; OCR the page images instead.
	if len(strings.TrimSpace(text)) < 20 {
		images, imgErr := s.pdfProcessor.ExtractImages(data, password)
		if imgErr != nil {
			return nil, fmt.Errorf("failed to extract content from PDF: %w", imgErr)
		}
		if len(images) == 0 {
			return nil, fmt.Errorf("PDF contains no extractable text or images")
		}

		var combined strings.Builder
		for i, img := range images {
			tempImg, err := saveImageToTempFile(img)
			if err != nil {
				log.Printf("Failed to save page %d for OCR: %v", i+1, err)
				continue
			}

			pageText, _, ocrErr := s.tesseractClient.Recognize(tempImg)
			os.Remove(tempImg)
			if ocrErr != nil {
				log.Printf("OCR failed for PDF page %d: %v", i+1, ocrErr)
				continue
			}

			combined.WriteString(pageText)
			combined.WriteString("\n")
		}
		text = combined.String()
	}

	if len(strings.TrimSpace(text)) < minReadableTextLen {
		return nil, fmt.Errorf("could not extract readable text from the PDF")
	}

	return s.ScanText(text), nil
}

func (s *ScanService) respond(draft dto.ExpenseDraft, source string) *dto.ScanResponse {
	return &dto.ScanResponse{
		Draft:       draft,
		Source:      source,
		ProcessedAt: time.Now().Format(time.RFC3339),
	}
}

// saveImageToTempFile saves an image.Image to a temporary PNG file.
func saveImageToTempFile(img image.Image) (string, error) {
	tempFile, err := os.CreateTemp("", "receipt-page-*.png")
	if err != nil {
		return "", fmt.Errorf("failed to create temp image file: %w", err)
	}
	defer tempFile.Close()

	if err := png.Encode(tempFile, img); err != nil {
		return "", fmt.Errorf("failed to encode image to PNG: %w", err)
	}

	return tempFile.Name(), nil
}
