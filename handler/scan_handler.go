package handler

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/Aashish23092/receipt-scan-service/dto"
	"github.com/Aashish23092/receipt-scan-service/service"
	"github.com/Aashish23092/receipt-scan-service/utils"
	"github.com/Aashish23092/receipt-scan-service/utils/currency"

	"github.com/gin-gonic/gin"
)

type ScanHandler struct {
	scanService *service.ScanService
}

func NewScanHandler(scanService *service.ScanService) *ScanHandler {
	return &ScanHandler{
		scanService: scanService,
	}
}

// ScanText handles POST /scan/text: raw recognized receipt text in,
// expense draft out.
func (h *ScanHandler) ScanText(c *gin.Context) {
	var request dto.ScanTextRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	response := h.scanService.ScanText(request.RecognizedText)
	c.JSON(http.StatusOK, response)
}

// ScanQR handles POST /scan/qr: a decoded QR string in, expense draft
// out. A non-payment QR is a 422 so the app can retry via the OCR path.
func (h *ScanHandler) ScanQR(c *gin.Context) {
	var request dto.ScanQRRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		h.sendError(c, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	if err := request.Validate(); err != nil {
		h.sendError(c, http.StatusBadRequest, err.Error(), err)
		return
	}

	response, err := h.scanService.ScanQR(request.DecodedString)
	if err != nil {
		if errors.Is(err, dto.ErrNotPaymentQR) {
			h.sendError(c, http.StatusUnprocessableEntity, "Not a payment QR code", err)
			return
		}
		h.sendError(c, http.StatusInternalServerError, "Failed to process QR code", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// ScanUpload handles POST /scan/upload: a receipt image or PDF bill as
// multipart form data.
func (h *ScanHandler) ScanUpload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.sendError(c, http.StatusBadRequest, "No file provided", err)
		return
	}

	password := c.PostForm("password")

	log.Printf("Processing uploaded receipt %s (%d bytes)", fileHeader.Filename, fileHeader.Size)

	response, err := h.scanService.ScanUpload(fileHeader, password)
	if err != nil {
		h.sendError(c, http.StatusUnprocessableEntity, "Failed to scan receipt", err)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Categories handles GET /categories: the fixed set the expense form
// offers for manual override of a classified draft.
func (h *ScanHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": utils.Categories()})
}

// Currencies handles GET /currencies: the supported currency codes with
// display labels for the settings dropdown.
func (h *ScanHandler) Currencies(c *gin.Context) {
	options := make([]gin.H, 0, len(currency.Codes()))
	for _, code := range currency.Codes() {
		info, _ := currency.Lookup(code)
		options = append(options, gin.H{
			"value": info.Code,
			"label": fmt.Sprintf("%s (%s)", info.Code, info.Symbol),
		})
	}
	c.JSON(http.StatusOK, gin.H{"currencies": options})
}

// sendError sends a structured error response
func (h *ScanHandler) sendError(c *gin.Context, statusCode int, message string, err error) {
	errorMsg := message
	if err != nil {
		errorMsg = err.Error()
		log.Printf("Error: %s - %v", message, err)
	}

	c.JSON(statusCode, dto.ErrorResponse{
		Error:   "SCAN_FAILED",
		Message: errorMsg,
		Code:    statusCode,
	})
}
