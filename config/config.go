package config

import (
	"os"
	"strconv"
)

type Config struct {
	ServerPort        string
	TesseractDataPath string
	MaxFileSize       int64
	AmountCeiling     float64
	DefaultCurrency   string
}

func LoadConfig() *Config {
	serverPort := os.Getenv("SERVER_PORT")
	if serverPort == "" {
		serverPort = "8080"
	}

	tesseractDataPath := os.Getenv("TESSDATA_PREFIX")
	if tesseractDataPath == "" {
		tesseractDataPath = "/usr/share/tesseract-ocr/4.00/tessdata"
	}

	// Ceiling on plausible receipt totals; numbers above it are treated
	// as OCR artifacts (IDs, zip codes) rather than amounts.
	amountCeiling := 5000.0
	if v := os.Getenv("AMOUNT_CEILING"); v != "" {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			amountCeiling = parsed
		}
	}

	defaultCurrency := os.Getenv("DEFAULT_CURRENCY")
	if defaultCurrency == "" {
		defaultCurrency = "USD"
	}

	return &Config{
		ServerPort:        serverPort,
		TesseractDataPath: tesseractDataPath,
		MaxFileSize:       10 * 1024 * 1024, // 10 MB
		AmountCeiling:     amountCeiling,
		DefaultCurrency:   defaultCurrency,
	}
}
