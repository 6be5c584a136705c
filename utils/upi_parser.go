package utils

import (
	"net/url"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/Aashish23092/receipt-scan-service/dto"
)

// ParseUPIPayload parses a decoded QR string as a UPI payment URI and
// pulls out the payee name (pn) and amount (am) parameters. A string
// that is not a upi:// link yields dto.ErrNotPaymentQR so the caller can
// fall back to the OCR path. A missing am parameter leaves the amount
// absent; it never becomes zero.
func ParseUPIPayload(decoded string) (dto.QRPayload, error) {
	u, err := url.Parse(strings.TrimSpace(decoded))
	if err != nil || !strings.EqualFold(u.Scheme, "upi") {
		return dto.QRPayload{}, dto.ErrNotPaymentQR
	}

	params := u.Query()

	payload := dto.QRPayload{MerchantName: params.Get("pn")}
	if payload.MerchantName == "" {
		payload.MerchantName = UnknownMerchant
	}

	if am := params.Get("am"); am != "" {
		if v, err := decimal.NewFromString(am); err == nil && v.IsPositive() {
			payload.Amount = &v
		}
	}

	return payload, nil
}
