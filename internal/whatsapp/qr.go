package whatsapp

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const qrPNGPath = "whatsapp_qr.png"

// WriteQRPNG renders the pairing code to a PNG next to the binary and
// returns its path.
func WriteQRPNG(code string) (string, error) {
	if err := qrcode.WriteFile(code, qrcode.Medium, 512, qrPNGPath); err != nil {
		return "", fmt.Errorf("writing QR code PNG: %w", err)
	}
	return qrPNGPath, nil
}
