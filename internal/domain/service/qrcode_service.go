package service

// QRCodeService defines the interface for invitation QR code generation and parsing.
type QRCodeService interface {
	// GenerateInvitationQR renders a PNG QR code carrying the invitation code.
	GenerateInvitationQR(code string) ([]byte, error)

	// ParseInvitationQR extracts the invitation code from scanned QR content.
	ParseInvitationQR(qrData string) (string, error)
}
