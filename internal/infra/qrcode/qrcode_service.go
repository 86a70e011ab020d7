package qrcode

import (
	"encoding/json"
	"net/url"
	"strings"

	"seguridad/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const invitationType = "invitation"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// InvitationQRData is the JSON payload of an invitation QR code
type InvitationQRData struct {
	Type string `json:"type"`
	Code string `json:"code"`
}

// NewQRCodeService creates a new QR code service instance.
// When baseURL is set the QR code encodes baseURL?code=<code> instead of the JSON payload.
func NewQRCodeService(size int, errorCorrectionLevel, baseURL string) service.QRCodeService {
	// Set error correction level
	var level qrcode.RecoveryLevel
	switch errorCorrectionLevel {
	case "L":
		level = qrcode.Low
	case "M":
		level = qrcode.Medium
	case "Q":
		level = qrcode.High
	case "H":
		level = qrcode.Highest
	default:
		level = qrcode.Medium
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: level,
		baseURL:              strings.TrimSpace(baseURL),
	}
}

// GenerateInvitationQR renders a PNG QR code carrying the invitation code
func (s *qrcodeService) GenerateInvitationQR(code string) ([]byte, error) {
	if code == "" {
		return nil, errors.New("invitation code is empty")
	}

	content, err := s.payload(code)
	if err != nil {
		return nil, err
	}

	qrCode, err := qrcode.New(content, s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

func (s *qrcodeService) payload(code string) (string, error) {
	if s.baseURL != "" {
		link, err := url.Parse(s.baseURL)
		if err != nil {
			return "", errors.Wrap(err, "invalid QR code base URL")
		}
		query := link.Query()
		query.Set("code", code)
		link.RawQuery = query.Encode()

		return link.String(), nil
	}

	jsonData, err := json.Marshal(InvitationQRData{Type: invitationType, Code: code})
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal QR code data")
	}

	return string(jsonData), nil
}

// ParseInvitationQR extracts the invitation code from either payload form
func (s *qrcodeService) ParseInvitationQR(qrData string) (string, error) {
	qrData = strings.TrimSpace(qrData)
	if qrData == "" {
		return "", errors.New("empty QR code data")
	}

	if strings.HasPrefix(qrData, "{") {
		var data InvitationQRData
		if err := json.Unmarshal([]byte(qrData), &data); err != nil {
			return "", errors.Wrap(err, "failed to unmarshal QR code data")
		}
		if data.Type != invitationType {
			return "", errors.Errorf("invalid QR code type: %s", data.Type)
		}
		if data.Code == "" {
			return "", errors.New("QR code carries no invitation code")
		}

		return data.Code, nil
	}

	link, err := url.Parse(qrData)
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code link")
	}
	code := link.Query().Get("code")
	if code == "" {
		return "", errors.New("QR code link carries no invitation code")
	}

	return code, nil
}
