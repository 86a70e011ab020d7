package usecase

import (
	"context"

	"seguridad/internal/domain/entity"
)

// InvitationUsecase defines the interface for the invitation flow
type InvitationUsecase interface {
	// IssueInvitation rotates the owner's code, invalidating the previous one
	IssueInvitation(ctx context.Context, ownerExternalID string) (*entity.Invitation, error)

	// GetInvitation returns the owner's current invitation, expired or not
	GetInvitation(ctx context.Context, ownerExternalID string) (*entity.Invitation, error)

	// RedeemInvitation subscribes subscriber to the code's owner and returns the owner external id
	RedeemInvitation(ctx context.Context, code, subscriberExternalID string) (string, error)

	// GenerateInvitationQR renders the owner's current code as a PNG QR code
	GenerateInvitationQR(ctx context.Context, ownerExternalID string) ([]byte, error)

	// RedeemInvitationQR redeems the code carried by scanned QR content
	RedeemInvitationQR(ctx context.Context, qrData, subscriberExternalID string) (string, error)
}
