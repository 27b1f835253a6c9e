package payment

import (
	"context"

	"hawamoni/internal/models"
	"hawamoni/internal/solanapay"
)

// Service builds the three payment request shapes and the artifacts
// derived from them (canonical URL, QR image, shareable link, expiry).
type Service interface {
	CreateDirectRequest(ctx context.Context, req models.DirectRequest) (*models.EncodedPayment, error)
	CreateSplitBill(ctx context.Context, req models.SplitBillRequest) ([]models.SplitShare, error)
	CreateGroupDues(ctx context.Context, req models.GroupDuesRequest) (*models.EncodedPayment, error)

	// Parse decodes a previously generated payment URL.
	Parse(url string) (*solanapay.Fields, error)

	// ShareableLink wraps a payment URL for the platform share sheet;
	// callers fall back to clipboard copy when sharing is unavailable.
	ShareableLink(paymentURL, title string) string
}
