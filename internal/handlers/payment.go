package handlers

import (
	"time"

	"hawamoni/internal/models"
	"hawamoni/internal/services/expiry"
	"hawamoni/internal/services/payment"
	"hawamoni/internal/services/qrgen"
	"hawamoni/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler exposes the payment request flow: direct requests,
// split bills and group dues, plus parse and QR helpers.
type PaymentHandler struct {
	paymentService payment.Service
	qrRenderer     qrgen.Renderer
}

func NewPaymentHandler(paymentService payment.Service, qrRenderer qrgen.Renderer) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		qrRenderer:     qrRenderer,
	}
}

// CreateDirectRequest handles a single payment request to one recipient.
func (h *PaymentHandler) CreateDirectRequest(c *fiber.Ctx) error {
	var input models.DirectRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	encoded, err := h.paymentService.CreateDirectRequest(c.UserContext(), input)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"payment": encoded})
}

// CreateSplitBill divides a total among participants and returns one
// encoded request per share.
func (h *PaymentHandler) CreateSplitBill(c *fiber.Ctx) error {
	var input models.SplitBillRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	shares, err := h.paymentService.CreateSplitBill(c.UserContext(), input)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{
		"shares":       shares,
		"participants": len(shares),
	})
}

// CreateGroupDues builds a dues collection request for a group.
func (h *PaymentHandler) CreateGroupDues(c *fiber.Ctx) error {
	var input models.GroupDuesRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request body")
	}

	encoded, err := h.paymentService.CreateGroupDues(c.UserContext(), input)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{"payment": encoded})
}

// ParseURL decodes a payment URL back into its fields.
func (h *PaymentHandler) ParseURL(c *fiber.Ctx) error {
	raw := c.Query("url")
	if raw == "" {
		return utils.BadRequest(c, "url query parameter is required")
	}

	fields, err := h.paymentService.Parse(raw)
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	references := make([]string, len(fields.References))
	for i, r := range fields.References {
		references[i] = r.String()
	}
	resp := fiber.Map{
		"recipient":  fields.Recipient.String(),
		"label":      fields.Label,
		"message":    fields.Message,
		"memo":       fields.Memo,
		"references": references,
	}
	if fields.Amount != nil {
		resp["amount"] = fields.Amount.String()
	}
	if fields.SPLToken != nil {
		resp["spl_token"] = fields.SPLToken.String()
	}
	return utils.Success(c, resp)
}

// Status reports where a request sits in its validity window. Clients
// poll this to drive the countdown without holding a connection open.
func (h *PaymentHandler) Status(c *fiber.Ctx) error {
	raw := c.Query("expires_at")
	if raw == "" {
		return utils.BadRequest(c, "expires_at query parameter is required")
	}
	expiresAt, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return utils.BadRequest(c, "expires_at must be RFC 3339")
	}

	tracker := expiry.NewTracker(expiresAt)
	snap := tracker.SnapshotAt(time.Now())
	return utils.Success(c, fiber.Map{
		"state":             snap.State,
		"countdown":         snap.Countdown,
		"remaining_seconds": int(snap.Remaining.Seconds()),
	})
}

// RenderQR renders any payment URL as a PNG image.
func (h *PaymentHandler) RenderQR(c *fiber.Ctx) error {
	raw := c.Query("url")
	if raw == "" {
		return utils.BadRequest(c, "url query parameter is required")
	}

	png, err := h.qrRenderer.Render(raw, c.QueryInt("size", qrgen.DefaultSize), c.Query("level", qrgen.DefaultLevel))
	if err != nil {
		return utils.DomainError(c, err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}
