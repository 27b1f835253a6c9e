package handlers

import (
	"hawamoni/internal/services/wallet"
	"hawamoni/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	walletService wallet.Service
}

func NewWalletHandler(walletService wallet.Service) *WalletHandler {
	return &WalletHandler{walletService: walletService}
}

// Balance returns the SOL balance for a wallet address.
func (h *WalletHandler) Balance(c *fiber.Ctx) error {
	address := c.Params("address")

	balance, err := h.walletService.Balance(c.UserContext(), address)
	if err != nil {
		return utils.DomainError(c, err)
	}
	return utils.Success(c, fiber.Map{
		"address":  address,
		"balance":  balance,
		"currency": "SOL",
	})
}
