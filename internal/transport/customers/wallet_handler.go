package customers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type WalletHandler struct {
	customerService CustomerServicer
}

func NewWalletHandler(customerService CustomerServicer) *WalletHandler {
	return &WalletHandler{
		customerService: customerService,
	}
}

type WalletParams struct {
	Amount decimal.Decimal `binding:"required" json:"amount"`
}

// Add POST WalletAddRoute. Пополнение кошелька, сумма строго положительная.
func (h *WalletHandler) Add(c *gin.Context) {
	username := c.Param("username")
	if !requireSelfOrAdmin(c, username) {
		return
	}

	var params WalletParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	balance, err := h.customerService.CreditWallet(ctx, username, params.Amount)
	if err != nil {
		h.renderWalletError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Added $%s to %s's wallet", params.Amount.String(), username),
		"new_balance": balance,
	})
}

// Deduct POST WalletDeductRoute. Списание с атомарной проверкой достаточности баланса;
// на этот эндпоинт опирается сервис продаж при покупке.
func (h *WalletHandler) Deduct(c *gin.Context) {
	username := c.Param("username")
	if !requireSelfOrAdmin(c, username) {
		return
	}

	var params WalletParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	balance, err := h.customerService.DebitWallet(ctx, username, params.Amount)
	if err != nil {
		h.renderWalletError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     fmt.Sprintf("Deducted $%s from %s's wallet", params.Amount.String(), username),
		"new_balance": balance,
	})
}

func (h *WalletHandler) renderWalletError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid amount"})
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
	case errors.Is(err, domain.ErrInsufficientFunds):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance"})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
