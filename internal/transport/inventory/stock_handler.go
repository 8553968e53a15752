package inventory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	itemSvs ItemServicer
}

func NewStockHandler(itemSvs ItemServicer) *StockHandler {
	return &StockHandler{
		itemSvs: itemSvs,
	}
}

type StockParams struct {
	Quantity int `json:"quantity"`
}

// Add POST StockAddRoute. Пополнение остатка.
func (h *StockHandler) Add(c *gin.Context) {
	itemID, quantity, ok := h.bindStockRequest(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	newStock, err := h.itemSvs.AddStock(ctx, itemID, quantity)
	if err != nil {
		h.renderStockError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("Successfully added %d items to stock", quantity),
		"new_stock": newStock,
	})
}

// Remove POST StockRemoveRoute. Атомарное списание остатка с проверкой достаточности;
// на этот эндпоинт опирается сервис продаж при покупке.
func (h *StockHandler) Remove(c *gin.Context) {
	itemID, quantity, ok := h.bindStockRequest(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	newStock, err := h.itemSvs.RemoveStock(ctx, itemID, quantity)
	if err != nil {
		h.renderStockError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   fmt.Sprintf("%d items deducted from stock", quantity),
		"new_stock": newStock,
	})
}

//nolint:nonamedreturns
func (h *StockHandler) bindStockRequest(c *gin.Context) (itemID int64, quantity int, ok bool) {
	itemID, idErr := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if idErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return 0, 0, false
	}

	var params StockParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil || params.Quantity <= 0 {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Invalid quantity. Must be a positive integer."})
		return 0, 0, false
	}
	return itemID, params.Quantity, true
}

func (h *StockHandler) renderStockError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Invalid quantity. Must be a positive integer."})
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.Is(err, domain.ErrInsufficientStock):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Not enough stock available"})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
