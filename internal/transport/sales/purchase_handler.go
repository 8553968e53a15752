package sales

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/gin-gonic/gin"
)

type PurchaseHandler struct {
	orderSvs OrderServicer
}

func NewPurchaseHandler(orderSvs OrderServicer) *PurchaseHandler {
	return &PurchaseHandler{
		orderSvs: orderSvs,
	}
}

type PurchaseParams struct {
	Quantity int `json:"quantity"`
}

type PurchaseResponse struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id"`
}

// Purchase POST PurchaseRoute. Покупка quantity единиц товара текущим пользователем.
func (h *PurchaseHandler) Purchase(c *gin.Context) {
	itemID, idErr := parseItemID(c)
	if idErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	var params PurchaseParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		// Нечисловое или отсутствующее количество неотличимо от неположительного.
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Invalid quantity. Must be a positive integer."})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	receipt, purchaseErr := h.orderSvs.Purchase(ctx, getUsernameFromContext(c), itemID, params.Quantity)
	if purchaseErr != nil {
		h.renderPurchaseError(c, purchaseErr)
		return
	}

	c.JSON(http.StatusOK, PurchaseResponse{
		Message: receipt.Message,
		OrderID: receipt.OrderID,
	})
}

func (h *PurchaseHandler) renderPurchaseError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidQuantity):
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Invalid quantity. Must be a positive integer."})
	case errors.Is(err, domain.ErrItemNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
	case errors.Is(err, domain.ErrInsufficientStock):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Not enough stock available"})
	case errors.Is(err, domain.ErrInsufficientFunds):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Insufficient wallet balance"})
	default:
		// Сюда попадают *domain.UpstreamError и *domain.PersistenceError: частичный отказ
		// никогда не отдается как успех.
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}
