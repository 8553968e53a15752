package customers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/gin-gonic/gin"
)

// LedgerHandler чтение заказов и списка желаний клиента. Данные лежат в общей схеме,
// но карточки товаров здесь не раскрываются: имя и цену клиент запрашивает у сервиса
// склада по item_id.
type LedgerHandler struct {
	customerService CustomerServicer
	orders          OrderLister
	wishlist        WishlistLister
}

func NewLedgerHandler(customerService CustomerServicer, orders OrderLister, wishlist WishlistLister) *LedgerHandler {
	return &LedgerHandler{
		customerService: customerService,
		orders:          orders,
		wishlist:        wishlist,
	}
}

type OrderResponse struct {
	OrderID   int64     `json:"order_id"`
	ItemID    int64     `json:"item_id"`
	Quantity  int       `json:"quantity"`
	CreatedAt time.Time `json:"created_at"`
}

type WishlistItemResponse struct {
	WishlistID int64     `json:"wishlist_id"`
	ItemID     int64     `json:"item_id"`
	CreatedAt  time.Time `json:"created_at"`
}

// Orders GET OrdersRoute.
func (h *LedgerHandler) Orders(c *gin.Context) {
	username := c.Param("username")
	if !requireSelfOrAdmin(c, username) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerService.GetByUsername(ctx, username)
	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	orders, ordersErr := h.orders.GetByCustomerID(ctx, customer.ID)
	if ordersErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, ordersErr).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]OrderResponse, len(orders))
	for i, order := range orders {
		response[i] = OrderResponse{
			OrderID:   order.ID,
			ItemID:    order.ItemID,
			Quantity:  order.Quantity,
			CreatedAt: order.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"orders": response})
}

// Wishlist GET WishlistRoute.
func (h *LedgerHandler) Wishlist(c *gin.Context) {
	username := c.Param("username")
	if !requireSelfOrAdmin(c, username) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerService.GetByUsername(ctx, username)
	if err != nil {
		h.renderLookupError(c, err)
		return
	}

	entries, listErr := h.wishlist.GetByCustomerID(ctx, customer.ID)
	if listErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, listErr).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]WishlistItemResponse, len(entries))
	for i, entry := range entries {
		response[i] = WishlistItemResponse{
			WishlistID: entry.ID,
			ItemID:     entry.ItemID,
			CreatedAt:  entry.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, gin.H{"wishlist": response})
}

func (h *LedgerHandler) renderLookupError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrRecordNotFound) {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		return
	}
	_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
}
