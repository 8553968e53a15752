package sales

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/gin-gonic/gin"
)

type WishlistHandler struct {
	wishlistSvs WishlistServicer
}

func NewWishlistHandler(wishlistSvs WishlistServicer) *WishlistHandler {
	return &WishlistHandler{
		wishlistSvs: wishlistSvs,
	}
}

// Add POST WishlistAddRoute. Повторное добавление того же товара не ошибка.
func (h *WishlistHandler) Add(c *gin.Context) {
	itemID, idErr := parseItemID(c)
	if idErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	_, addErr := h.wishlistSvs.Add(ctx, getUsernameFromContext(c), itemID)
	if addErr != nil {
		switch {
		case errors.Is(addErr, domain.ErrDuplicateKey):
			c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Item %d is already in your wishlist.", itemID)})
		case errors.Is(addErr, domain.ErrItemNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, addErr).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Item %d added to wishlist successfully.", itemID)})
}

// Remove DELETE WishlistRemoveRoute.
func (h *WishlistHandler) Remove(c *gin.Context) {
	itemID, idErr := parseItemID(c)
	if idErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	if removeErr := h.wishlistSvs.Remove(ctx, getUsernameFromContext(c), itemID); removeErr != nil {
		if errors.Is(removeErr, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound,
				gin.H{"message": fmt.Sprintf("Item %d is not in your wishlist.", itemID)})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, removeErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Item %d removed from wishlist successfully.", itemID)})
}
