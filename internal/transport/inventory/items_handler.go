package inventory

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ItemsHandler struct {
	itemSvs ItemServicer
}

func NewItemsHandler(itemSvs ItemServicer) *ItemsHandler {
	return &ItemsHandler{
		itemSvs: itemSvs,
	}
}

// CatalogEntry сокращенная карточка для списков каталога.
type CatalogEntry struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

// ItemResponse полная карточка товара; этот же формат читает сервис продаж.
type ItemResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Category     string          `json:"category"`
	Description  string          `json:"description"`
	PricePerItem decimal.Decimal `json:"price_per_item"`
	StockCount   int             `json:"stock_count"`
}

func newItemResponse(item *domain.Item) ItemResponse {
	return ItemResponse{
		ID:           item.ID,
		Name:         item.Name,
		Category:     item.Category,
		Description:  item.Description,
		PricePerItem: item.PricePerItem,
		StockCount:   item.StockCount,
	}
}

func newCatalog(items []domain.Item) []CatalogEntry {
	catalog := make([]CatalogEntry, len(items))
	for i, item := range items {
		catalog[i] = CatalogEntry{Name: item.Name, Price: item.PricePerItem}
	}
	return catalog
}

// Index GET InventoryRoute. Весь каталог, имя и цена.
func (h *ItemsHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	items, err := h.itemSvs.GetAll(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, newCatalog(items))
}

// Show GET ItemRoute. Числовой параметр трактуется как идентификатор товара,
// любой другой - как имя категории.
func (h *ItemsHandler) Show(c *gin.Context) {
	key := c.Param("itemID")

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	itemID, idErr := strconv.ParseInt(key, 10, 64)
	if idErr != nil {
		items, err := h.itemSvs.GetByCategory(ctx, key)
		if err != nil {
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
			return
		}
		c.JSON(http.StatusOK, newCatalog(items))
		return
	}

	item, err := h.itemSvs.GetByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	c.JSON(http.StatusOK, newItemResponse(item))
}

type ItemParams struct {
	Name         string          `binding:"required,min=1,max=255" json:"name"`
	Category     string          `binding:"required,min=1,max=255" json:"category"`
	Description  string          `binding:"max=1000"               json:"description"`
	PricePerItem decimal.Decimal `binding:"required"               json:"price_per_item"`
	StockCount   int             `binding:"gte=0"                  json:"stock_count"`
}

// Create POST InventoryRoute.
func (h *ItemsHandler) Create(c *gin.Context) {
	var params ItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})
		return
	}
	if params.PricePerItem.LessThanOrEqual(decimal.Zero) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Price must be a positive number"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	item, createErr := h.itemSvs.Create(ctx, repoargs.CreateItem{
		Name:         params.Name,
		Category:     params.Category,
		Description:  params.Description,
		PricePerItem: params.PricePerItem,
		StockCount:   params.StockCount,
	})
	if createErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Good added successfully", "item_id": item.ID})
}

// Update PUT ItemRoute.
func (h *ItemsHandler) Update(c *gin.Context) {
	itemID, idErr := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if idErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	var params ItemParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})
		return
	}
	if params.PricePerItem.LessThanOrEqual(decimal.Zero) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Price must be a positive number"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	_, updateErr := h.itemSvs.Update(ctx, itemID, repoargs.UpdateItem{
		Name:         params.Name,
		Category:     params.Category,
		Description:  params.Description,
		PricePerItem: params.PricePerItem,
		StockCount:   params.StockCount,
	})
	if updateErr != nil {
		if errors.Is(updateErr, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, updateErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Item %d updated successfully", itemID)})
}

// Delete DELETE ItemRoute. Связанные заказы, отзывы и записи списков желаний
// удаляются каскадом.
func (h *ItemsHandler) Delete(c *gin.Context) {
	itemID, idErr := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if idErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	if err := h.itemSvs.Delete(ctx, itemID); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Item %d deleted successfully", itemID)})
}
