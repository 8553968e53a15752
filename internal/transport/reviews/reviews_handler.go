package reviews

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/fsdevblog/groph-shop/internal/transport/api/middlewares"
	"github.com/fsdevblog/groph-shop/internal/transport/upstream/invstore"
	"github.com/gin-gonic/gin"
)

const maxCommentLength = 500

type ReviewsHandler struct {
	reviewSvs ReviewServicer
	customers CustomerDirectory
	inventory InventoryStore
}

func NewReviewsHandler(reviewSvs ReviewServicer, customers CustomerDirectory, inventory InventoryStore) *ReviewsHandler {
	return &ReviewsHandler{
		reviewSvs: reviewSvs,
		customers: customers,
		inventory: inventory,
	}
}

type ReviewResponse struct {
	ID         int64                   `json:"id"`
	CustomerID int64                   `json:"customer_id"`
	ItemID     int64                   `json:"item_id"`
	Rating     int                     `json:"rating"`
	Comment    string                  `json:"comment"`
	Status     domain.ReviewStatusType `json:"status"`
	CreatedAt  time.Time               `json:"created_at"`
}

func newReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:         review.ID,
		CustomerID: review.CustomerID,
		ItemID:     review.ItemID,
		Rating:     review.Rating,
		Comment:    review.Comment,
		Status:     review.Status,
		CreatedAt:  review.CreatedAt,
	}
}

type SubmitParams struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Submit POST SubmitRoute. Отзыв пишется локально, но клиент и товар сперва
// подтверждаются удаленными сервисами.
func (h *ReviewsHandler) Submit(c *gin.Context) {
	itemID, idErr := strconv.ParseInt(c.Param("reviewID"), 10, 64)
	if idErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	var params SubmitParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Invalid rating. Must be an integer between 1 and 5."})
		return
	}
	if params.Rating < 1 || params.Rating > 5 {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Invalid rating. Must be an integer between 1 and 5."})
		return
	}
	comment := strings.TrimSpace(params.Comment)
	if len(comment) > maxCommentLength {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Comment exceeds maximum length of 500 characters."})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	customer, custErr := h.customers.LookupCustomer(ctx, getUsernameFromContext(c))
	if custErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, custErr).SetType(gin.ErrorTypePrivate)
		return
	}

	if _, itemErr := h.inventory.GetItem(ctx, itemID); itemErr != nil {
		var scErr *invstore.StatusCodeError
		if errors.As(itemErr, &scErr) && scErr.Code == http.StatusNotFound {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, itemErr).SetType(gin.ErrorTypePrivate)
		return
	}

	review, createErr := h.reviewSvs.Create(ctx, repoargs.CreateReview{
		CustomerID: customer.ID,
		ItemID:     itemID,
		Rating:     params.Rating,
		Comment:    comment,
	})
	if createErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":   "Review submitted successfully",
		"review_id": review.ID,
	})
}

// Update PUT ReviewRoute. Администратор правит любой отзыв, клиент только свой.
func (h *ReviewsHandler) Update(c *gin.Context) {
	reviewID, idErr := strconv.ParseInt(c.Param("reviewID"), 10, 64)
	if idErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	var params SubmitParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil || params.Rating < 1 || params.Rating > 5 {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Invalid rating. Must be an integer between 1 and 5."})
		return
	}
	comment := strings.TrimSpace(params.Comment)
	if len(comment) > maxCommentLength {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Comment exceeds maximum length of 500 characters."})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	if !h.requireReviewOwner(ctx, c, reviewID) {
		return
	}

	if _, updateErr := h.reviewSvs.Update(ctx, reviewID, repoargs.UpdateReview{
		Rating:  params.Rating,
		Comment: comment,
	}); updateErr != nil {
		h.renderReviewError(c, updateErr)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review updated successfully"})
}

// Delete DELETE ReviewRoute.
func (h *ReviewsHandler) Delete(c *gin.Context) {
	reviewID, idErr := strconv.ParseInt(c.Param("reviewID"), 10, 64)
	if idErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	if !h.requireReviewOwner(ctx, c, reviewID) {
		return
	}

	if err := h.reviewSvs.Delete(ctx, reviewID); err != nil {
		h.renderReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}

// Show GET ReviewRoute.
func (h *ReviewsHandler) Show(c *gin.Context) {
	reviewID, idErr := strconv.ParseInt(c.Param("reviewID"), 10, 64)
	if idErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	review, err := h.reviewSvs.GetByID(ctx, reviewID)
	if err != nil {
		h.renderReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, newReviewResponse(review))
}

// CustomerReviews GET CustomerReviewsRoute. Отзывы текущего пользователя.
func (h *ReviewsHandler) CustomerReviews(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	customer, custErr := h.customers.LookupCustomer(ctx, getUsernameFromContext(c))
	if custErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, custErr).SetType(gin.ErrorTypePrivate)
		return
	}

	reviews, err := h.reviewSvs.GetByCustomerID(ctx, customer.ID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	if len(reviews) == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "No reviews found for this customer"})
		return
	}

	c.JSON(http.StatusOK, newReviewList(reviews))
}

// ProductReviews GET ProductReviewsRoute. Все отзывы на товар.
func (h *ReviewsHandler) ProductReviews(c *gin.Context) {
	itemID, idErr := strconv.ParseInt(c.Param("itemID"), 10, 64)
	if idErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	reviews, err := h.reviewSvs.GetByItemID(ctx, itemID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}
	if len(reviews) == 0 {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": "No reviews found for this product"})
		return
	}

	c.JSON(http.StatusOK, newReviewList(reviews))
}

// Flag PUT FlagRoute.
func (h *ReviewsHandler) Flag(c *gin.Context) {
	h.moderate(c, h.reviewSvs.Flag, "flagged")
}

// Approve PUT ApproveRoute.
func (h *ReviewsHandler) Approve(c *gin.Context) {
	h.moderate(c, h.reviewSvs.Approve, "approved")
}

func (h *ReviewsHandler) moderate(
	c *gin.Context,
	action func(context.Context, int64) (*domain.Review, error),
	verb string,
) {
	reviewID, idErr := strconv.ParseInt(c.Param("reviewID"), 10, 64)
	if idErr != nil {
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	if _, err := action(ctx, reviewID); err != nil {
		h.renderReviewError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Review %d %s successfully", reviewID, verb)})
}

// requireReviewOwner пускает администратора к любому отзыву, клиента только к своему.
// Несоответствие дает 400 Invalid user и прерывает запрос.
func (h *ReviewsHandler) requireReviewOwner(ctx context.Context, c *gin.Context, reviewID int64) bool {
	review, findErr := h.reviewSvs.GetByID(ctx, reviewID)
	if findErr != nil {
		h.renderReviewError(c, findErr)
		return false
	}

	if getRoleFromContext(c) == domain.RoleAdmin {
		return true
	}

	customer, custErr := h.customers.LookupCustomer(ctx, getUsernameFromContext(c))
	if custErr != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, custErr).SetType(gin.ErrorTypePrivate)
		return false
	}
	if review.CustomerID != customer.ID {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user"})
		return false
	}
	return true
}

func (h *ReviewsHandler) renderReviewError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrRecordNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Review not found"})
	case errors.Is(err, domain.ErrInvalidRating):
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Invalid rating. Must be an integer between 1 and 5."})
	default:
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
	}
}

func newReviewList(reviews []domain.Review) []ReviewResponse {
	response := make([]ReviewResponse, len(reviews))
	for i := range reviews {
		response[i] = newReviewResponse(&reviews[i])
	}
	return response
}

func getUsernameFromContext(c *gin.Context) string {
	usernameVal, exist := c.Get(middlewares.CurrentUsernameKey)
	if !exist {
		return ""
	}
	username, ok := usernameVal.(string)
	if !ok {
		return ""
	}
	return username
}

func getRoleFromContext(c *gin.Context) domain.RoleType {
	roleVal, exist := c.Get(middlewares.CurrentUserRoleKey)
	if !exist {
		return ""
	}
	role, ok := roleVal.(domain.RoleType)
	if !ok {
		return ""
	}
	return role
}
