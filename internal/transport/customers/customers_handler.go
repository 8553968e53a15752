package customers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/repository/repoargs"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type CustomersHandler struct {
	customerService CustomerServicer
}

func NewCustomersHandler(customerService CustomerServicer) *CustomersHandler {
	return &CustomersHandler{
		customerService: customerService,
	}
}

// CustomerResponse профиль клиента без приватных полей. Кошелек отдается как число,
// сервис продаж читает его при проверке баланса.
type CustomerResponse struct {
	ID            int64           `json:"id"`
	FullName      string          `json:"fullname"`
	Username      string          `json:"username"`
	Age           int             `json:"age"`
	Address       string          `json:"address"`
	Gender        string          `json:"gender"`
	MaritalStatus string          `json:"marital_status"`
	Wallet        decimal.Decimal `json:"wallet"`
}

func newCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            customer.ID,
		FullName:      customer.FullName,
		Username:      customer.Username,
		Age:           customer.Age,
		Address:       customer.Address,
		Gender:        customer.Gender,
		MaritalStatus: customer.MaritalStatus,
		Wallet:        customer.Wallet,
	}
}

// Index GET CustomersRoute. Только для администраторов.
func (h *CustomersHandler) Index(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	all, err := h.customerService.GetAll(ctx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]CustomerResponse, len(all))
	for i := range all {
		response[i] = newCustomerResponse(&all[i])
	}
	c.JSON(http.StatusOK, response)
}

// Show GET CustomerRoute. Администратор видит любого клиента, остальные только себя.
func (h *CustomersHandler) Show(c *gin.Context) {
	username := c.Param("username")
	if !requireSelfOrAdmin(c, username) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	customer, err := h.customerService.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, newCustomerResponse(customer))
}

type UpdateParams struct {
	FullName      string `binding:"required,min=1,max=255"                         json:"fullname"`
	Age           int    `binding:"required,gte=16,lte=120"                        json:"age"`
	Address       string `binding:"required,max=255"                               json:"address"`
	Gender        string `binding:"required,oneof=male female other"               json:"gender"`
	MaritalStatus string `binding:"required,oneof=single married divorced widowed" json:"marital_status"`
}

// Update PUT CustomerRoute. Имя пользователя и пароль этим эндпоинтом не меняются.
func (h *CustomersHandler) Update(c *gin.Context) {
	username := c.Param("username")
	if !requireSelfOrAdmin(c, username) {
		return
	}

	var params UpdateParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": bindErr.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	_, updateErr := h.customerService.Update(ctx, username, repoargs.UpdateCustomer{
		FullName:      params.FullName,
		Age:           params.Age,
		Address:       params.Address,
		Gender:        params.Gender,
		MaritalStatus: params.MaritalStatus,
	})
	if updateErr != nil {
		if errors.Is(updateErr, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, updateErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Customer %s updated successfully", username)})
}

type ChangePasswordParams struct {
	CurrentPassword string `binding:"required"       json:"current_password"`
	NewPassword     string `binding:"required,min=6" json:"new_password"`
}

// ChangePassword POST ChangePasswordRoute.
func (h *CustomersHandler) ChangePassword(c *gin.Context) {
	username := c.Param("username")
	if !requireSelfOrAdmin(c, username) {
		return
	}

	var params ChangePasswordParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest,
			gin.H{"error": "Current password and new password are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	err := h.customerService.ChangePassword(ctx, username, params.CurrentPassword, params.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
		case errors.Is(err, domain.ErrPasswordMissMatch):
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid current password"})
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Password changed successfully"})
}

// Delete DELETE CustomerRoute. Заказы, список желаний и отзывы клиента удаляются
// каскадом на уровне схемы.
func (h *CustomersHandler) Delete(c *gin.Context) {
	username := c.Param("username")
	if !requireSelfOrAdmin(c, username) {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	if err := h.customerService.Delete(ctx, username); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": "Customer not found"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Customer %s deleted successfully", username)})
}
