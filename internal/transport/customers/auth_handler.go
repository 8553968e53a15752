package customers

import (
	"context"
	"errors"
	"net/http"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

type AuthHandler struct {
	customerService CustomerServicer
}

func NewAuthHandler(customerService CustomerServicer) *AuthHandler {
	return &AuthHandler{
		customerService: customerService,
	}
}

type RegisterParams struct {
	FullName      string `binding:"required,min=1,max=255"                     json:"fullname"`
	Username      string `binding:"required,min=1,max=15"                      json:"username"`
	Password      string `binding:"required,min=6,max=255"                     json:"password"`
	Age           int    `binding:"required,gte=16,lte=120"                    json:"age"`
	Address       string `binding:"required,max=255"                           json:"address"`
	Gender        string `binding:"required,oneof=male female other"           json:"gender"`
	MaritalStatus string `binding:"required,oneof=single married divorced widowed" json:"marital_status"`
}

// Register POST RegisterRoute. Регистрация открыта, роль всегда customer.
func (h *AuthHandler) Register(c *gin.Context) {
	var params RegisterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		var valErrs validator.ValidationErrors
		if errors.As(bindErr, &valErrs) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": valErrs.Error()})
			return
		}
		_ = c.AbortWithError(http.StatusBadRequest, bindErr).
			SetType(gin.ErrorTypeBind)
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	customer, createErr := h.customerService.Register(ctx, service.RegisterCustomerArgs{
		FullName:      params.FullName,
		Username:      params.Username,
		Password:      params.Password,
		Age:           params.Age,
		Address:       params.Address,
		Gender:        params.Gender,
		MaritalStatus: params.MaritalStatus,
	})
	if createErr != nil {
		if errors.Is(createErr, domain.ErrDuplicateKey) {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Username is already taken"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, createErr).
			SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Customer added successfully",
		"customer_id": customer.ID,
	})
}

type LoginParams struct {
	Username string `binding:"required" json:"username"`
	Password string `binding:"required" json:"password"`
}

// Login POST LoginRoute. Аутентификация по паре логин/пароль, в ответе jwt токен.
func (h *AuthHandler) Login(c *gin.Context) {
	var params LoginParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Missing username or password"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), DefaultServiceTimeout)
	defer cancel()

	_, token, err := h.customerService.Login(ctx, params.Username, params.Password)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) || errors.Is(err, domain.ErrPasswordMissMatch) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid username or password"})
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.Header("Authorization", "Bearer "+token)
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
