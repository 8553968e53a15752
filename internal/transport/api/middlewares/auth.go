package middlewares

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/tokens"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

var ErrTokenNotExist = errors.New("token not exist")

const (
	CurrentUsernameKey = "currentUsername"
	CurrentUserRoleKey = "currentUserRole"
)

// checkAuthorization извлекает токен из заголовка Authorization и проверяет его. Если токен не передан, вернется ошибка
// ErrTokenNotExist. Вторым значением возвращается сырая строка токена.
func checkAuthorization(c *gin.Context, jwtTokenSecret []byte) (*jwt.Token, string, error) {
	tokenHeader := c.GetHeader("Authorization")
	bearer := "Bearer "

	if len(tokenHeader) < len(bearer) || tokenHeader[:len(bearer)] != bearer {
		return nil, "", ErrTokenNotExist
	}

	tokenStr := tokenHeader[len(bearer):]
	token, err := tokens.ValidateUserJWT(tokenStr, jwtTokenSecret)
	if err != nil {
		return nil, "", fmt.Errorf("check authorization: %w", err)
	}
	return token, tokenStr, nil
}

// AuthRequired проверяет, что запрос авторизован. Записывает в контекст имя и роль
// текущего пользователя (поля CurrentUsernameKey, CurrentUserRoleKey), а сырой токен
// кладет в request context для воспроизведения в межсервисных вызовах.
func AuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, rawToken, err := checkAuthorization(c, jwtTokenSecret)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			if !errors.Is(err, ErrTokenNotExist) {
				_ = c.Error(err).SetType(gin.ErrorTypePrivate)
			}
			return
		}
		userClaim, ok := token.Claims.(*tokens.UserClaims)
		if !ok {
			_ = c.AbortWithError(http.StatusInternalServerError, errors.New("invalid jwt claims type")).
				SetType(gin.ErrorTypePrivate)
			return
		}
		c.Set(CurrentUsernameKey, userClaim.Username)
		c.Set(CurrentUserRoleKey, userClaim.Role)
		c.Request = c.Request.WithContext(tokens.WithBearer(c.Request.Context(), rawToken))
		c.Next()
	}
}

// RoleRequired пропускает запрос только если роль текущего пользователя входит в allowed.
// Ставится после AuthRequired.
func RoleRequired(allowed ...domain.RoleType) gin.HandlerFunc {
	return func(c *gin.Context) {
		roleVal, exist := c.Get(CurrentUserRoleKey)
		role, ok := roleVal.(domain.RoleType)
		if !exist || !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		for _, a := range allowed {
			if role == a {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
	}
}

// NonAuthRequired пропускает запросы без токена или с недействительным токеном.
func NonAuthRequired(jwtTokenSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		_, _, err := checkAuthorization(c, jwtTokenSecret)
		if err == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Already authorized"})
			return
		}

		c.Next()
	}
}
