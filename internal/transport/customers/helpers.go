package customers

import (
	"net/http"

	"github.com/fsdevblog/groph-shop/internal/domain"
	"github.com/fsdevblog/groph-shop/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

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

// requireSelfOrAdmin пускает администратора к любому клиенту, остальных только к
// собственной записи. Несоответствие дает 400 Invalid user и прерывает запрос.
func requireSelfOrAdmin(c *gin.Context, username string) bool {
	if getRoleFromContext(c) == domain.RoleAdmin || getUsernameFromContext(c) == username {
		return true
	}
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "Invalid user"})
	return false
}
