package sales

import (
	"strconv"

	"github.com/fsdevblog/groph-shop/internal/transport/api/middlewares"
	"github.com/gin-gonic/gin"
)

// getUsernameFromContext берет из контекста gin имя текущего пользователя. Имя
// устанавливается в middlewares.AuthRequired. В случае, если значения в контексте нет
// или ошибка утверждения типа - вернется пустая строка.
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

func parseItemID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("itemID"), 10, 64)
}
