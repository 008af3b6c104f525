package middleware

import (
	"errors"
	"net/http"
	"strings"

	"quiz_backend/internal/config"
	"quiz_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 校验 Bearer Token，通过后把用户身份放入上下文
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abortUnauthorized(c, util.ErrMissingToken)
			return
		}

		// 兼容 "Bearer <token>" 与裸 token 两种写法
		tokenString := authHeader
		if idx := strings.IndexByte(authHeader, ' '); idx >= 0 {
			tokenString = authHeader[idx+1:]
		}

		claims, err := util.ParseJWT(tokenString, cfg.JWT.Secret)
		if err != nil {
			abortUnauthorized(c, err)
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

func abortUnauthorized(c *gin.Context, err error) {
	message := "Token is invalid"
	if errors.Is(err, util.ErrMissingToken) {
		message = "Token is missing"
	}
	util.Error(c, http.StatusUnauthorized, message)
	c.Abort()
}
