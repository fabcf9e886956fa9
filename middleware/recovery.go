package middleware

import (
	"Mirsui/pkg/log"
	"Mirsui/pkg/response"
	"Mirsui/pkg/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery 接管 panic，记录调用栈后返回统一的错误响应
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				log.L.Error("handler panic",
					zap.String("path", c.Request.URL.Path),
					zap.String("trace", utils.PanicTrace(r)),
				)
				response.Abort(c, http.StatusInternalServerError, "系统异常")
			}
		}()
		c.Next()
	}
}
