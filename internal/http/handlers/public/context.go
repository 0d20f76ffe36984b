package public

import (
	"github.com/gin-gonic/gin"

	"github.com/voltmart/internal/http/response"
)

// getSessionID 读取会话中间件注入的会话标识。
// 会话标识缺失说明路由编排有误，直接以 400 结束请求。
func getSessionID(c *gin.Context) (string, bool) {
	value, ok := c.Get("session_id")
	if !ok {
		respondError(c, response.CodeBadRequest, "session id is required", nil)
		return "", false
	}
	sessionID, ok := value.(string)
	if !ok || sessionID == "" {
		respondError(c, response.CodeBadRequest, "session id is required", nil)
		return "", false
	}
	return sessionID, true
}
