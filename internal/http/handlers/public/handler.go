package public

import "github.com/voltmart/internal/provider"

// Handler 前台/公开接口处理器入口
// 说明：该处理器仅用于门店、游客会话侧 API。
type Handler struct {
	*provider.Container
}

// New 创建前台处理器
func New(c *provider.Container) *Handler {
	return &Handler{Container: c}
}
