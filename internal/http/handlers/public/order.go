package public

import (
	"github.com/gin-gonic/gin"

	"github.com/voltmart/internal/http/response"
)

// Checkout 结算当前会话购物车，生成订单回执
func (h *Handler) Checkout(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	order, err := h.OrderService.PlaceOrder(sessionID)
	if err != nil {
		respondWithMappedError(c, err, checkoutErrorRules, response.CodeInternal, "checkout failed")
		return
	}
	response.SuccessWithMsg(c, "order placed", gin.H{"order": order})
}

// ListOrders 获取订单日志全量记录（追加顺序）
func (h *Handler) ListOrders(c *gin.Context) {
	orders, err := h.OrderService.ListOrders()
	if err != nil {
		respondWithMappedError(c, err, orderListErrorRules, response.CodeInternal, "orders unavailable")
		return
	}
	response.Success(c, gin.H{"orders": orders})
}
