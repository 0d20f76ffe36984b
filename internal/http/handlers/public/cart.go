package public

import (
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/voltmart/internal/catalog"
	"github.com/voltmart/internal/constants"
	"github.com/voltmart/internal/http/response"
	"github.com/voltmart/internal/models"
)

// AddCartItemRequest 加入购物车请求
type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

// UpdateCartItemRequest 购物车项数量更新请求。
// Quantity 用指针以区分缺省与显式 0，0 等价于删除。
type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" binding:"required"`
}

// CartEntryResponse 购物车项响应（含行小计）
type CartEntryResponse struct {
	Product   catalog.Product `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal models.Money    `json:"line_total"`
}

// GetCart 获取当前会话购物车
func (h *Handler) GetCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	view, err := h.CartService.Cart(sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "cart unavailable", err)
		return
	}
	entries := make([]CartEntryResponse, 0, len(view.Entries))
	for _, entry := range view.Entries {
		line := entry.Product.Price.Mul(decimal.NewFromInt(int64(entry.Quantity)))
		entries = append(entries, CartEntryResponse{
			Product:   entry.Product,
			Quantity:  entry.Quantity,
			LineTotal: models.NewMoneyFromDecimal(line),
		})
	}
	shipping := decimal.NewFromInt(constants.ShippingSurchargeUnits)
	response.Success(c, gin.H{
		"entries":  entries,
		"count":    view.Count,
		"subtotal": view.Subtotal,
		"shipping": models.NewMoneyFromDecimal(shipping),
		"total":    models.NewMoneyFromDecimal(view.Subtotal.Add(shipping)),
	})
}

// AddCartItem 加入商品到购物车
func (h *Handler) AddCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	var req AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if err := h.CartService.AddItem(sessionID, req.ProductID); err != nil {
		respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	count, err := h.CartService.Count(sessionID)
	if err != nil {
		respondError(c, response.CodeInternal, "cart unavailable", err)
		return
	}
	response.Success(c, gin.H{"added": true, "count": count})
}

// UpdateCartItem 设置购物车项数量
func (h *Handler) UpdateCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID := c.Param("product_id")
	if productID == "" {
		respondError(c, response.CodeBadRequest, "product id is required", nil)
		return
	}
	var req UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "bad request", err)
		return
	}
	if err := h.CartService.UpdateQuantity(sessionID, productID, *req.Quantity); err != nil {
		respondWithMappedError(c, err, cartMutationErrorRules, response.CodeInternal, "cart update failed")
		return
	}
	response.Success(c, gin.H{"updated": true})
}

// DeleteCartItem 删除购物车项
func (h *Handler) DeleteCartItem(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	productID := c.Param("product_id")
	if productID == "" {
		respondError(c, response.CodeBadRequest, "product id is required", nil)
		return
	}
	if err := h.CartService.RemoveItem(sessionID, productID); err != nil {
		respondError(c, response.CodeInternal, "cart update failed", err)
		return
	}
	response.Success(c, gin.H{"deleted": true})
}

// ClearCart 清空当前会话购物车
func (h *Handler) ClearCart(c *gin.Context) {
	sessionID, ok := getSessionID(c)
	if !ok {
		return
	}
	if err := h.CartService.Clear(sessionID); err != nil {
		respondError(c, response.CodeInternal, "cart update failed", err)
		return
	}
	response.Success(c, gin.H{"cleared": true})
}
