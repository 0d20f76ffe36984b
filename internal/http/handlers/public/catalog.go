package public

import (
	"github.com/gin-gonic/gin"

	"github.com/voltmart/internal/catalog"
	"github.com/voltmart/internal/http/response"
)

// GetCategories 获取首页分类列表
func (h *Handler) GetCategories(c *gin.Context) {
	response.Success(c, gin.H{"categories": catalog.Categories()})
}

// GetCategory 获取分类详情（含商品列表）
func (h *Handler) GetCategory(c *gin.Context) {
	categoryID := c.Param("id")
	category := catalog.GetCategory(categoryID)
	if category == nil {
		response.NotFound(c, "category not found")
		return
	}
	response.Success(c, gin.H{"category": category})
}
