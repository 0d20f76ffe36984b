// Package catalog 提供编译期内置的静态商品目录。
// 目录在加载后只读，购物车与订单侧只消费、不修改。
package catalog

import "github.com/voltmart/internal/models"

// Product 目录商品
type Product struct {
	ID       string       `json:"id"`       // 目录内唯一标识
	Name     string       `json:"name"`     // 商品名称
	Price    models.Money `json:"price"`    // 单价（>0）
	Image    string       `json:"image"`    // 图片路径
	Category string       `json:"category"` // 所属分类
}

// Category 分类及其商品列表
type Category struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Products []Product `json:"products"`
}

// CategorySummary 首页分类摘要
type CategorySummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
}

// Categories 返回首页展示顺序的分类摘要列表
func Categories() []CategorySummary {
	out := make([]CategorySummary, len(categorySummaries))
	copy(out, categorySummaries)
	return out
}

// GetCategory 按分类 ID 获取分类详情，未收录的分类返回 nil
func GetCategory(id string) *Category {
	category, ok := categoryData[id]
	if !ok {
		return nil
	}
	products := make([]Product, len(category.Products))
	copy(products, category.Products)
	category.Products = products
	return &category
}

// FindProduct 按商品 ID 在全目录中查找商品，未找到返回 nil
func FindProduct(id string) *Product {
	product, ok := productIndex[id]
	if !ok {
		return nil
	}
	return &product
}

var productIndex = buildProductIndex()

func buildProductIndex() map[string]Product {
	index := make(map[string]Product)
	for _, category := range categoryData {
		for _, product := range category.Products {
			index[product.ID] = product
		}
	}
	return index
}
