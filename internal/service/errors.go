package service

import "errors"

// 业务错误定义。handler 层通过 errors.Is 映射为接口响应。
var (
	// ErrEmptyCart 空购物车结算
	ErrEmptyCart = errors.New("cart is empty")
	// ErrProductNotFound 商品不在目录中
	ErrProductNotFound = errors.New("product not found")
	// ErrOrderPersist 订单日志写入失败，购物车保持原样以便重试
	ErrOrderPersist = errors.New("order persist failed")
	// ErrOrderLogMalformed 订单日志解析失败，底层原始数据保持不动
	ErrOrderLogMalformed = errors.New("order log malformed")
)
