package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	Create(ctx context.Context, order model.Order) (int64, error)
}

type OrderItemRepository interface {
	// 採番済みの明細を返す
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) ([]model.OrderItem, error)
}
