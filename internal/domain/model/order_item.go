package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// UnitPriceはカタログ価格のスナップショット（後で価格が変わっても注文は変わらない）
type OrderItem struct {
	ID        int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64           `gorm:"not null;index" json:"order_id"`
	ProductID int64           `gorm:"not null;index" json:"product_id"`
	Qty       int64           `gorm:"not null" json:"qty"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"unit_price"`
	LineTotal decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"line_total"`
	CreatedAt time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}
