package usecase

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/shopspring/decimal"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

// SPAのカートはゆるい型のまま送ってくるので、明細はここで数値化する
type RawOrderItem struct {
	ProductID any `json:"productId"`
	Qty       any `json:"qty"`
}

type PlaceOrderInput struct {
	Name  string
	Email string
	Items []RawOrderItem
}

type OrderItemOutput struct {
	ID        int64           `json:"id"`
	ProductID int64           `json:"product_id"`
	Qty       int64           `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
	Product   model.Product   `json:"product"`
}

type OrderOutput struct {
	ID        int64             `json:"id"`
	Name      string            `json:"name"`
	Email     string            `json:"email"`
	Status    string            `json:"status"`
	Total     decimal.Decimal   `json:"total"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderItemOutput `json:"items"`
}

// 正規化済みの1行（同じ商品が複数行来てもマージしない）
type orderLine struct {
	ProductID int64
	Qty       int64
}

func (u *OrderUsecase) PlaceOrder(ctx context.Context, in PlaceOrderInput) (OrderOutput, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	if name == "" || email == "" {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "name and email are required")
	}
	if len(in.Items) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "items must be a non-empty array")
	}

	//数値化できない行・qty<=0の行は落とす（エラーにはしない）
	lines, ids := canonicalizeItems(in.Items)
	if len(lines) == 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "no valid items in order")
	}

	var out OrderOutput

	//読み→書きの順序は固定。価格はカタログが正で、リクエストの金額は信用しない
	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		products, err := r.Products().FindByIDs(ctx, ids)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		//1件でも欠けたら注文全体を拒否（部分注文は作らない）
		if len(products) != len(ids) {
			return NewHTTPError(http.StatusBadRequest, "one or more products not found")
		}

		byID := make(map[int64]model.Product, len(products))
		for _, p := range products {
			byID[p.ID] = p
		}

		order, items := buildOrder(name, email, lines, byID)

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		saved, err := r.OrderItems().CreateBulk(ctx, orderID, items)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		order.ID = orderID
		out = toOrderOutput(order, saved, byID)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// canonicalizeItems は明細を数値化し、生き残った行と重複なしの商品ID一覧を返す。
func canonicalizeItems(raw []RawOrderItem) ([]orderLine, []int64) {
	lines := make([]orderLine, 0, len(raw))
	seen := make(map[int64]struct{}, len(raw))
	ids := make([]int64, 0, len(raw))

	for _, it := range raw {
		productID, ok := coerceInt64(it.ProductID)
		if !ok {
			continue
		}
		qty, ok := coerceInt64(it.Qty)
		if !ok || qty <= 0 {
			continue
		}

		lines = append(lines, orderLine{ProductID: productID, Qty: qty})
		if _, dup := seen[productID]; !dup {
			seen[productID] = struct{}{}
			ids = append(ids, productID)
		}
	}
	return lines, ids
}

// JSONのnumberと数字文字列だけ受け付ける。小数や"x"は失敗扱い。
func coerceInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case float64:
		return floatToInt64(t)
	case string:
		s := strings.TrimSpace(t)
		if s == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return 0, false
		}
		return floatToInt64(f)
	case int64:
		return t, true
	case int:
		return int64(t), true
	default:
		return 0, false
	}
}

func floatToInt64(f float64) (int64, bool) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	if f != math.Trunc(f) {
		return 0, false
	}
	if f < math.MinInt64 || f > math.MaxInt64 {
		return 0, false
	}
	return int64(f), true
}

// buildOrder は明細ごとの金額と合計を計算する純粋な組み立て。
// 単価×数量のあと通貨の最小単位（2桁）に丸めて、合計はdecimalのまま足す。
func buildOrder(name, email string, lines []orderLine, byID map[int64]model.Product) (model.Order, []model.OrderItem) {
	now := time.Now()

	items := make([]model.OrderItem, 0, len(lines))
	total := decimal.Zero

	for _, l := range lines {
		unit := byID[l.ProductID].Price
		lineTotal := unit.Mul(decimal.NewFromInt(l.Qty)).Round(2)

		items = append(items, model.OrderItem{
			ProductID: l.ProductID,
			Qty:       l.Qty,
			UnitPrice: unit,
			LineTotal: lineTotal,
			CreatedAt: now,
		})
		total = total.Add(lineTotal)
	}

	order := model.Order{
		Name:      name,
		Email:     email,
		Status:    model.OrderStatusNew,
		Total:     total,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return order, items
}

func toOrderOutput(o model.Order, items []model.OrderItem, byID map[int64]model.Product) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ID:        it.ID,
			ProductID: it.ProductID,
			Qty:       it.Qty,
			UnitPrice: it.UnitPrice,
			LineTotal: it.LineTotal,
			Product:   byID[it.ProductID],
		})
	}

	return OrderOutput{
		ID:        o.ID,
		Name:      o.Name,
		Email:     o.Email,
		Status:    string(o.Status),
		Total:     o.Total,
		CreatedAt: o.CreatedAt,
		Items:     outItems,
	}
}
