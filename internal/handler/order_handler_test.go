package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"app/internal/domain/model"
	"app/internal/handler"
	repo "app/internal/repository"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

// =====================
// In-memory fakes（JSONの型ゆれ込みでhandlerからusecaseまで通す）
// =====================

type fakeStore struct {
	products  []model.Product
	orders    []model.Order
	items     []model.OrderItem
	nextOrder int64
}

func (s *fakeStore) Orders() repo.OrderRepository         { return (*fakeOrderRepo)(s) }
func (s *fakeStore) OrderItems() repo.OrderItemRepository { return (*fakeOrderItemRepo)(s) }
func (s *fakeStore) Products() repo.ProductRepository     { return (*fakeProductRepo)(s) }

func (s *fakeStore) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(s)
}

type fakeOrderRepo fakeStore

func (r *fakeOrderRepo) Create(ctx context.Context, order model.Order) (int64, error) {
	r.nextOrder++
	order.ID = r.nextOrder
	r.orders = append(r.orders, order)
	return order.ID, nil
}

type fakeOrderItemRepo fakeStore

func (r *fakeOrderItemRepo) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) ([]model.OrderItem, error) {
	for i := range items {
		items[i].ID = int64(len(r.items) + 1)
		items[i].OrderID = orderID
		r.items = append(r.items, items[i])
	}
	return items, nil
}

type fakeProductRepo fakeStore

func (r *fakeProductRepo) List(ctx context.Context) ([]model.Product, error) {
	return r.products, nil
}

func (r *fakeProductRepo) FindByIDs(ctx context.Context, ids []int64) ([]model.Product, error) {
	var found []model.Product
	for _, id := range ids {
		for _, p := range r.products {
			if p.ID == id {
				found = append(found, p)
			}
		}
	}
	return found, nil
}

func (r *fakeProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in OrderHandler tests")
}

func (r *fakeProductRepo) Delete(ctx context.Context, id int64) error {
	panic("not used in OrderHandler tests")
}

func newOrderServer(store *fakeStore) *echo.Echo {
	e := echo.New()
	h := handler.NewOrderHandler(usecase.NewOrderUsecase(store))
	h.RegisterRoutes(e)
	return e
}

func seededStore() *fakeStore {
	return &fakeStore{
		products: []model.Product{
			{ID: 1, Name: "Coffee Beans 1kg", Price: decimal.RequireFromString("18.90")},
			{ID: 2, Name: "Ceramic Mug", Price: decimal.RequireFromString("12.50")},
		},
	}
}

func postOrder(e *echo.Echo, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// =====================
// Tests
// =====================

func TestOrderHandler_Create_Success(t *testing.T) {
	store := seededStore()
	e := newOrderServer(store)

	//3行目のqtyは"x"なので落ちる
	rec := postOrder(e, `{
		"name": "Anna",
		"email": "anna@example.com",
		"items": [
			{"productId": 1, "qty": 2},
			{"productId": 2, "qty": 1},
			{"productId": 2, "qty": "x"}
		]
	}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	body := rec.Body.String()
	assert.Contains(t, body, `"status":"new"`)
	assert.Contains(t, body, `"total":"50.3"`)
	assert.Contains(t, body, `"line_total":"37.8"`)
	assert.Contains(t, body, `"line_total":"12.5"`)
	assert.Contains(t, body, `"Coffee Beans 1kg"`)

	assert.Equal(t, 1, len(store.orders))
	assert.Equal(t, 2, len(store.items))
}

func TestOrderHandler_Create_EmptyItems(t *testing.T) {
	store := seededStore()
	e := newOrderServer(store)

	rec := postOrder(e, `{"name": "Anna", "email": "anna@example.com", "items": []}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "items must be a non-empty array")
	assert.Equal(t, 0, len(store.orders))
}

func TestOrderHandler_Create_MissingName(t *testing.T) {
	store := seededStore()
	e := newOrderServer(store)

	rec := postOrder(e, `{"email": "anna@example.com", "items": [{"productId": 1, "qty": 1}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "name and email are required")
}

func TestOrderHandler_Create_UnknownProduct_StoreUnchanged(t *testing.T) {
	store := seededStore()
	e := newOrderServer(store)

	rec := postOrder(e, `{
		"name": "Anna",
		"email": "anna@example.com",
		"items": [{"productId": 999, "qty": 1}]
	}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "products not found")

	//注文も明細も作られていない
	assert.Equal(t, 0, len(store.orders))
	assert.Equal(t, 0, len(store.items))
}

func TestOrderHandler_Create_InvalidJSON(t *testing.T) {
	store := seededStore()
	e := newOrderServer(store)

	rec := postOrder(e, `{"name": `)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid body")
}

// 同じペイロード2回で別IDの注文が2件
func TestOrderHandler_Create_TwiceCreatesTwoOrders(t *testing.T) {
	store := seededStore()
	e := newOrderServer(store)

	body := `{"name": "Anna", "email": "anna@example.com", "items": [{"productId": 1, "qty": 1}]}`

	rec1 := postOrder(e, body)
	rec2 := postOrder(e, body)

	assert.Equal(t, http.StatusCreated, rec1.Code)
	assert.Equal(t, http.StatusCreated, rec2.Code)
	assert.Equal(t, 2, len(store.orders))
	assert.NotEqual(t, store.orders[0].ID, store.orders[1].ID)
}
