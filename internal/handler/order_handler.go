package handler

import (
	"net/http"

	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type OrderHandler struct {
	uc *usecase.OrderUsecase
}

func NewOrderHandler(uc *usecase.OrderUsecase) *OrderHandler {
	return &OrderHandler{uc: uc}
}

// 明細のproductId/qtyは型が揃っていない前提で受ける（数値化はusecase側）
type OrderCreateRequest struct {
	Name  string                 `json:"name"`
	Email string                 `json:"email"`
	Items []usecase.RawOrderItem `json:"items"`
}

func (h *OrderHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/api/orders", h.create)
}

func (h *OrderHandler) create(c echo.Context) error {
	var req OrderCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.PlaceOrder(c.Request().Context(), usecase.PlaceOrderInput{
		Name:  req.Name,
		Email: req.Email,
		Items: req.Items,
	})
	if err != nil {
		return writeError(c, err)
	}

	return c.JSON(http.StatusCreated, out)
}
