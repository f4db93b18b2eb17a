package handler

import (
	"net/http"
	"strconv"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/labstack/echo/v4"
)

type ReservationHandler struct {
	uc *usecase.ReservationUsecase
}

func NewReservationHandler(uc *usecase.ReservationUsecase) *ReservationHandler {
	return &ReservationHandler{uc: uc}
}

type ReservationCreateRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	DateTime string `json:"dateTime"`
	Notes    string `json:"notes"`
}

type ReservationStatusRequest struct {
	Status string `json:"status"`
}

func (h *ReservationHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/api/reservations", h.list)
	e.POST("/api/reservations", h.create)
}

// 予約ステータス更新は管理者のみ
func (h *ReservationHandler) RegisterAdminRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/api/admin/reservations")
	g.Use(middleware.AuthJWT(cfg))

	g.PATCH("/:id/status", h.updateStatus)
}

func (h *ReservationHandler) list(c echo.Context) error {
	out, err := h.uc.ListReservations(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ReservationHandler) create(c echo.Context) error {
	var req ReservationCreateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateReservation(c.Request().Context(), usecase.CreateReservationInput{
		Name:     req.Name,
		Email:    req.Email,
		DateTime: req.DateTime,
		Notes:    req.Notes,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, out)
}

func (h *ReservationHandler) updateStatus(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req ReservationStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AdminUpdateStatus(c.Request().Context(), id, req.Status)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
