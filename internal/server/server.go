package server

import (
	"net/http"

	"app/internal/config"
	"app/internal/handler"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Product      *handler.ProductHandler
	Order        *handler.OrderHandler
	Reservation  *handler.ReservationHandler
	Auth         *handler.AuthHandler
	AdminProduct *handler.AdminProductHandler
}

// New はechoを組み立ててルートを登録する。起動はmain側。
func New(cfg config.Config, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]bool{"ok": true})
	})

	h.Product.RegisterRoutes(e)
	h.Order.RegisterRoutes(e)
	h.Reservation.RegisterRoutes(e)
	h.Reservation.RegisterAdminRoutes(e, cfg)
	h.Auth.RegisterRoutes(e)
	h.AdminProduct.RegisterRoutes(e, cfg)

	return e
}
