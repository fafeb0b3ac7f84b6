package server

import (
	"net/http"
	"time"

	"storefront/internal/config"
	"storefront/internal/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func RegisterRoutes(
	e *echo.Echo,
	cfg config.Config,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
) {
	api := e.Group("/api")

	authH.RegisterRoutes(api, cfg)
	productH.RegisterRoutes(api)
	cartH.RegisterRoutes(api, cfg)
	orderH.RegisterRoutes(api, cfg)

	api.GET("/health", health)

	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
}

func health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}
