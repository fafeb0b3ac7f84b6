package server

import (
	"storefront/internal/config"
	"storefront/internal/handler"
	appmw "storefront/internal/middleware"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

// New はechoエンジンを組み立てて全ルートを登録する。
func New(
	cfg config.Config,
	authH *handler.AuthHandler,
	productH *handler.ProductHandler,
	cartH *handler.CartHandler,
	orderH *handler.OrderHandler,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Recover())
	e.Use(appmw.Metrics())
	e.Use(appmw.RequestLogger())

	//ブラウザSPAから叩くのでCORSを許可
	corsCfg := echomw.DefaultCORSConfig
	if cfg.FEURL != "" {
		corsCfg.AllowOrigins = []string{cfg.FEURL}
	}
	e.Use(echomw.CORSWithConfig(corsCfg))

	RegisterRoutes(e, cfg, authH, productH, cartH, orderH)

	return e
}

// Start は指定アドレスで待ち受ける。
func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}
