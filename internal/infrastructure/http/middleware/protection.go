package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/johnquangdev/meeting-tracker/errors"
	"github.com/johnquangdev/meeting-tracker/pkg/config"
)

// NoCompressionHeader lets a client opt out of gzip
const NoCompressionHeader = "X-No-Compression"

// RateLimit allows cfg.Limit requests per client IP per cfg.Window.
// Denied requests fail with errors.ErrRateLimited.
func RateLimit(cfg config.RateLimitConfig, logger *zap.Logger) echo.MiddlewareFunc {
	if logger == nil {
		logger = zap.NewNop()
	}
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(float64(cfg.Limit) / cfg.Window.Seconds()),
		Burst:     cfg.Limit,
		ExpiresIn: cfg.Window,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("http.rate_limit.exceeded",
				zap.String("ip", identifier),
				zap.String("path", c.Path()),
			)
			return errors.ErrRateLimited()
		},
	})
}

// SecureHeaders sets the usual hardening headers. The swagger UI relies on
// inline scripts, so it is served without a content security policy.
func SecureHeaders() echo.MiddlewareFunc {
	return echomw.SecureWithConfig(echomw.SecureConfig{
		XSSProtection:         "0",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "SAMEORIGIN",
		HSTSMaxAge:            15552000,
		ContentSecurityPolicy: "default-src 'self'; base-uri 'self'; frame-ancestors 'self'; object-src 'none'",
		ReferrerPolicy:        "no-referrer",
		Skipper: func(c echo.Context) bool {
			return strings.HasPrefix(c.Request().URL.Path, "/swagger/")
		},
	})
}

// Compression gzips responses outside development unless the client sends
// X-No-Compression.
func Compression(environment string) echo.MiddlewareFunc {
	return echomw.GzipWithConfig(echomw.GzipConfig{
		Level: 6,
		Skipper: func(c echo.Context) bool {
			return environment == "development" || c.Request().Header.Get(NoCompressionHeader) != ""
		},
	})
}
