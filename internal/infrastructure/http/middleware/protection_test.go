package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	"github.com/johnquangdev/meeting-tracker/pkg/config"
)

func ping(e *echo.Echo, setup func(r *http.Request)) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = "203.0.113.7:4000"
	if setup != nil {
		setup(req)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func pong(c echo.Context) error {
	return c.String(http.StatusOK, strings.Repeat("pong ", 400))
}

func TestRateLimit(t *testing.T) {
	e := newEcho()
	e.Use(RateLimit(config.RateLimitConfig{Window: time.Hour, Limit: 3}, nil))
	e.GET("/ping", pong)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, ping(e, nil).Code, "request %d", i+1)
	}

	rec := ping(e, nil)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "RATE_LIMITED", rec.Body.String())

	other := ping(e, func(r *http.Request) { r.RemoteAddr = "198.51.100.1:4000" })
	assert.Equal(t, http.StatusOK, other.Code, "limits are per client IP")
}

func TestCompression(t *testing.T) {
	acceptGzip := func(r *http.Request) { r.Header.Set(echo.HeaderAcceptEncoding, "gzip") }

	t.Run("production", func(t *testing.T) {
		e := newEcho()
		e.Use(Compression("production"))
		e.GET("/ping", pong)

		assert.Equal(t, "gzip", ping(e, acceptGzip).Header().Get(echo.HeaderContentEncoding))

		rec := ping(e, func(r *http.Request) {
			acceptGzip(r)
			r.Header.Set(NoCompressionHeader, "1")
		})
		assert.Empty(t, rec.Header().Get(echo.HeaderContentEncoding))
	})

	t.Run("development", func(t *testing.T) {
		e := newEcho()
		e.Use(Compression("development"))
		e.GET("/ping", pong)

		assert.Empty(t, ping(e, acceptGzip).Header().Get(echo.HeaderContentEncoding))
	})
}

func TestSecureHeaders(t *testing.T) {
	e := newEcho()
	e.Use(SecureHeaders())
	e.GET("/ping", pong)
	e.GET("/swagger/index.html", pong)

	rec := ping(e, nil)
	assert.Equal(t, "nosniff", rec.Header().Get(echo.HeaderXContentTypeOptions))
	assert.Equal(t, "SAMEORIGIN", rec.Header().Get(echo.HeaderXFrameOptions))
	assert.Equal(t, "no-referrer", rec.Header().Get(echo.HeaderReferrerPolicy))
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderContentSecurityPolicy))

	req := httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil)
	swagger := httptest.NewRecorder()
	e.ServeHTTP(swagger, req)
	assert.Empty(t, swagger.Header().Get(echo.HeaderContentSecurityPolicy))
}
