// Package middleware carries the HTTP middlewares of the service.
package middleware

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"oshilog/internal/config"
)

// bodyCapture tees the response body into a buffer while forwarding it to
// the client, so a successful response can be cached after the handler ran.
type bodyCapture struct {
	http.ResponseWriter
	status int
	buf    bytes.Buffer
	limit  int
}

func (w *bodyCapture) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyCapture) Write(b []byte) (int, error) {
	switch {
	case w.limit < 0:
		// over budget, capture already abandoned
	case w.limit == 0 || w.buf.Len()+len(b) <= w.limit:
		w.buf.Write(b)
	default:
		w.buf.Reset()
		w.limit = -1
	}
	return w.ResponseWriter.Write(b)
}

func cacheKey(prefix string, c echo.Context) string {
	sum := sha1.Sum([]byte(c.Request().Method + ":" + c.Path() + "?" + c.Request().URL.RawQuery))
	return fmt.Sprintf("%s:%x", prefix, sum)
}

// ResponseCache caches successful JSON responses of the configured
// methods in Redis for the configured TTL.  The read-only projections
// (floor maps, calendar months, next event) are pure functions of store
// state, so a short TTL keeps them fresh enough while absorbing repeated
// reads.  With a nil client or disabled config the middleware is a no-op.
func ResponseCache(client *redis.Client, cfg config.CacheConfig) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if client == nil || !cfg.Enabled {
			return next
		}
		return func(c echo.Context) error {
			if !cfg.Methods[c.Request().Method] {
				return next(c)
			}
			ctx := c.Request().Context()
			key := cacheKey(cfg.Prefix, c)

			if body, err := client.Get(ctx, key).Bytes(); err == nil {
				return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, body)
			}

			cw := &bodyCapture{ResponseWriter: c.Response().Writer, limit: cfg.MaxBodyBytes}
			c.Response().Writer = cw
			if err := next(c); err != nil {
				return err
			}
			if cw.status == 0 || cw.status == http.StatusOK {
				if cw.buf.Len() > 0 {
					client.Set(ctx, key, cw.buf.Bytes(), cfg.TTL)
				}
			}
			return nil
		}
	}
}
