package rest

import (
	"fmt"
	"net/http"
	"time"

	"github.com/Semior001/newsdigest/pkg/logx"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"golang.org/x/exp/slog"
)

const requestIDHeader = "X-Request-ID"

// requestID puts the request id into the request context and the
// response headers. The id from the request is used, if present.
func requestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id := c.Request().Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.New().String()
			}

			ctx := logx.ContextWithRequestID(c.Request().Context(), id)
			c.SetRequest(c.Request().WithContext(ctx))
			c.Response().Header().Set(requestIDHeader, id)

			return next(c)
		}
	}
}

// recoverer recovers from panics and responds with a generic error.
func recoverer(lg *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}

				if r == http.ErrAbortHandler {
					panic(r)
				}

				lg.ErrorCtx(c.Request().Context(), "panic recovered", slog.String("panic", fmt.Sprint(r)))

				if c.Response().Committed {
					return
				}
				err = c.JSON(http.StatusInternalServerError, profileResponse{Message: msgInternalError})
			}()

			return next(c)
		}
	}
}

// accessLog logs every request.
func accessLog(lg *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			req := c.Request()

			lg.DebugCtx(ctx, "request received",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.String("remote", c.RealIP()),
			)

			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo write the error response, so the status is known
				c.Error(err)
			}

			lg.InfoCtx(ctx, "request processed",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
				slog.Int("status", c.Response().Status),
				slog.Int64("size", c.Response().Size),
				slog.Duration("duration", time.Since(start)),
				slog.Any("err", err),
			)

			return nil
		}
	}
}
