// Package httpapi exposes the mock Pulse API over HTTP with echo.
package httpapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/dmitrijs2005/pulse/internal/logging"
	"github.com/dmitrijs2005/pulse/internal/mockapi/orders"
	"github.com/dmitrijs2005/pulse/internal/mockapi/users"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	address   string
	echo      *echo.Echo
	users     *users.Service
	orders    *orders.Service
	logger    logging.Logger
	jwtSecret []byte
}

func NewServer(address string, l logging.Logger, us *users.Service, ords *orders.Service, secretKey string) *Server {
	s := &Server{
		address:   address,
		logger:    l.With("module", "http_server"),
		users:     us,
		orders:    ords,
		jwtSecret: []byte(secretKey),
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.JSONSerializer = jsonSerializer{}
	e.Validator = requestValidator{}
	e.HTTPErrorHandler = s.errorHandler
	e.Use(middleware.Recover())
	e.Use(s.requestLogger)

	e.POST("/api/auth/signup", s.signup)
	e.POST("/api/auth/verify-otp", s.verifyOTP)
	e.POST("/api/auth/login", s.login)
	e.POST("/send-email", s.sendEmail)

	g := e.Group("/api/orders", s.requireAuth)
	g.POST("", s.placeOrder)
	g.GET("", s.listOrders)

	s.echo = e
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "shutdown failed", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := s.echo.Start(s.address); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// errorHandler renders every error as {"message": "..."}.
func (s *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	msg := "Internal server error"

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = fmt.Sprint(he.Message)
	} else {
		s.logger.Error(c.Request().Context(), "request failed", "path", c.Path(), "error", err)
	}

	if c.Response().Committed {
		return
	}
	if err := c.JSON(code, map[string]string{"message": msg}); err != nil {
		s.logger.Error(c.Request().Context(), "error response failed", "error", err)
	}
}
