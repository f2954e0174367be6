package httpapi

import (
	"errors"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/pulse/internal/client/models"
	"github.com/dmitrijs2005/pulse/internal/common"
	"github.com/dmitrijs2005/pulse/internal/mockapi/auth"
)

const claimsKey = "claims"

// requireAuth accepts only requests carrying a valid bearer token and
// stores its claims in the context.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		header := c.Request().Header.Get(common.AuthorizationHeaderName)
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			return echo.NewHTTPError(401, "Authentication required")
		}

		claims, err := auth.ParseToken(token, s.jwtSecret)
		if err != nil {
			s.logger.Debug(c.Request().Context(), "token rejected", "error", err)
			return echo.NewHTTPError(401, "Invalid or expired token")
		}

		c.Set(claimsKey, claims)
		return next(c)
	}
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}

		s.logger.Info(c.Request().Context(), "request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"request_id", c.Request().Header.Get(common.RequestIDHeaderName),
			"duration", time.Since(start),
		)
		return nil
	}
}

// jsonSerializer is echo's JSON codec backed by goccy/go-json.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	if err := json.NewDecoder(c.Request().Body).Decode(i); err != nil {
		return echo.NewHTTPError(400, "Invalid request body").SetInternal(err)
	}
	return nil
}

// requestValidator applies the struct tags of the request models.
type requestValidator struct{}

func (requestValidator) Validate(i interface{}) error {
	if err := models.Validate(i); err != nil {
		var verr *models.ValidationError
		msg := err.Error()
		if errors.As(err, &verr) {
			msg = verr.UserMessage()
		}
		return echo.NewHTTPError(400, msg)
	}
	return nil
}
