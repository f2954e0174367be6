package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dmitrijs2005/pulse/internal/client/models"
	"github.com/dmitrijs2005/pulse/internal/mockapi/auth"
	"github.com/dmitrijs2005/pulse/internal/mockapi/orders"
	"github.com/dmitrijs2005/pulse/internal/mockapi/users"
)

type messageResponse struct {
	Message string `json:"message"`
}

type verifyOTPRequest struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6"`
}

type orderRef struct {
	ID string `json:"id"`
}

type placeOrderResponse struct {
	Message string   `json:"message"`
	Order   orderRef `json:"order"`
}

type orderView struct {
	ID string `json:"id"`
	models.Order
}

type listOrdersResponse struct {
	Orders []orderView `json:"orders"`
}

// bindValid decodes the body into req and validates it.
func bindValid(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return err
	}
	return c.Validate(req)
}

func toSession(s *users.Session) models.Session {
	return models.Session{
		Token: s.Token,
		User: models.UserProfile{
			ID:       models.ID(strconv.FormatInt(s.User.ID, 10)),
			UserName: s.User.UserName,
			Email:    s.User.Email,
		},
	}
}

func (s *Server) signup(c echo.Context) error {
	var req models.SignupRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	ctx := c.Request().Context()
	code, err := s.users.Signup(ctx, req.UserName, req.Email, []byte(req.Password))
	switch {
	case errors.Is(err, users.ErrorAlreadyExists):
		return echo.NewHTTPError(http.StatusConflict, "User already exists")
	case err != nil:
		return err
	}

	// There is no mailer; the code goes to the log.
	s.logger.Info(ctx, "otp issued", "email", req.Email, "otp", code)

	return c.JSON(http.StatusCreated, messageResponse{Message: "OTP sent to your email"})
}

func (s *Server) verifyOTP(c echo.Context) error {
	var req verifyOTPRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	sess, err := s.users.VerifyOTP(c.Request().Context(), req.Email, req.OTP)
	switch {
	case errors.Is(err, users.ErrorNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "User not found")
	case errors.Is(err, users.ErrorInvalidOTP):
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid or expired OTP")
	case err != nil:
		return err
	}

	return c.JSON(http.StatusCreated, toSession(sess))
}

func (s *Server) login(c echo.Context) error {
	var req models.LoginRequest
	if err := bindValid(c, &req); err != nil {
		return err
	}

	sess, err := s.users.Login(c.Request().Context(), req.Email, []byte(req.Password))
	switch {
	case errors.Is(err, users.ErrorNotFound), errors.Is(err, users.ErrorUnauthorized):
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, users.ErrorNotVerified):
		return echo.NewHTTPError(http.StatusForbidden, "Please verify your email first")
	case err != nil:
		return err
	}

	return c.JSON(http.StatusOK, toSession(sess))
}

func (s *Server) placeOrder(c echo.Context) error {
	claims := c.Get(claimsKey).(*auth.Claims)

	var req models.Order
	if err := c.Bind(&req); err != nil {
		return err
	}

	o, err := s.orders.Place(c.Request().Context(), claims.UserID, req)
	if errors.Is(err, orders.ErrorBelowMinimum) {
		return echo.NewHTTPError(http.StatusBadRequest, "Minimum order is 1000 bottles.")
	}
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, placeOrderResponse{
		Message: "Order placed successfully",
		Order:   orderRef{ID: strconv.FormatInt(o.ID, 10)},
	})
}

func (s *Server) listOrders(c echo.Context) error {
	claims := c.Get(claimsKey).(*auth.Claims)

	resp := listOrdersResponse{Orders: []orderView{}}
	for _, o := range s.orders.List(c.Request().Context(), claims.UserID) {
		resp.Orders = append(resp.Orders, orderView{ID: strconv.FormatInt(o.ID, 10), Order: o.Order})
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) sendEmail(c echo.Context) error {
	var req models.ContactMessage
	if err := bindValid(c, &req); err != nil {
		return err
	}

	s.logger.Info(c.Request().Context(), "contact message", "name", req.Name, "email", req.Email)

	return c.JSON(http.StatusOK, messageResponse{Message: "Email sent successfully"})
}
