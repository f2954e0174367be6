package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/tidwall/gjson"

	"github.com/dmitrijs2005/pulse/internal/client/models"
	"github.com/dmitrijs2005/pulse/internal/common"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

const (
	PathSignup    = "/api/auth/signup"
	PathLogin     = "/api/auth/login"
	PathVerifyOTP = "/api/auth/verify-otp"
	PathOrders    = "/api/orders"
	PathContact   = "/send-email"
)

type HTTPClient struct {
	rc     *resty.Client
	logger logging.Logger
}

func NewHTTPClient(baseURL string, timeout time.Duration, logger logging.Logger) *HTTPClient {
	rc := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetJSONMarshaler(json.Marshal).
		SetJSONUnmarshaler(json.Unmarshal).
		OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
			r.SetHeader(common.RequestIDHeaderName, uuid.NewString())
			return nil
		})

	return &HTTPClient{rc: rc, logger: logger}
}

func (c *HTTPClient) Signup(ctx context.Context, req models.SignupRequest) error {
	_, err := c.post(ctx, PathSignup, "", req)
	return err
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (*models.Session, error) {
	resp, err := c.post(ctx, PathLogin, "", models.LoginRequest{Email: email, Password: password})
	if err != nil {
		return nil, err
	}
	return decodeSession(resp)
}

// VerifyOTP exchanges email and code for a session. Both 200 and 201 count
// as success.
func (c *HTTPClient) VerifyOTP(ctx context.Context, email, otp string) (*models.Session, error) {
	resp, err := c.post(ctx, PathVerifyOTP, "", models.VerifyOTPRequest{Email: email, OTP: otp})
	if err != nil {
		return nil, err
	}
	return decodeSession(resp)
}

// PlaceOrder submits order with token as bearer credentials and returns
// the id the server assigned, or "" if it sent none.
func (c *HTTPClient) PlaceOrder(ctx context.Context, token string, order models.Order) (string, error) {
	resp, err := c.post(ctx, PathOrders, token, order)
	if err != nil {
		return "", err
	}

	body := resp.String()
	for _, path := range []string{"id", "order.id", "_id", "order._id"} {
		if id := gjson.Get(body, path); id.Exists() {
			return id.String(), nil
		}
	}
	return "", nil
}

func (c *HTTPClient) SendContact(ctx context.Context, msg models.ContactMessage) error {
	_, err := c.post(ctx, PathContact, "", msg)
	return err
}

func (c *HTTPClient) post(ctx context.Context, path, token string, body any) (*resty.Response, error) {
	r := c.rc.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if token != "" {
		r.SetAuthToken(token)
	}

	resp, err := r.Post(path)
	if err != nil {
		return nil, c.mapTransportError(ctx, path, err)
	}

	c.logger.Debug(ctx, "api call", "path", path, "status", resp.StatusCode(), "duration", resp.Time())

	if !resp.IsSuccess() {
		return nil, mapStatus(resp)
	}
	return resp, nil
}

func (c *HTTPClient) mapTransportError(ctx context.Context, path string, err error) error {
	if errors.Is(err, context.Canceled) {
		return err
	}
	c.logger.Warn(ctx, "api unreachable", "path", path, "error", err)
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}

func mapStatus(resp *resty.Response) error {
	e := &APIError{
		StatusCode: resp.StatusCode(),
		Message:    gjson.GetBytes(resp.Body(), "message").String(),
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		e.kind = ErrUnauthorized
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		e.kind = ErrUnavailable
	}
	return e
}

func decodeSession(resp *resty.Response) (*models.Session, error) {
	var s models.Session
	if err := json.Unmarshal(resp.Body(), &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadResponse, err)
	}
	if s.Token == "" {
		return nil, fmt.Errorf("%w: no token", ErrBadResponse)
	}
	return &s, nil
}
