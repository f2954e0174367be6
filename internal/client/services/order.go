package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pulse/internal/client/catalog"
	"github.com/dmitrijs2005/pulse/internal/client/client"
	"github.com/dmitrijs2005/pulse/internal/client/models"
	"github.com/dmitrijs2005/pulse/internal/client/session"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

// ErrAuthenticationRequired means there is no usable session; the caller
// must send the user to sign in instead of ordering.
var ErrAuthenticationRequired = errors.New("authentication required")

// OrderService guards and submits bulk orders.
type OrderService interface {
	Start(ctx context.Context, productID string) (catalog.Product, error)
	Place(ctx context.Context, form models.OrderForm) (*models.OrderReceipt, error)
}

type orderService struct {
	client client.Client
	gate   *session.Gate
	logger logging.Logger
}

func NewOrderService(c client.Client, g *session.Gate, logger logging.Logger) OrderService {
	return &orderService{client: c, gate: g, logger: logger}
}

// Start opens the order flow for productID. It fails with
// ErrAuthenticationRequired when nobody is signed in.
func (o *orderService) Start(ctx context.Context, productID string) (catalog.Product, error) {
	if _, ok := o.gate.CurrentUser(ctx); !ok {
		return catalog.Product{}, ErrAuthenticationRequired
	}
	p, _ := catalog.Lookup(productID)
	return p, nil
}

// Place validates form and submits it. The session is checked first so
// that no request leaves without one.
func (o *orderService) Place(ctx context.Context, form models.OrderForm) (*models.OrderReceipt, error) {
	id, ok := o.gate.CurrentUser(ctx)
	if !ok {
		return nil, ErrAuthenticationRequired
	}

	if form.Country == "" {
		form.Country = models.DefaultCountry
	}
	if err := models.Validate(form); err != nil {
		return nil, err
	}

	product, _ := catalog.Lookup(form.ProductID)
	order := models.Order{
		UserName:        id.UserName(),
		Email:           id.Email(),
		UserID:          models.ID(id.UserID()),
		ProductID:       product.ID,
		ProductName:     product.Name,
		PricePerBottle:  product.Price,
		Quantity:        form.Quantity,
		TotalAmount:     product.Total(form.Quantity),
		BusinessName:    form.BusinessName,
		Phone:           form.Phone,
		DeliveryAddress: form.DeliveryAddress,
		City:            form.City,
		Country:         form.Country,
		BottlesPerWeek:  form.BottlesPerWeek,
		DeliveryDays:    form.DeliveryDays,
		Notes:           form.Notes,
	}
	if p, ok := o.gate.Profile(ctx); ok {
		order.UserName = p.UserName
		order.Email = p.Email
		order.UserID = p.ID
	}

	token, err := o.gate.Token(ctx)
	if err != nil {
		return nil, fmt.Errorf("read session token: %w", err)
	}

	orderID, err := o.client.PlaceOrder(ctx, token, order)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			return nil, fmt.Errorf("%w: %v", ErrAuthenticationRequired, err)
		}
		return nil, fmt.Errorf("place order: %w", err)
	}

	o.logger.Info(ctx, "order placed", "order_id", orderID, "product", product.ID, "quantity", order.Quantity)

	return &models.OrderReceipt{
		ID:          orderID,
		ProductName: product.Name,
		Quantity:    order.Quantity,
		TotalAmount: order.TotalAmount,
	}, nil
}
