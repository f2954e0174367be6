package services

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/pulse/internal/client/client"
	"github.com/dmitrijs2005/pulse/internal/client/models"
	"github.com/dmitrijs2005/pulse/internal/common"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

func orderForm() models.OrderForm {
	return models.OrderForm{
		ProductID:       "1.5L",
		Quantity:        2000,
		BusinessName:    "Cafe Blue",
		Phone:           "+92 300 0000000",
		DeliveryAddress: "1 Mall Road",
		City:            "Lahore",
		BottlesPerWeek:  "500",
		DeliveryDays:    []string{"Monday", "Thursday"},
		Notes:           "back gate",
	}
}

func TestOrder_NoSessionNeverCallsAPI(t *testing.T) {
	fc := &fakeClient{}
	_, g := setupStore(t)
	o := NewOrderService(fc, g, logging.Nop())

	_, err := o.Start(context.Background(), "500ml")
	require.ErrorIs(t, err, ErrAuthenticationRequired)

	_, err = o.Place(context.Background(), orderForm())
	require.ErrorIs(t, err, ErrAuthenticationRequired)
	assert.Zero(t, fc.OrderCalls)
}

func TestOrder_ExpiredSessionIsNoSession(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	_, g := setupStore(t)
	o := NewOrderService(fc, g, logging.Nop())

	tok := validToken(t, jwt.MapClaims{"exp": testNow.Add(-time.Second).Unix()})
	require.NoError(t, g.Login(ctx, tok, models.UserProfile{ID: "1"}))

	_, err := o.Place(ctx, orderForm())
	require.ErrorIs(t, err, ErrAuthenticationRequired)
	assert.Zero(t, fc.OrderCalls)
}

func TestOrder_Place(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{OrderRet: "ord-1"}
	_, g := setupStore(t)
	o := NewOrderService(fc, g, logging.Nop())

	tok := validToken(t, jwt.MapClaims{"id": 7, "email": "a@b.com"})
	require.NoError(t, g.Login(ctx, tok, models.UserProfile{ID: "7", UserName: "A", Email: "a@b.com"}))

	p, err := o.Start(ctx, "1.5L")
	require.NoError(t, err)
	assert.Equal(t, 45, p.Price)

	r, err := o.Place(ctx, orderForm())
	require.NoError(t, err)

	assert.Equal(t, &models.OrderReceipt{ID: "ord-1", ProductName: "1.5L Bottle", Quantity: 2000, TotalAmount: 90000}, r)
	assert.Equal(t, tok, fc.LastToken)
	assert.Equal(t, models.Order{
		UserName:        "A",
		Email:           "a@b.com",
		UserID:          "7",
		ProductID:       "1.5L",
		ProductName:     "1.5L Bottle",
		PricePerBottle:  45,
		Quantity:        2000,
		TotalAmount:     90000,
		BusinessName:    "Cafe Blue",
		Phone:           "+92 300 0000000",
		DeliveryAddress: "1 Mall Road",
		City:            "Lahore",
		Country:         "Pakistan",
		BottlesPerWeek:  "500",
		DeliveryDays:    []string{"Monday", "Thursday"},
		Notes:           "back gate",
	}, fc.LastOrder)
}

func TestOrder_ClaimsUsedWithoutProfile(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	s, g := setupStore(t)
	o := NewOrderService(fc, g, logging.Nop())

	tok := validToken(t, jwt.MapClaims{"id": 9, "email": "c@d.com", "userName": "C"})
	require.NoError(t, s.Set(ctx, common.KeyToken, []byte(tok)))

	_, err := o.Place(ctx, orderForm())
	require.NoError(t, err)
	assert.Equal(t, models.ID("9"), fc.LastOrder.UserID)
	assert.Equal(t, "c@d.com", fc.LastOrder.Email)
	assert.Equal(t, "C", fc.LastOrder.UserName)
}

func TestOrder_Validation(t *testing.T) {
	ctx := context.Background()
	fc := &fakeClient{}
	_, g := setupStore(t)
	o := NewOrderService(fc, g, logging.Nop())
	require.NoError(t, g.Login(ctx, validToken(t, jwt.MapClaims{}), models.UserProfile{ID: "1"}))

	form := orderForm()
	form.Quantity = 10
	_, err := o.Place(ctx, form)
	require.ErrorIs(t, err, common.ErrorValidation)
	assert.Contains(t, err.Error(), "Minimum order is 1000 bottles.")
	assert.Zero(t, fc.OrderCalls)
}

func TestOrder_ServerErrors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "unauthorized", err: fmt.Errorf("%w", client.ErrUnauthorized), want: ErrAuthenticationRequired},
		{name: "unavailable", err: client.ErrUnavailable, want: client.ErrUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fc := &fakeClient{OrderErr: tt.err}
			_, g := setupStore(t)
			o := NewOrderService(fc, g, logging.Nop())
			require.NoError(t, g.Login(ctx, validToken(t, jwt.MapClaims{}), models.UserProfile{ID: "1"}))

			_, err := o.Place(ctx, orderForm())
			require.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
