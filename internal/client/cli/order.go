package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/pulse/internal/client/catalog"
	"github.com/dmitrijs2005/pulse/internal/client/models"
	"github.com/dmitrijs2005/pulse/internal/client/services"
	"github.com/dmitrijs2005/pulse/internal/client/ui"
	"github.com/dmitrijs2005/pulse/internal/common"
)

// Products lists the catalog.
func (a *App) Products(ctx context.Context) error {
	for _, p := range catalog.All() {
		printlnFn(fmt.Sprintf("%-6s %-13s %s %d / bottle  (%s)", p.ID, p.Name, p.Currency, p.Price, p.SKU))
		printlnFn("       " + p.Description)
	}
	return nil
}

// Order walks through the order form for productID. Without a session the
// user is sent to sign in and nothing is submitted.
func (a *App) Order(ctx context.Context, productID string) error {
	if productID == "" {
		productID = catalog.DefaultProductID
	}

	product, err := a.orderService.Start(ctx, productID)
	if err != nil {
		if errors.Is(err, services.ErrAuthenticationRequired) {
			a.requireSignIn()
		}
		return err
	}

	a.Navigate(ui.RouteOrder)
	printlnFn(fmt.Sprintf("Ordering %s at %s %d per bottle (minimum %d bottles).", product.Name, product.Currency, product.Price, models.MinOrderQuantity))

	form, err := a.readOrderForm(product)
	if err != nil {
		return err
	}

	receipt, err := a.orderService.Place(ctx, form)
	if err != nil {
		a.logger.Warn(ctx, "order failed", "error", err)
		switch {
		case errors.Is(err, services.ErrAuthenticationRequired):
			a.requireSignIn()
		case errors.Is(err, common.ErrorValidation):
			a.Notify(errorNotice("Order", err, "Please check the order form."))
		default:
			a.Notify(ui.Notice{Level: ui.LevelError, Title: "Order", Message: "Failed to place order. Please try again."})
		}
		return err
	}

	msg := fmt.Sprintf("%d x %s, total %s %d.", receipt.Quantity, receipt.ProductName, product.Currency, receipt.TotalAmount)
	if receipt.ID != "" {
		msg = fmt.Sprintf("Order #%s: %s", receipt.ID, msg)
	}
	a.Notify(ui.Notice{Level: ui.LevelSuccess, Title: "Order placed", Message: msg})
	a.Navigate(ui.RouteHome)
	return nil
}

func (a *App) requireSignIn() {
	a.Notify(ui.Notice{Level: ui.LevelError, Title: "Authentication Required", Message: "Please sign in to place an order."})
	a.Navigate(ui.RouteAuth)
}

func (a *App) readOrderForm(product catalog.Product) (models.OrderForm, error) {
	form := models.OrderForm{ProductID: product.ID}

	qty, err := getSimpleText(a.reader, fmt.Sprintf("Quantity (bottles, at least %d)", models.MinOrderQuantity), a.out)
	if err != nil {
		return form, err
	}
	if form.Quantity, err = strconv.Atoi(qty); err != nil {
		form.Quantity = 0
	}

	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Business name", &form.BusinessName},
		{"Phone", &form.Phone},
		{"Delivery address", &form.DeliveryAddress},
		{"City", &form.City},
		{"Country (default " + models.DefaultCountry + ")", &form.Country},
		{"Bottles per week (optional)", &form.BottlesPerWeek},
	}
	for _, f := range fields {
		if *f.dst, err = getSimpleText(a.reader, f.prompt, a.out); err != nil {
			return form, err
		}
	}

	days, err := getSimpleText(a.reader, "Delivery days, comma separated (optional)", a.out)
	if err != nil {
		return form, err
	}
	form.DeliveryDays = splitList(days)

	if form.Notes, err = getSimpleText(a.reader, "Notes (optional)", a.out); err != nil {
		return form, err
	}
	return form, nil
}
