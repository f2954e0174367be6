package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/pulse/internal/client/client"
	"github.com/dmitrijs2005/pulse/internal/client/config"
	"github.com/dmitrijs2005/pulse/internal/client/services"
	"github.com/dmitrijs2005/pulse/internal/client/session"
	"github.com/dmitrijs2005/pulse/internal/client/store"
	"github.com/dmitrijs2005/pulse/internal/client/ui"
	"github.com/dmitrijs2005/pulse/internal/logging"
)

type App struct {
	config         *config.Config
	logger         logging.Logger
	store          store.Store
	gate           *session.Gate
	authService    services.AuthService
	orderService   services.OrderService
	contactService services.ContactService
	reader         *bufio.Reader
	out            io.Writer
	route          string
}

// NewApp opens the store named in c and builds the services on top of it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	st, err := store.Open(ctx, c.StoreDSN)
	if err != nil {
		logger.Error(ctx, "error opening store", "dsn", c.StoreDSN, "error", err)
		return nil, err
	}

	apiClient := client.NewHTTPClient(c.BaseURL, c.RequestTimeout, logger)
	return newApp(c, logger, st, apiClient), nil
}

func newApp(c *config.Config, logger logging.Logger, st store.Store, apiClient client.Client) *App {
	gate := session.NewGate(st, logger)
	return &App{
		config:         c,
		logger:         logger,
		store:          st,
		gate:           gate,
		authService:    services.NewAuthService(apiClient, st, gate, logger),
		orderService:   services.NewOrderService(apiClient, gate, logger),
		contactService: services.NewContactService(apiClient, gate, logger),
		reader:         bufio.NewReader(os.Stdin),
		out:            os.Stdout,
		route:          ui.RouteHome,
	}
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	defer func() {
		if err := a.store.Close(); err != nil {
			a.logger.Warn(ctx, "store close failed", "error", err)
		}
	}()

	printlnFn("Welcome to Pulse (type 'help' for commands)")
	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, bufio.NewScanner(a.reader))
}

func (a *App) getStatus(ctx context.Context) string {
	if p, ok := a.gate.Profile(ctx); ok && p.UserName != "" {
		return fmt.Sprintf("(%s)", p.UserName)
	}
	if id, ok := a.gate.CurrentUser(ctx); ok && id.Email() != "" {
		return fmt.Sprintf("(%s)", id.Email())
	}
	return ""
}

func (a *App) isLoggedIn() bool {
	_, ok := a.gate.CurrentUser(context.Background())
	return ok
}

// Notify prints n as a styled notice.
func (a *App) Notify(n ui.Notice) {
	printlnFn(renderNotice(n))
}

// Navigate records the current route of the client.
func (a *App) Navigate(route string) {
	if a.route == route {
		return
	}
	a.logger.Debug(context.Background(), "navigate", "from", a.route, "to", route)
	a.route = route
	printlnFn(routeStyle.Render("→ " + route))
}

// Route returns the current route.
func (a *App) Route() string {
	return a.route
}
