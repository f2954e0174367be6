// Package mockapi runs a development stand-in for the Pulse API: signup
// with one-time codes, login, orders and the contact form, all in memory.
package mockapi

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/dmitrijs2005/pulse/internal/logging"
	"github.com/dmitrijs2005/pulse/internal/mockapi/config"
	"github.com/dmitrijs2005/pulse/internal/mockapi/httpapi"
	"github.com/dmitrijs2005/pulse/internal/mockapi/orders"
	"github.com/dmitrijs2005/pulse/internal/mockapi/users"
)

type App struct {
	config       *config.Config
	logger       logging.Logger
	userService  *users.Service
	orderService *orders.Service
}

func NewApp(c *config.Config, logger logging.Logger) *App {
	us := users.NewService(users.NewMemoryRepository(), c)
	ords := orders.NewService()

	return &App{config: c, logger: logger, userService: us, orderService: ords}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(app.config.ListenAddr, app.logger, app.userService, app.orderService, app.config.SecretKey)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is cancelled or the process receives a stop signal.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")
	if app.config.FixedOTP != "" {
		app.logger.Warn(ctx, "every signup gets the same code", "otp", app.config.FixedOTP)
	}

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()
}
