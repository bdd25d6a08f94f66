package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/dmitrijs2005/handylink/internal/client/client"
	"github.com/dmitrijs2005/handylink/internal/client/config"
	"github.com/dmitrijs2005/handylink/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/handylink/internal/client/services"
	"github.com/dmitrijs2005/handylink/internal/client/validation"
	"github.com/dmitrijs2005/handylink/internal/logging"
)

// App holds the services the commands run against and the I/O they use.
type App struct {
	auth     services.AuthService
	market   *services.MarketplaceService
	validate *validation.Validator
	reader   *bufio.Reader
	out      io.Writer
}

func NewApp(auth services.AuthService, market *services.MarketplaceService, in io.Reader, out io.Writer) *App {
	return &App{
		auth:     auth,
		market:   market,
		validate: validation.New(),
		reader:   bufio.NewReader(in),
		out:      out,
	}
}

// AppFactory builds an App for cfg. The returned close function releases
// the session store.
type AppFactory func(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) (*App, func() error, error)

// NewAppFromConfig wires the logger, the session store, the HTTP client and
// the services described by cfg.
func NewAppFromConfig(ctx context.Context, cfg *config.Config, in io.Reader, out, errOut io.Writer) (*App, func() error, error) {
	log, err := logging.New(errOut, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return nil, nil, err
	}

	store, closeStore, err := metadata.Open(ctx, cfg.StoreOptions())
	if err != nil {
		return nil, nil, fmt.Errorf("open session store: %w", err)
	}

	api, err := client.NewHTTPClient(cfg.APIBaseURL, cfg.RequestTimeout, log)
	if err != nil {
		_ = closeStore()
		_ = logging.Sync(log)
		return nil, nil, err
	}

	auth := services.NewAuthService(api, store, log)
	market := services.NewMarketplaceService(api, auth, log)
	log.Debug(ctx, "client ready", "api", cfg.APIBaseURL, "store", cfg.Store.Driver)

	closeFn := func() error {
		return errors.Join(closeStore(), logging.Sync(log))
	}
	return NewApp(auth, market, in, out), closeFn, nil
}

func (a *App) printf(format string, args ...any) {
	fmt.Fprintf(a.out, format, args...)
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// check runs form validation.
func (a *App) check(form any) error {
	return a.validate.Struct(form)
}

// text returns v, or prompts for it when v is empty.
func (a *App) text(v, prompt string) (string, error) {
	if v != "" {
		return v, nil
	}
	return GetSimpleText(a.reader, prompt, a.out)
}

func (a *App) password(prompt string) ([]byte, error) {
	return GetPassword(a.reader, prompt, a.out)
}
