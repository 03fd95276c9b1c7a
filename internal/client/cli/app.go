// Package cli is the interactive wizard for the AMC onboarding
// questionnaire: a small REPL over the onboarding service.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/amcdesk/onboard/internal/client/config"
	"github.com/amcdesk/onboard/internal/client/portal"
	"github.com/amcdesk/onboard/internal/client/repositories/drafts"
	"github.com/amcdesk/onboard/internal/client/services"
	"github.com/amcdesk/onboard/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config  *config.Config
	svc     services.OnboardingService
	log     logging.Logger
	reader  *bufio.Reader
	token   *portal.TokenInfo
	offline bool
}

func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	reader := bufio.NewReader(os.Stdin)

	token := cfg.Token
	if token == "" {
		t, err := GetToken(os.Stdout)
		if err != nil {
			return nil, fmt.Errorf("reading token: %w", err)
		}
		token = string(t)
	}

	db, err := drafts.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("initializing local database: %w", err)
	}

	apiClient := portal.NewHTTPClient(cfg.PortalBaseURL, token, cfg.RequestTimeout)
	svc := services.NewOnboardingService(apiClient, drafts.NewSQLiteRepository(db), log)

	app := &App{config: cfg, svc: svc, log: log, reader: reader}

	if info, err := portal.PeekToken(token); err == nil {
		app.token = info
		if info.Expired(time.Now()) {
			log.Warn(ctx, "bearer token looks expired", "expires_at", info.ExpiresAt)
		}
	}

	return app, nil
}

// Run loads the onboarding record and enters the command loop.
func (a *App) Run(ctx context.Context) error {
	fromSnapshot, err := a.svc.Load(ctx)
	if err != nil {
		return fmt.Errorf("loading onboarding: %w", err)
	}
	a.offline = fromSnapshot
	if fromSnapshot {
		printlnFn("Portal unreachable; working from the local draft snapshot.")
	}

	printlnFn("Welcome to the AMC onboarding wizard (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
	return nil
}

// getStatus renders the prompt suffix: tenant, lifecycle status and
// wizard position.
func (a *App) getStatus() string {
	s := ""
	if a.token != nil && a.token.Tenant != "" {
		s = a.token.Tenant + " "
	}
	status := a.svc.Store().Status()
	if status == "" {
		status = "new"
	}
	s += string(status)
	if a.offline {
		s += " offline"
	}
	return fmt.Sprintf("(%s step %d/8)", s, a.svc.Store().CurrentStep())
}

func (a *App) editable() bool {
	return a.svc.Store().Editable()
}
