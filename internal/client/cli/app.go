package cli

import (
	"bufio"
	"context"
	"log"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/lookdine/lookdine/internal/client/api"
	"github.com/lookdine/lookdine/internal/client/cart"
	"github.com/lookdine/lookdine/internal/client/catalog"
	"github.com/lookdine/lookdine/internal/client/config"
	"github.com/lookdine/lookdine/internal/client/services"
	"github.com/lookdine/lookdine/internal/client/session"
	"github.com/lookdine/lookdine/internal/client/store"
	"github.com/lookdine/lookdine/internal/logging"

	_ "modernc.org/sqlite"
)

// ConnState reflects backend reachability as seen by the status watcher.
type ConnState string

const (
	ConnOnline  ConnState = "online"
	ConnOffline ConnState = "offline"
)

// Mode selects the audience profile. Teen mode hides dating cards on the
// people screen; adult is the default.
type Mode string

const (
	ModeAdult Mode = "adult"
	ModeTeen  Mode = "teen"
)

type App struct {
	config   *config.Config
	store    store.Store
	api      api.Client
	session  *session.Session
	chats    *services.ChatService
	searcher *catalog.Searcher
	cart     *cart.Cart
	reader   *bufio.Reader

	// mu guards Mode and Conn; Conn is flipped by the status watcher
	// goroutine while the REPL reads it.
	mu   sync.Mutex
	Mode Mode
	Conn ConnState
}

func NewApp(c *config.Config) (*App, error) {

	ctx := context.Background()

	st, err := store.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Printf("error initializing database: %s", err.Error())
		return nil, err
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	app := &App{
		config: c,
		store:  st,
		Mode:   ModeAdult,
		Conn:   ConnOffline,
		reader: bufio.NewReader(os.Stdin),
	}

	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, func() {
		printlnFn("Session expired, please log in again")
		app.session.Expire(context.Background())
	})
	app.api = apiClient

	provider := services.NewFallbackProvider(
		services.NewRemoteProvider(apiClient),
		services.NewLocalProvider(st),
		logger,
	)
	auth := services.NewAuthService(provider, st, logger)
	app.session = session.New(auth, st, apiClient, logger)
	app.chats = services.NewChatService(st)
	app.searcher = catalog.NewSearcher(apiClient, logger)
	app.cart = cart.New(catalog.DecorationItems)

	return app, nil
}

func (a *App) setConn(state ConnState) {
	a.mu.Lock()
	changed := a.Conn != state
	if changed {
		a.Conn = state
	}
	a.mu.Unlock()
	if changed {
		log.Printf("Switched to %s mode\n", state)
	}
}

func (a *App) connState() ConnState {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Conn
}

func (a *App) setMode(mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	if changed {
		a.Mode = mode
	}
	a.mu.Unlock()
	if changed {
		log.Printf("Switched to %s profile\n", mode)
	}
}

func (a *App) currentMode() Mode {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Mode
}

func (a *App) Run(ctx context.Context) {
	defer a.store.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// StartOnlineStatusWatcher probes the backend health endpoint on a fixed
// interval and flips Conn accordingly.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.api.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setConn(ConnOffline)
			} else {
				a.setConn(ConnOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}
