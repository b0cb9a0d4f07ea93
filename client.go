package shopclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/ecmarket/shopclient/pkg/api"
	"github.com/ecmarket/shopclient/pkg/authz"
	"github.com/ecmarket/shopclient/pkg/cart"
	"github.com/ecmarket/shopclient/pkg/config"
	"github.com/ecmarket/shopclient/pkg/credstore"
	"github.com/ecmarket/shopclient/pkg/logger"
	"github.com/ecmarket/shopclient/pkg/notify"
	"github.com/ecmarket/shopclient/pkg/redis"
	"github.com/ecmarket/shopclient/pkg/session"
)

// ErrUnknownBackend is returned by New when the configured credentials
// backend is not one of "file", "memory", or "redis".
var ErrUnknownBackend = errors.New("shopclient.unknown_credentials_backend")

// Config holds everything needed to assemble a Client. Fields are populated
// from environment variables via NewFromEnv or set directly.
type Config struct {
	APIBaseURL string        `env:"SHOP_API_BASE_URL,required"`
	APITimeout time.Duration `env:"SHOP_API_TIMEOUT" envDefault:"30s"`

	// CredentialsBackend selects where the bearer token persists across
	// restarts: "file", "memory", or "redis".
	CredentialsBackend string `env:"SHOP_CREDENTIALS_BACKEND" envDefault:"file"`

	// CredentialsFile is the slot path for the file backend. Empty means a
	// per-user default under the OS config directory.
	CredentialsFile string `env:"SHOP_CREDENTIALS_FILE"`

	Redis redis.Config
}

// Client bundles the marketplace SDK: the HTTP transport, the session
// manager, and the cart mirror, wired together and sharing one logger.
type Client struct {
	api      *api.Client
	sessions *session.Manager
	cart     *cart.Cache

	log        *slog.Logger
	notifier   notify.Notifier
	httpClient *http.Client
	creds      credstore.Store
	redis      *goredis.Client

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// Option configures a Client before wiring.
type Option func(*Client)

// WithLogger sets the logger shared by every component. Defaults to a
// discard logger.
func WithLogger(log *slog.Logger) Option {
	return func(c *Client) {
		if log != nil {
			c.log = log
		}
	}
}

// WithNotifier sets the channel for user-facing cart feedback.
func WithNotifier(n notify.Notifier) Option {
	return func(c *Client) {
		if n != nil {
			c.notifier = n
		}
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithCredentialStore overrides the credential store, bypassing the
// configured backend entirely.
func WithCredentialStore(store credstore.Store) Option {
	return func(c *Client) {
		c.creds = store
	}
}

// New assembles a Client from cfg. The context bounds backend setup, e.g.
// the Redis connection attempt.
func New(ctx context.Context, cfg Config, opts ...Option) (*Client, error) {
	c := &Client{
		log:      logger.NewDiscard(),
		notifier: notify.Noop{},
	}
	for _, opt := range opts {
		opt(c)
	}

	apiOpts := []api.Option{
		api.WithTimeout(cfg.APITimeout),
		api.WithLogger(c.log),
	}
	if c.httpClient != nil {
		apiOpts = append(apiOpts, api.WithHTTPClient(c.httpClient))
	}
	apiClient, err := api.New(cfg.APIBaseURL, apiOpts...)
	if err != nil {
		return nil, err
	}
	c.api = apiClient

	if c.creds == nil {
		creds, err := c.openCredentialStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		c.creds = creds
	}

	c.sessions = session.New(apiClient, c.creds, session.WithLogger(c.log))
	c.cart = cart.NewCache(apiClient, c.sessions,
		cart.WithNotifier(c.notifier),
		cart.WithLogger(c.log),
	)

	return c, nil
}

// NewFromEnv loads Config from the environment (and an optional .env file)
// and assembles a Client.
func NewFromEnv(ctx context.Context, opts ...Option) (*Client, error) {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return nil, err
	}
	return New(ctx, cfg, opts...)
}

func (c *Client) openCredentialStore(ctx context.Context, cfg Config) (credstore.Store, error) {
	switch cfg.CredentialsBackend {
	case "file", "":
		return credstore.NewFileStore(credentialsPath(cfg), credstore.WithFileStoreLogger(c.log)), nil
	case "memory":
		return credstore.NewMemoryStore(), nil
	case "redis":
		rc, err := redis.Connect(ctx, cfg.Redis)
		if err != nil {
			return nil, err
		}
		c.redis = rc
		return credstore.NewRedisStore(rc, credstore.DefaultRedisKey), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, cfg.CredentialsBackend)
	}
}

func credentialsPath(cfg Config) string {
	if cfg.CredentialsFile != "" {
		return cfg.CredentialsFile
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "shopclient", "credential")
}

// Start launches the cart synchronization loop and resolves the stored
// credential. It returns the settled session state; an unusable credential
// yields an unauthenticated state, never an error.
func (c *Client) Start(ctx context.Context) session.State {
	runCtx, cancel := context.WithCancel(context.Background())
	c.cancel = cancel
	c.wg.Add(1)
	go func() {
		defer c.wg.Done()
		c.cart.Run(runCtx)
	}()

	return c.sessions.Resolve(ctx)
}

// Sessions returns the session manager.
func (c *Client) Sessions() *session.Manager {
	return c.sessions
}

// Cart returns the cart mirror.
func (c *Client) Cart() *cart.Cache {
	return c.cart
}

// API returns the low-level HTTP client.
func (c *Client) API() *api.Client {
	return c.api
}

// Decide evaluates a capability requirement against the current session
// state.
func (c *Client) Decide(required authz.Capability) authz.Decision {
	return authz.Decide(c.sessions.Current(), required)
}

// Close stops the synchronization loop and releases resources. The session
// itself is untouched: a persistent credential store keeps the user signed
// in across restarts.
func (c *Client) Close() error {
	if c.cancel != nil {
		c.cancel()
	}
	c.wg.Wait()

	err := c.sessions.Close()
	if c.redis != nil {
		err = errors.Join(err, c.redis.Close())
	}
	return err
}
