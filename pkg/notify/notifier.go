package notify

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ecmarket/shopclient/pkg/logger"
)

// Level classifies a user-facing notification.
type Level string

const (
	LevelSuccess Level = "success"
	LevelError   Level = "error"
)

// Notification is a single user-facing message.
type Notification struct {
	Level   Level
	Message string
}

// Notifier is the side channel through which the SDK surfaces user-facing
// outcomes (the toast analog). Implementations must be safe for concurrent
// use and must not block.
type Notifier interface {
	Notify(ctx context.Context, n Notification)
}

// Success sends a success-level notification through n.
func Success(ctx context.Context, n Notifier, msg string) {
	if n != nil {
		n.Notify(ctx, Notification{Level: LevelSuccess, Message: msg})
	}
}

// Error sends an error-level notification through n.
func Error(ctx context.Context, n Notifier, msg string) {
	if n != nil {
		n.Notify(ctx, Notification{Level: LevelError, Message: msg})
	}
}

// Noop discards every notification. It is the default for components so
// that delivery stays an explicit caller decision.
type Noop struct{}

func (Noop) Notify(context.Context, Notification) {}

// Log writes notifications to a structured logger. Useful for headless
// consumers and tests.
type Log struct {
	Logger *slog.Logger
}

// NewLog creates a Log notifier. A nil logger falls back to a discard
// logger.
func NewLog(log *slog.Logger) *Log {
	if log == nil {
		log = logger.NewDiscard()
	}
	return &Log{Logger: log}
}

func (l *Log) Notify(ctx context.Context, n Notification) {
	level := slog.LevelInfo
	if n.Level == LevelError {
		level = slog.LevelWarn
	}
	l.Logger.LogAttrs(ctx, level, n.Message, slog.String("notification", string(n.Level)))
}

// Func adapts a function to the Notifier interface.
type Func func(ctx context.Context, n Notification)

func (f Func) Notify(ctx context.Context, n Notification) { f(ctx, n) }

// Recorder collects notifications for inspection in tests.
type Recorder struct {
	mu   sync.Mutex
	sent []Notification
}

func (r *Recorder) Notify(_ context.Context, n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sent = append(r.sent, n)
}

// Sent returns a copy of all recorded notifications.
func (r *Recorder) Sent() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.sent))
	copy(out, r.sent)
	return out
}
