package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/lumiforge/mealsub-backend/internal/config"
	"github.com/lumiforge/mealsub-backend/internal/telegram"
)

// Alerter доставляет сообщения об ошибках дежурным
type Alerter interface {
	SendAlert(msg string) error
}

type TelegramHandler struct {
	slog.Handler
	tg Alerter
}

func (h *TelegramHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= slog.LevelError && h.tg != nil {
		msg := r.Message
		r.Attrs(func(a slog.Attr) bool {
			if a.Key == "error" {
				msg += ": " + a.Value.String()
				return false
			}
			return true
		})
		if err := h.tg.SendAlert(msg); err != nil {
			// Пишем напрямую в stderr, чтобы не уйти в рекурсию через h.Handler
			os.Stderr.WriteString("Failed to send telegram alert: " + err.Error() + "\n")
		}
	}
	return h.Handler.Handle(ctx, r)
}

func (h *TelegramHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &TelegramHandler{
		Handler: h.Handler.WithAttrs(attrs),
		tg:      h.tg,
	}
}

func (h *TelegramHandler) WithGroup(name string) slog.Handler {
	return &TelegramHandler{
		Handler: h.Handler.WithGroup(name),
		tg:      h.tg,
	}
}

func New(cfg *config.Config, tg *telegram.Client) *slog.Logger {
	var alerter Alerter
	if tg != nil {
		alerter = tg
	}
	return newLogger(os.Stdout, cfg, alerter)
}

func newLogger(w io.Writer, cfg *config.Config, alerter Alerter) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level: ParseLevel(cfg.LogLevel),
	}
	jsonHandler := slog.NewJSONHandler(w, opts)
	tgHandler := &TelegramHandler{
		Handler: jsonHandler,
		tg:      alerter,
	}
	l := slog.New(tgHandler)
	if cfg.ServiceName != "" {
		l = l.With("service", cfg.ServiceName)
	}
	return l
}

// ParseLevel переводит MS_LOG_LEVEL в уровень slog, по умолчанию info
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type ctxKey struct{}

func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

func FromContext(ctx context.Context) *slog.Logger {
	if l, ok := ctx.Value(ctxKey{}).(*slog.Logger); ok {
		return l
	}
	return slog.Default()
}
