package config

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"
)

// Config holds application level configuration loaded from environment and
// flags. Secrets are never compiled in; the owner email, bot credentials and
// payment card come from the environment.
type Config struct {
	RunAddress      string
	DatabaseURI     string
	IdentityAddress string
	OwnerEmail      string
	PaymentCard     string

	SessionSecret string
	SessionTTL    time.Duration

	TelegramAPIAddress string
	TelegramBotToken   string
	TelegramChatID     string
	NotifyQueueSize    int
	NotifyMaxAttempts  int
	NotifyRetryDelay   time.Duration

	FeedRefreshInterval time.Duration
	ShutdownTimeout     time.Duration
}

const (
	defaultRunAddress          = ":8080"
	defaultSessionSecret       = "change-me-in-production"
	defaultSessionTTL          = 24 * time.Hour
	defaultTelegramAPIAddress  = "https://api.telegram.org"
	defaultNotifyQueueSize     = 64
	defaultNotifyMaxAttempts   = 3
	defaultNotifyRetryDelay    = 2 * time.Second
	defaultFeedRefreshInterval = 5 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
)

// Load parses configuration from flags and environment variables.
func Load() (*Config, error) {
	return load(os.Args[1:], os.LookupEnv)
}

type envLookup func(string) (string, bool)

func load(args []string, lookup envLookup) (*Config, error) {
	cfg := &Config{
		RunAddress:          getString(lookup, "RUN_ADDRESS", defaultRunAddress),
		DatabaseURI:         getString(lookup, "DATABASE_URI", ""),
		IdentityAddress:     getString(lookup, "IDENTITY_PROVIDER_ADDRESS", ""),
		OwnerEmail:          getString(lookup, "OWNER_EMAIL", ""),
		PaymentCard:         getString(lookup, "PAYMENT_CARD", ""),
		SessionSecret:       getString(lookup, "SESSION_SECRET", defaultSessionSecret),
		SessionTTL:          getDuration(lookup, "SESSION_TTL", defaultSessionTTL),
		TelegramAPIAddress:  getString(lookup, "TELEGRAM_API_ADDRESS", defaultTelegramAPIAddress),
		TelegramBotToken:    getString(lookup, "TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:      getString(lookup, "TELEGRAM_CHAT_ID", ""),
		NotifyQueueSize:     getInt(lookup, "NOTIFY_QUEUE_SIZE", defaultNotifyQueueSize),
		NotifyMaxAttempts:   getInt(lookup, "NOTIFY_MAX_ATTEMPTS", defaultNotifyMaxAttempts),
		NotifyRetryDelay:    getDuration(lookup, "NOTIFY_RETRY_DELAY", defaultNotifyRetryDelay),
		FeedRefreshInterval: getDuration(lookup, "FEED_REFRESH_INTERVAL", defaultFeedRefreshInterval),
		ShutdownTimeout:     getDuration(lookup, "SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
	}

	fs := flag.NewFlagSet("storefront", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	var (
		sessionTTLStr      = cfg.SessionTTL.String()
		refreshIntervalStr = cfg.FeedRefreshInterval.String()
		shutdownTimeoutStr = cfg.ShutdownTimeout.String()
	)

	fs.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "HTTP server listen address")
	fs.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "PostgreSQL DSN")
	fs.StringVar(&cfg.IdentityAddress, "i", cfg.IdentityAddress, "Identity provider base URL")
	fs.StringVar(&cfg.OwnerEmail, "owner-email", cfg.OwnerEmail, "Email of the privileged owner viewer")
	fs.StringVar(&cfg.PaymentCard, "payment-card", cfg.PaymentCard, "Card number shown on the payment step")
	fs.StringVar(&cfg.SessionSecret, "session-secret", cfg.SessionSecret, "Secret for signing session tokens")
	fs.StringVar(&sessionTTLStr, "session-ttl", sessionTTLStr, "Session token lifetime")
	fs.StringVar(&cfg.TelegramChatID, "notify-chat", cfg.TelegramChatID, "Chat receiving order notifications")
	fs.IntVar(&cfg.NotifyQueueSize, "notify-queue", cfg.NotifyQueueSize, "Notification queue capacity")
	fs.IntVar(&cfg.NotifyMaxAttempts, "notify-attempts", cfg.NotifyMaxAttempts, "Delivery attempts per notification")
	fs.StringVar(&refreshIntervalStr, "feed-refresh", refreshIntervalStr, "Interval between feed snapshot reloads")
	fs.StringVar(&shutdownTimeoutStr, "shutdown-timeout", shutdownTimeoutStr, "Graceful shutdown timeout")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parse flags: %w", err)
	}

	var err error

	if cfg.SessionTTL, err = time.ParseDuration(sessionTTLStr); err != nil {
		return nil, fmt.Errorf("invalid session ttl: %w", err)
	}

	if cfg.FeedRefreshInterval, err = time.ParseDuration(refreshIntervalStr); err != nil {
		return nil, fmt.Errorf("invalid feed refresh interval: %w", err)
	}

	if cfg.ShutdownTimeout, err = time.ParseDuration(shutdownTimeoutStr); err != nil {
		return nil, fmt.Errorf("invalid shutdown timeout: %w", err)
	}

	if secretFile, ok := lookup("SESSION_SECRET_FILE"); ok && secretFile != "" {
		content, err := os.ReadFile(secretFile)
		if err != nil {
			return nil, fmt.Errorf("read session secret file: %w", err)
		}
		cfg.SessionSecret = string(content)
	}

	if tokenFile, ok := lookup("TELEGRAM_BOT_TOKEN_FILE"); ok && tokenFile != "" {
		content, err := os.ReadFile(tokenFile)
		if err != nil {
			return nil, fmt.Errorf("read bot token file: %w", err)
		}
		cfg.TelegramBotToken = string(content)
	}

	if cfg.NotifyQueueSize <= 0 {
		cfg.NotifyQueueSize = defaultNotifyQueueSize
	}

	if cfg.NotifyMaxAttempts <= 0 {
		cfg.NotifyMaxAttempts = defaultNotifyMaxAttempts
	}

	if cfg.NotifyRetryDelay <= 0 {
		cfg.NotifyRetryDelay = defaultNotifyRetryDelay
	}

	if cfg.SessionTTL <= 0 {
		cfg.SessionTTL = defaultSessionTTL
	}

	if cfg.FeedRefreshInterval <= 0 {
		cfg.FeedRefreshInterval = defaultFeedRefreshInterval
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}

	if cfg.DatabaseURI == "" {
		return nil, fmt.Errorf("database URI must be provided")
	}

	if cfg.IdentityAddress == "" {
		return nil, fmt.Errorf("identity provider address must be provided")
	}

	if cfg.OwnerEmail == "" {
		return nil, fmt.Errorf("owner email must be provided")
	}

	return cfg, nil
}

func getString(lookup envLookup, key, def string) string {
	if v, ok := lookup(key); ok && v != "" {
		return v
	}
	return def
}

func getInt(lookup envLookup, key string, def int) int {
	if v, ok := lookup(key); ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getDuration(lookup envLookup, key string, def time.Duration) time.Duration {
	if v, ok := lookup(key); ok && v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
