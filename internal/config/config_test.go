package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func lookupFrom(env map[string]string) envLookup {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func requiredEnv() map[string]string {
	return map[string]string{
		"DATABASE_URI":              "postgres://localhost/storefront",
		"IDENTITY_PROVIDER_ADDRESS": "https://oauth.example.com",
		"OWNER_EMAIL":               "owner@example.com",
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := load(nil, lookupFrom(requiredEnv()))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.RunAddress != defaultRunAddress {
		t.Fatalf("unexpected run address: %s", cfg.RunAddress)
	}
	if cfg.SessionSecret != defaultSessionSecret {
		t.Fatalf("unexpected session secret: %s", cfg.SessionSecret)
	}
	if cfg.SessionTTL != defaultSessionTTL {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionTTL)
	}
	if cfg.TelegramAPIAddress != defaultTelegramAPIAddress {
		t.Fatalf("unexpected telegram api address: %s", cfg.TelegramAPIAddress)
	}
	if cfg.NotifyQueueSize != defaultNotifyQueueSize {
		t.Fatalf("unexpected notify queue size: %d", cfg.NotifyQueueSize)
	}
	if cfg.FeedRefreshInterval != defaultFeedRefreshInterval {
		t.Fatalf("unexpected feed refresh interval: %s", cfg.FeedRefreshInterval)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("unexpected shutdown timeout: %s", cfg.ShutdownTimeout)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	env := requiredEnv()
	env["RUN_ADDRESS"] = ":9090"
	env["SESSION_TTL"] = "2h"
	env["NOTIFY_MAX_ATTEMPTS"] = "5"
	env["FEED_REFRESH_INTERVAL"] = "500ms"

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.RunAddress != ":9090" {
		t.Fatalf("unexpected run address: %s", cfg.RunAddress)
	}
	if cfg.SessionTTL != 2*time.Hour {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionTTL)
	}
	if cfg.NotifyMaxAttempts != 5 {
		t.Fatalf("unexpected notify attempts: %d", cfg.NotifyMaxAttempts)
	}
	if cfg.FeedRefreshInterval != 500*time.Millisecond {
		t.Fatalf("unexpected refresh interval: %s", cfg.FeedRefreshInterval)
	}
}

func TestLoadFlagOverrides(t *testing.T) {
	args := []string{
		"-a", ":7070",
		"-owner-email", "boss@example.com",
		"-notify-queue", "128",
		"-session-ttl", "30m",
	}
	env := requiredEnv()
	delete(env, "OWNER_EMAIL")

	cfg, err := load(args, lookupFrom(env))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.RunAddress != ":7070" {
		t.Fatalf("unexpected run address: %s", cfg.RunAddress)
	}
	if cfg.OwnerEmail != "boss@example.com" {
		t.Fatalf("unexpected owner email: %s", cfg.OwnerEmail)
	}
	if cfg.NotifyQueueSize != 128 {
		t.Fatalf("unexpected queue size: %d", cfg.NotifyQueueSize)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Fatalf("unexpected session ttl: %s", cfg.SessionTTL)
	}
}

func TestLoadMissingRequired(t *testing.T) {
	cases := []string{"DATABASE_URI", "IDENTITY_PROVIDER_ADDRESS", "OWNER_EMAIL"}
	for _, missing := range cases {
		t.Run(missing, func(t *testing.T) {
			env := requiredEnv()
			delete(env, missing)
			if _, err := load(nil, lookupFrom(env)); err == nil {
				t.Fatalf("expected error when %s is missing", missing)
			}
		})
	}
}

func TestLoadSecretFiles(t *testing.T) {
	dir := t.TempDir()

	secretPath := filepath.Join(dir, "session-secret")
	if err := os.WriteFile(secretPath, []byte("file-secret"), 0o600); err != nil {
		t.Fatalf("write secret file: %v", err)
	}
	tokenPath := filepath.Join(dir, "bot-token")
	if err := os.WriteFile(tokenPath, []byte("file-token"), 0o600); err != nil {
		t.Fatalf("write token file: %v", err)
	}

	env := requiredEnv()
	env["SESSION_SECRET_FILE"] = secretPath
	env["TELEGRAM_BOT_TOKEN_FILE"] = tokenPath

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.SessionSecret != "file-secret" {
		t.Fatalf("unexpected session secret: %s", cfg.SessionSecret)
	}
	if cfg.TelegramBotToken != "file-token" {
		t.Fatalf("unexpected bot token: %s", cfg.TelegramBotToken)
	}
}

func TestLoadInvalidDurations(t *testing.T) {
	if _, err := load([]string{"-session-ttl", "nope"}, lookupFrom(requiredEnv())); err == nil {
		t.Fatal("expected error for invalid session ttl")
	}
	if _, err := load([]string{"-shutdown-timeout", "later"}, lookupFrom(requiredEnv())); err == nil {
		t.Fatal("expected error for invalid shutdown timeout")
	}
}

func TestLoadNonPositiveValuesFallBack(t *testing.T) {
	env := requiredEnv()
	env["NOTIFY_QUEUE_SIZE"] = "-1"
	env["NOTIFY_MAX_ATTEMPTS"] = "0"

	cfg, err := load(nil, lookupFrom(env))
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if cfg.NotifyQueueSize != defaultNotifyQueueSize {
		t.Fatalf("expected queue size fallback, got %d", cfg.NotifyQueueSize)
	}
	if cfg.NotifyMaxAttempts != defaultNotifyMaxAttempts {
		t.Fatalf("expected attempts fallback, got %d", cfg.NotifyMaxAttempts)
	}
}
