package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestLoadTokens(t *testing.T) {
	t.Run("env pairs", func(t *testing.T) {
		viper.Reset()
		viper.Set("auth.tokens", "tok-a:alice, tok-b:bob,")

		got, err := loadTokens()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 2 || got[0] != (TokenConfig{Token: "tok-a", UserID: "alice"}) || got[1].UserID != "bob" {
			t.Errorf("unexpected tokens: %+v", got)
		}
	})

	t.Run("yaml list", func(t *testing.T) {
		viper.Reset()
		t.Setenv("ALICE_TOKEN", "secret")
		viper.Set("auth.tokens", []interface{}{
			map[string]interface{}{"token": "${ALICE_TOKEN}", "user_id": "alice"},
		})

		got, err := loadTokens()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 1 || got[0].Token != "secret" {
			t.Errorf("unexpected tokens: %+v", got)
		}
	})

	t.Run("malformed pair", func(t *testing.T) {
		viper.Reset()
		viper.Set("auth.tokens", "no-user")

		if _, err := loadTokens(); err == nil {
			t.Error("expected an error for a pair without user id")
		}
	})

	t.Run("unset", func(t *testing.T) {
		viper.Reset()

		got, err := loadTokens()
		if err != nil || got != nil {
			t.Errorf("expected no tokens, got %+v, %v", got, err)
		}
	})
}

func TestLoadDefaults(t *testing.T) {
	viper.Reset()
	t.Chdir(t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPServer.Port != 8080 || cfg.Database.Path != "checklist.db" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Realtime.ReloadDebounce.Milliseconds() != 100 || cfg.Realtime.FeedBuffer != 256 {
		t.Errorf("unexpected realtime defaults: %+v", cfg.Realtime)
	}
}
