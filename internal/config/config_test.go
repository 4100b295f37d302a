package config

import "testing"

func TestFromEnv_Defaults(t *testing.T) {
	cfg := FromEnv()
	if cfg.HTTPAddr != ":8080" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.BankSize != 100 {
		t.Errorf("BankSize = %d", cfg.BankSize)
	}
	if cfg.DefaultPlayer != "default" {
		t.Errorf("DefaultPlayer = %q", cfg.DefaultPlayer)
	}
	if cfg.GenSchema {
		t.Error("GenSchema should default to false")
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("QUIZD_ADDR", ":9999")
	t.Setenv("QUIZD_BANK_SIZE", "25")
	t.Setenv("QUIZD_DEFAULT_PLAYER", "solo")
	t.Setenv("QUIZD_CORS_ORIGINS", "https://a.example, https://b.example")
	t.Setenv("QUIZD_GEN_SCHEMA", "1")

	cfg := FromEnv()
	if cfg.HTTPAddr != ":9999" {
		t.Errorf("HTTPAddr = %q", cfg.HTTPAddr)
	}
	if cfg.BankSize != 25 {
		t.Errorf("BankSize = %d", cfg.BankSize)
	}
	if cfg.DefaultPlayer != "solo" {
		t.Errorf("DefaultPlayer = %q", cfg.DefaultPlayer)
	}
	if len(cfg.CORSOrigins) != 2 || cfg.CORSOrigins[1] != "https://b.example" {
		t.Errorf("CORSOrigins = %v", cfg.CORSOrigins)
	}
	if !cfg.GenSchema {
		t.Error("GenSchema should be true")
	}
}

func TestFromEnv_BadBankSizeFallsBack(t *testing.T) {
	t.Setenv("QUIZD_BANK_SIZE", "not-a-number")
	if got := FromEnv().BankSize; got != 100 {
		t.Errorf("BankSize = %d, want default 100", got)
	}
	t.Setenv("QUIZD_BANK_SIZE", "-5")
	if got := FromEnv().BankSize; got != 100 {
		t.Errorf("BankSize = %d, want default 100", got)
	}
}
