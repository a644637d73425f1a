package common

import "testing"

func TestLoadConfigDefaults(t *testing.T) {
	cfg := LoadConfig()

	if cfg.Ledger.Driver != "sqlite" {
		t.Errorf("ledger driver = %q, want sqlite", cfg.Ledger.Driver)
	}
	if cfg.Mailchimp.Tag != "Referral Source" {
		t.Errorf("tag = %q", cfg.Mailchimp.Tag)
	}
	if cfg.Pipeline.Workers != 4 {
		t.Errorf("workers = %d", cfg.Pipeline.Workers)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("LEDGER_DRIVER", "redis")
	t.Setenv("LEDGER_DSN", "redis://localhost:6379/0")
	t.Setenv("PIPELINE_WORKERS", "8")

	cfg := LoadConfig()
	if cfg.Ledger.Driver != "redis" || cfg.Ledger.DSN != "redis://localhost:6379/0" {
		t.Errorf("ledger = %+v", cfg.Ledger)
	}
	if cfg.Pipeline.Workers != 8 {
		t.Errorf("workers = %d, want 8", cfg.Pipeline.Workers)
	}
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := LoadConfig()
	cfg.Ledger.Driver = "etcd"
	if err := cfg.Validate(); err == nil {
		t.Error("unknown ledger driver accepted")
	}
}

func TestValidateMailchimp(t *testing.T) {
	cfg := LoadConfig()
	if err := cfg.ValidateMailchimp(); err == nil {
		t.Error("empty mailchimp settings accepted")
	}

	cfg.Mailchimp.APIKey = "key"
	cfg.Mailchimp.ServerPrefix = "us21"
	cfg.Mailchimp.ListID = "list"
	if err := cfg.ValidateMailchimp(); err != nil {
		t.Errorf("complete mailchimp settings rejected: %v", err)
	}
}
