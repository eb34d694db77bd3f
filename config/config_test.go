package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestDefaults(t *testing.T) {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.AppPort != "8080" {
		t.Errorf("AppPort = %q", cfg.AppPort)
	}
	if cfg.DatabaseName != "huddle" {
		t.Errorf("DatabaseName = %q", cfg.DatabaseName)
	}
	if !cfg.QueryCacheEnabled || cfg.QueryCacheTTLMinutes != 15 {
		t.Errorf("query cache = %v/%d", cfg.QueryCacheEnabled, cfg.QueryCacheTTLMinutes)
	}
	if cfg.RetentionDays != 30 || cfg.RetentionCron != "@daily" {
		t.Errorf("retention = %d/%q", cfg.RetentionDays, cfg.RetentionCron)
	}
}

func TestEnvironmentOverridesDefaults(t *testing.T) {
	t.Setenv("RETENTION_DAYS", "7")
	t.Setenv("ENV", "production")

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if cfg.RetentionDays != 7 {
		t.Errorf("RetentionDays = %d, want 7", cfg.RetentionDays)
	}

	AppConfig = cfg
	defer func() { AppConfig = Config{} }()
	if !IsProduction() {
		t.Error("IsProduction should follow ENV")
	}
}
