package config

import (
	"testing"
	"time"
)

func validConfig() Config {
	return Config{
		Addr:                  ":8080",
		MaxBodyBytes:          1048576,
		DeadlineCheckInterval: 24 * time.Hour,
		OverdueSweepInterval:  time.Hour,
	}
}

func TestValidateDefaults(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("expected defaults to validate, got %v", err)
	}
}

func TestValidateZeroIntervalsDisableLoops(t *testing.T) {
	cfg := validConfig()
	cfg.DeadlineCheckInterval = 0
	cfg.OverdueSweepInterval = 0
	if err := cfg.Validate(); err != nil {
		t.Fatalf("zero intervals mean disabled, got %v", err)
	}
}

func TestValidateNegativeIntervals(t *testing.T) {
	cfg := validConfig()
	cfg.DeadlineCheckInterval = -time.Minute
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative deadline check interval")
	}

	cfg = validConfig()
	cfg.OverdueSweepInterval = -time.Minute
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for negative overdue sweep interval")
	}
}

func TestValidateBodyLimitFloor(t *testing.T) {
	cfg := validConfig()
	cfg.MaxBodyBytes = 512
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for body limit below 1024")
	}
}
