package coreset

import "testing"

func TestConfigValidateRejectsBadK(t *testing.T) {
	cfg := defaultConfig(0)
	cfg.T = 10
	if err := cfg.Validate(5); err == nil {
		t.Error("expected error for k=0")
	}

	cfg.K = 10
	if err := cfg.Validate(5); err == nil {
		t.Error("expected error for k > n")
	}
}

func TestConfigValidateRejectsBadBeta(t *testing.T) {
	cfg := defaultConfig(2)
	cfg.KPrime = 4
	cfg.T = 10
	cfg.Beta = 1
	if err := cfg.Validate(5); err == nil {
		t.Error("expected error for beta <= 1")
	}
}

func TestConfigValidateAcceptsUnseededSentinel(t *testing.T) {
	cfg := defaultConfig(2)
	cfg.KPrime = 4
	cfg.T = 10
	if err := cfg.Validate(5); err != nil {
		t.Errorf("expected the unseeded sentinel to validate, got %v", err)
	}
}

func TestConfigValidateRejectsNegativeSeed(t *testing.T) {
	cfg := defaultConfig(2)
	cfg.KPrime = 4
	cfg.T = 10
	cfg.Seed = -2
	if err := cfg.Validate(5); err == nil {
		t.Error("expected error for a negative, non-sentinel seed")
	}
}
