package config

import "testing"

func TestDefaultConfigResolvesDurations(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.KeyRepeatDelay.Milliseconds() != 500 {
		t.Errorf("expected 500ms initial delay, got %v", cfg.KeyRepeatDelay)
	}
	if cfg.KeyRepeatInterval.Milliseconds() != 50 {
		t.Errorf("expected 50ms interval, got %v", cfg.KeyRepeatInterval)
	}
	if cfg.ScrollbackLines != 10000 {
		t.Errorf("expected 10000 scrollback lines, got %d", cfg.ScrollbackLines)
	}
}

func TestLoadFallsBackWhenFileMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	cfg := Load()
	want := DefaultConfig()
	if cfg.Shell != want.Shell || cfg.ScrollbackLines != want.ScrollbackLines {
		t.Errorf("expected default config, got %+v", cfg)
	}
}
