package config

import "testing"

func TestFromEnv_ParsesAndDefaults(t *testing.T) {
	t.Setenv("LOG_DIR", "./_testlogs")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("STATUSBIN_ADDR", ":9090")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.LogDir != "./_testlogs" || cfg.LogLevel != "debug" {
		t.Fatalf("log settings wrong: %+v", cfg)
	}
	if cfg.StatusbinAddr != ":9090" {
		t.Fatalf("addr wrong: %+v", cfg)
	}
}

func TestFromEnv_Defaults(t *testing.T) {
	t.Setenv("LOG_DIR", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("STATUSBIN_ADDR", "")

	cfg, err := FromEnv()
	if err != nil {
		t.Fatalf("FromEnv: %v", err)
	}
	if cfg.LogDir != "logs" {
		t.Fatalf("want default log dir, got %q", cfg.LogDir)
	}
}

func TestFromEnv_RejectsUnknownLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "chatty")
	if _, err := FromEnv(); err == nil {
		t.Fatalf("expected error for unknown level")
	}
}
