package config

import (
	"testing"
	"time"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.KubectlBin != "" {
		t.Fatalf("kubectl default should be empty (PATH lookup), got %q", cfg.App.KubectlBin)
	}
	if cfg.App.Refresh != defaultRefresh {
		t.Fatalf("refresh default: got %s", cfg.App.Refresh)
	}
	if !cfg.App.ShowFooter {
		t.Fatalf("footer should default on")
	}
	if cfg.Logging.Trace {
		t.Fatalf("trace should default off")
	}
}

func TestLoadArgsFlagsOverrideEnv(t *testing.T) {
	env := []string{"KLS_KUBECTL=/env/kubectl", "KLS_REFRESH=30s", "KLS_TRACE=1"}
	cfg, err := LoadArgs([]string{"-kubectl", "/flag/kubectl", "-refresh", "2s"}, env)
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.KubectlBin != "/flag/kubectl" {
		t.Fatalf("flag should beat env, got %q", cfg.App.KubectlBin)
	}
	if cfg.App.Refresh != 2*time.Second {
		t.Fatalf("refresh flag: got %s", cfg.App.Refresh)
	}
	if !cfg.Logging.Trace {
		t.Fatalf("trace env should apply when no flag is given")
	}
}

func TestLoadArgsEnvFallback(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"KLS_WIDTH=120", "KLS_FOOTER=false", "KLS_LOG_FILE=/tmp/kls.log"})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Width != 120 {
		t.Fatalf("width env: got %d", cfg.App.Width)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("footer env should disable the footer")
	}
	if cfg.Logging.FilePath != "/tmp/kls.log" {
		t.Fatalf("log file env: got %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsRejectsBadValues(t *testing.T) {
	if _, err := LoadArgs([]string{"-width", "-1"}, nil); err == nil {
		t.Fatalf("negative width should fail")
	}
	if _, err := LoadArgs([]string{"-refresh", "0s"}, nil); err == nil {
		t.Fatalf("zero refresh should fail")
	}
}

func TestLoadArgsIgnoresMalformedEnv(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"KLS_REFRESH=soon", "KLS_WIDTH=wide", ""})
	if err != nil {
		t.Fatalf("LoadArgs: %v", err)
	}
	if cfg.App.Refresh != defaultRefresh || cfg.App.Width != 0 {
		t.Fatalf("malformed env should fall back to defaults")
	}
}
