package wsl

import (
	"strings"
	"testing"
)

func TestDetectConfig_InsideDistribution(t *testing.T) {
	t.Setenv("WSL_DISTRO_NAME", "Ubuntu")
	t.Setenv("WSL_UTF8", "")

	cfg := DetectConfig()
	if cfg.UTF16 {
		t.Error("expected UTF-8 output inside a distribution")
	}
	if len(cfg.Env) != 1 || cfg.Env[0] != "WSL_UTF8=1" {
		t.Errorf("expected the encoding pinned per call, got %v", cfg.Env)
	}
	if !strings.HasSuffix(cfg.Tool, "wsl.exe") {
		t.Errorf("expected the interop binary, got %q", cfg.Tool)
	}
}

func TestDetectConfig_OnHost(t *testing.T) {
	t.Setenv("WSL_DISTRO_NAME", "")
	t.Setenv("WSL_UTF8", "")
	t.Setenv("SystemRoot", `C:\Windows`)

	cfg := DetectConfig()
	if !cfg.UTF16 {
		t.Error("expected UTF-16 output by default on the host")
	}
	if len(cfg.Env) != 0 {
		t.Errorf("expected no extra environment on the host, got %v", cfg.Env)
	}
	if !strings.Contains(cfg.Tool, "system32") {
		t.Errorf("expected the system32 binary, got %q", cfg.Tool)
	}
}

func TestDetectConfig_HostHonorsUTF8Override(t *testing.T) {
	t.Setenv("WSL_DISTRO_NAME", "")
	t.Setenv("WSL_UTF8", "1")

	if cfg := DetectConfig(); cfg.UTF16 {
		t.Error("expected WSL_UTF8=1 to switch the host decoding to UTF-8")
	}
}
