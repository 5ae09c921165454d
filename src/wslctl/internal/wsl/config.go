package wsl

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Config carries the resolved tool location and output encoding for one
// Client. It is built once and passed explicitly so tests can
// substitute a fake invoker instead of relying on ambient process
// state.
type Config struct {
	// Tool is the path of the wsl.exe binary to invoke.
	Tool string

	// UTF16 indicates the tool writes UTF-16LE to stdout. This is the
	// wsl.exe default; WSL_UTF8=1 switches it to UTF-8.
	UTF16 bool

	// Env holds extra environment entries appended to every
	// invocation. Scoping the encoding pin here keeps the parent
	// environment untouched, so there is nothing to restore on
	// failure paths.
	Env []string
}

// DetectConfig resolves the tool path and encoding from the current
// process environment.
//
// Three placements are handled: running inside a distribution (wsl.exe
// is exposed on PATH via the interop mount), a 32-bit process on a
// 64-bit Windows (system32 is redirected, the real binary lives in
// Sysnative), and the plain 64-bit case.
func DetectConfig() Config {
	cfg := Config{UTF16: true}

	if insideWSL() {
		// Interop runs the tool with this process's environment, so
		// pin the encoding per call instead of trusting the default.
		if p, err := exec.LookPath("wsl.exe"); err == nil {
			cfg.Tool = p
		} else {
			cfg.Tool = "wsl.exe"
		}
		cfg.UTF16 = false
		cfg.Env = []string{"WSL_UTF8=1"}
		return cfg
	}

	if os.Getenv("WSL_UTF8") == "1" {
		cfg.UTF16 = false
	}

	systemRoot := os.Getenv("SystemRoot")
	if systemRoot == "" {
		systemRoot = `C:\Windows`
	}
	system32 := filepath.Join(systemRoot, "system32")
	if runtime.GOARCH == "386" && os.Getenv("PROCESSOR_ARCHITEW6432") != "" {
		// WOW64 redirects system32; Sysnative reaches the native one.
		system32 = filepath.Join(systemRoot, "Sysnative")
	}
	cfg.Tool = filepath.Join(system32, "wsl.exe")
	return cfg
}

// insideWSL reports whether this process runs inside a WSL
// distribution.
func insideWSL() bool {
	return os.Getenv("WSL_DISTRO_NAME") != ""
}
