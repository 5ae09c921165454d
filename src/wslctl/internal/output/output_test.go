package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"testing"
)

// captureStdout captures stdout output during fn execution
func captureStdout(t *testing.T, fn func()) string {
	t.Helper()
	old := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	fn()

	w.Close()
	os.Stdout = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	return buf.String()
}

// =============================================================================
// PrintJSON Tests
// =============================================================================

func TestPrintJSON_Map(t *testing.T) {
	data := map[string]string{"key": "value"}
	out := captureStdout(t, func() {
		if err := PrintJSON(data); err != nil {
			t.Fatalf("PrintJSON error: %v", err)
		}
	})
	var result map[string]string
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	if result["key"] != "value" {
		t.Errorf("expected key=value, got %v", result)
	}
}

func TestPrintJSON_Struct(t *testing.T) {
	type record struct {
		Name  string `json:"name"`
		State string `json:"state"`
	}
	data := record{Name: "Ubuntu", State: "Running"}
	out := captureStdout(t, func() {
		_ = PrintJSON(data)
	})
	if !strings.Contains(out, `"name": "Ubuntu"`) {
		t.Errorf("expected name field in JSON, got %s", out)
	}
	if !strings.Contains(out, `"state": "Running"`) {
		t.Errorf("expected state field in JSON, got %s", out)
	}
}

func TestPrintJSON_Indented(t *testing.T) {
	data := map[string]string{"key": "value"}
	out := captureStdout(t, func() {
		_ = PrintJSON(data)
	})
	if !strings.Contains(out, "  ") {
		t.Error("expected indented JSON output")
	}
}

// =============================================================================
// PrintYAML Tests
// =============================================================================

func TestPrintYAML_Map(t *testing.T) {
	data := map[string]string{"key": "value"}
	out := captureStdout(t, func() {
		if err := PrintYAML(data); err != nil {
			t.Fatalf("PrintYAML error: %v", err)
		}
	})
	if !strings.Contains(out, "key: value") {
		t.Errorf("expected YAML key: value, got %q", out)
	}
}

func TestPrintYAML_RespectsJsonTags(t *testing.T) {
	type record struct {
		BasePath string `json:"base_path"`
	}
	data := record{BasePath: `C:\Users\me\Ubuntu`}
	out := captureStdout(t, func() {
		_ = PrintYAML(data)
	})
	if !strings.Contains(out, "base_path:") {
		t.Errorf("expected base_path (json tag), got %q", out)
	}
}

// =============================================================================
// PrintFormatted Tests
// =============================================================================

func TestPrintFormatted_Dispatch(t *testing.T) {
	data := map[string]string{"name": "Ubuntu"}

	out := captureStdout(t, func() {
		_ = PrintFormatted("json", data, func() error {
			t.Error("table renderer must not run for json")
			return nil
		})
	})
	if !strings.Contains(out, `"name"`) {
		t.Errorf("expected JSON output, got %q", out)
	}

	out = captureStdout(t, func() {
		_ = PrintFormatted("yaml", data, func() error {
			t.Error("table renderer must not run for yaml")
			return nil
		})
	})
	if !strings.Contains(out, "name: Ubuntu") {
		t.Errorf("expected YAML output, got %q", out)
	}

	rendered := false
	_ = PrintFormatted("table", data, func() error {
		rendered = true
		return nil
	})
	if !rendered {
		t.Error("expected the table renderer to run for the table format")
	}
}

// =============================================================================
// PrintTable Tests
// =============================================================================

func TestPrintTable_BasicOutput(t *testing.T) {
	out := captureStdout(t, func() {
		PrintTable(
			[]string{"NAME", "STATE"},
			[][]string{
				{"Ubuntu", "Running"},
				{"Debian", "Stopped"},
			},
		)
	})
	if !strings.Contains(out, "NAME") || !strings.Contains(out, "STATE") {
		t.Errorf("expected headers in output, got %q", out)
	}
	if !strings.Contains(out, "Ubuntu") || !strings.Contains(out, "Debian") {
		t.Errorf("expected row data in output, got %q", out)
	}
}

func TestPrintTable_EmptyRows(t *testing.T) {
	out := captureStdout(t, func() {
		PrintTable([]string{"NAME", "STATE"}, [][]string{})
	})
	// Should still print headers
	if !strings.Contains(out, "NAME") {
		t.Errorf("expected headers even with empty rows, got %q", out)
	}
}

func TestPrintTable_Alignment(t *testing.T) {
	out := captureStdout(t, func() {
		PrintTable(
			[]string{"NAME", "STATE"},
			[][]string{
				{"Alpine", "Stopped"},
				{"a-rather-long-distribution-name", "Running"},
			},
		)
	})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Errorf("expected 3 lines (header + 2 rows), got %d", len(lines))
	}
}

// =============================================================================
// PrintMessage / PrintError Tests
// =============================================================================

func TestPrintMessage(t *testing.T) {
	out := captureStdout(t, func() {
		PrintMessage("hello world")
	})
	if strings.TrimSpace(out) != "hello world" {
		t.Errorf("expected 'hello world', got %q", out)
	}
}

func TestPrintError(t *testing.T) {
	old := os.Stderr
	r, w, _ := os.Pipe()
	os.Stderr = w

	PrintError(fmt.Errorf("test error"))

	w.Close()
	os.Stderr = old

	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	if !strings.Contains(buf.String(), "test error") {
		t.Errorf("expected error message on stderr, got %q", buf.String())
	}
}
