package wsl

import (
	"testing"
)

func sampleSnapshot() []Distribution {
	return []Distribution{
		{Name: "Ubuntu-22.04", State: StateRunning, Version: 2, Default: true},
		{Name: "Debian", State: StateStopped, Version: 1},
		{Name: "Alpine", State: StateStopped, Version: 2},
		{Name: "ubuntu-20.04", State: StateRunning, Version: 2},
	}
}

func TestFilter_NoPredicatesIsIdentity(t *testing.T) {
	records := sampleSnapshot()

	for _, opts := range []*ListOptions{nil, {}} {
		out, err := Filter(records, opts)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != len(records) {
			t.Fatalf("expected %d records, got %d", len(records), len(out))
		}
		for i := range records {
			if out[i].Name != records[i].Name {
				t.Errorf("order changed at %d: %q vs %q", i, out[i].Name, records[i].Name)
			}
		}
	}
}

func TestFilter_NameGlobNotSubstring(t *testing.T) {
	out, err := Filter(sampleSnapshot(), &ListOptions{Names: []string{"ubuntu"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "ubuntu" is a glob, not a substring: it does not match
	// "Ubuntu-22.04".
	if len(out) != 0 {
		t.Errorf("expected no matches for bare \"ubuntu\", got %d", len(out))
	}
}

func TestFilter_NameGlobCaseInsensitive(t *testing.T) {
	for _, pattern := range []string{"Ubuntu*", "UBUNTU*", "ubuntu*"} {
		out, err := Filter(sampleSnapshot(), &ListOptions{Names: []string{pattern}})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 2 {
			t.Errorf("pattern %q: expected 2 matches, got %d", pattern, len(out))
		}
	}
}

func TestFilter_MultiplePatternsAreOr(t *testing.T) {
	out, err := Filter(sampleSnapshot(), &ListOptions{Names: []string{"Debian", "Alpine"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(out))
	}
	if out[0].Name != "Debian" || out[1].Name != "Alpine" {
		t.Errorf("expected snapshot order preserved, got %+v", out)
	}
}

func TestFilter_PredicatesCompose(t *testing.T) {
	out, err := Filter(sampleSnapshot(), &ListOptions{
		Names:   []string{"*"},
		State:   StateRunning,
		Version: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 running v2 records, got %d", len(out))
	}
}

func TestFilter_DefaultOnly(t *testing.T) {
	out, err := Filter(sampleSnapshot(), &ListOptions{Default: true})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Ubuntu-22.04" {
		t.Errorf("expected the single default record, got %+v", out)
	}
}

func TestFilter_StatePredicate(t *testing.T) {
	out, err := Filter(sampleSnapshot(), &ListOptions{State: StateStopped})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("expected 2 stopped records, got %d", len(out))
	}
}

func TestFilter_VersionPredicate(t *testing.T) {
	out, err := Filter(sampleSnapshot(), &ListOptions{Version: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Debian" {
		t.Errorf("expected only Debian, got %+v", out)
	}
}

func TestFilter_BadPattern(t *testing.T) {
	_, err := Filter(sampleSnapshot(), &ListOptions{Names: []string{"[unclosed"}})
	if err == nil {
		t.Error("expected error for malformed pattern")
	}
}
