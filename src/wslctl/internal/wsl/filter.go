package wsl

import (
	"path"
	"strings"

	"github.com/wslkit/wslctl/src/common/errors"
)

// ListOptions holds the optional predicates applied to a snapshot.
// Zero-valued fields are skipped entirely, so an empty ListOptions is
// the identity filter.
type ListOptions struct {
	// Names are case-insensitive glob patterns; a record matches when
	// any pattern matches.
	Names []string

	// Default keeps only the default distribution.
	Default bool

	// State keeps only records in the given state.
	State State

	// Version keeps only records with the given architecture version.
	Version int
}

// Filter applies the options to a snapshot. Predicates compose
// conjunctively and the snapshot's relative ordering is preserved.
func Filter(records []Distribution, opts *ListOptions) ([]Distribution, error) {
	if opts == nil {
		return records, nil
	}

	out := make([]Distribution, 0, len(records))
	for _, rec := range records {
		if opts.Default && !rec.Default {
			continue
		}
		if opts.State != "" && rec.State != opts.State {
			continue
		}
		if opts.Version != 0 && rec.Version != opts.Version {
			continue
		}
		if len(opts.Names) > 0 {
			ok, err := matchAny(opts.Names, rec.Name)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		out = append(out, rec)
	}
	return out, nil
}

// matchAny reports whether any pattern glob-matches the name,
// case-insensitively.
func matchAny(patterns []string, name string) (bool, error) {
	lower := strings.ToLower(name)
	for _, pattern := range patterns {
		ok, err := path.Match(strings.ToLower(pattern), lower)
		if err != nil {
			return false, errors.ErrInvalidPattern.WithMessagef("invalid name pattern %q", pattern)
		}
		if ok {
			return true, nil
		}
	}
	return false, nil
}
