// Package wsl wraps the wsl.exe command-line tool. It exposes typed
// distribution records built from the tool's text output, plus one
// method per management operation. Every query re-invokes the tool;
// nothing is cached.
package wsl

import (
	"context"
	"strings"

	"github.com/wslkit/wslctl/src/common/errors"
	"github.com/wslkit/wslctl/src/common/logs"
)

// Client is the operation surface over wsl.exe and the host
// configuration store.
type Client struct {
	inv   Invoker
	store ConfigStore
	log   *logs.Logger
}

// New creates a Client with the tool location and encoding detected
// from the process environment.
func New(logger *logs.Logger) *Client {
	cfg := DetectConfig()
	return &Client{
		inv:   NewInvoker(cfg),
		store: openStore(),
		log:   logger,
	}
}

// NewWithInvoker creates a Client on top of a caller-supplied invoker
// and store. Used by tests to substitute fakes.
func NewWithInvoker(inv Invoker, store ConfigStore, logger *logs.Logger) *Client {
	if logger == nil {
		logger = logs.NewDefault()
	}
	return &Client{inv: inv, store: store, log: logger}
}

// Snapshot queries the tool for all installed distributions and
// enriches the records from the configuration store when one is
// available. The listing runs in ignore-errors mode: when no
// distribution is installed the tool exits non-zero, which simply
// means an empty snapshot.
func (c *Client) Snapshot(ctx context.Context) ([]Distribution, error) {
	lines, err := c.inv.Invoke(ctx, listArgs(), true)
	if err != nil {
		return nil, err
	}
	records, err := decodeListing(lines)
	if err != nil {
		return nil, err
	}

	if c.store != nil {
		for i := range records {
			c.enrich(&records[i])
		}
	}
	return records, nil
}

// enrich copies store metadata onto a record, best-effort.
func (c *Client) enrich(rec *Distribution) {
	entry, ok, err := c.store.Lookup(rec.Name)
	if err != nil {
		c.log.Debug("configuration store lookup failed", "distribution", rec.Name, "err", err)
		return
	}
	if !ok {
		return
	}
	rec.GUID = entry.GUID
	rec.BasePath = entry.BasePath
	if rec.Version == 2 && entry.BasePath != "" {
		vhd := entry.VhdFileName
		if vhd == "" {
			vhd = defaultVhdFileName
		}
		rec.VhdPath = joinWindowsPath(entry.BasePath, vhd)
	}
}

// List returns the filtered snapshot.
func (c *Client) List(ctx context.Context, opts *ListOptions) ([]Distribution, error) {
	records, err := c.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(records, opts)
}

// Resolve returns the distributions matching the given name patterns,
// or the default distribution when no pattern is given. An empty
// result is a hard failure: it means the whole request is ill-formed.
func (c *Client) Resolve(ctx context.Context, patterns []string) ([]Distribution, error) {
	opts := &ListOptions{Names: patterns}
	if len(patterns) == 0 {
		opts = &ListOptions{Default: true}
	}
	records, err := c.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		if len(patterns) == 0 {
			return nil, errors.ErrDistributionNotFound.WithMessage("no default distribution is configured")
		}
		return nil, errors.ErrDistributionNotFound.WithMessagef(
			"no distribution matches %q", strings.Join(patterns, ", "))
	}
	return records, nil
}

// ListOnline returns the catalog of distributions available for
// installation.
func (c *Client) ListOnline(ctx context.Context) ([]OnlineDistribution, error) {
	lines, err := c.inv.Invoke(ctx, listOnlineArgs(), false)
	if err != nil {
		return nil, err
	}
	return decodeOnlineListing(lines), nil
}

// ToolVersion reports the component versions of the tool itself, plus
// the default architecture version from the configuration store when
// available.
func (c *Client) ToolVersion(ctx context.Context) (VersionInfo, error) {
	lines, err := c.inv.Invoke(ctx, versionArgs(), false)
	if err != nil {
		return VersionInfo{}, err
	}
	info := decodeVersionInfo(lines)
	if c.store != nil {
		if v, ok := c.store.DefaultVersion(); ok {
			info.DefaultVersion = v
		}
	}
	return info, nil
}

// joinWindowsPath joins with a backslash regardless of host platform;
// store paths are always Windows paths.
func joinWindowsPath(dir, file string) string {
	return strings.TrimRight(dir, `\`) + `\` + file
}
