package wsl

import (
	"context"

	"github.com/wslkit/wslctl/src/common/errors"
	"github.com/wslkit/wslctl/src/common/paths"
)

// Stop terminates the given distributions. A distribution that is not
// running is reported as a warning and skipped; the rest of the batch
// continues. With passthru the affected records are re-queried and
// returned with their updated state.
func (c *Client) Stop(ctx context.Context, targets []Distribution, passthru bool) ([]Distribution, error) {
	names := make([]string, 0, len(targets))
	for _, rec := range targets {
		if rec.State != StateRunning {
			c.log.Warn("distribution is not running, skipping", "distribution", rec.Name, "state", rec.State)
			continue
		}
		if _, err := c.inv.Invoke(ctx, terminateArgs(rec.Name), false); err != nil {
			return nil, err
		}
		names = append(names, rec.Name)
	}
	return c.passthru(ctx, names, passthru)
}

// SetVersion converts the given distributions to the requested
// architecture version. Records already at that version are skipped
// with a warning.
func (c *Client) SetVersion(ctx context.Context, targets []Distribution, version int, passthru bool) ([]Distribution, error) {
	if version != 1 && version != 2 {
		return nil, errors.ErrInvalidFieldValue.WithMessagef("unsupported distribution version %d", version)
	}

	names := make([]string, 0, len(targets))
	for _, rec := range targets {
		if rec.Version == version {
			c.log.Warn("distribution already at requested version, skipping", "distribution", rec.Name, "version", version)
			continue
		}
		if _, err := c.inv.Invoke(ctx, setVersionArgs(rec.Name, version), false); err != nil {
			return nil, err
		}
		names = append(names, rec.Name)
	}
	return c.passthru(ctx, names, passthru)
}

// SetDefault marks the given distributions as default, in order. A
// record that already is the default is skipped with a warning.
func (c *Client) SetDefault(ctx context.Context, targets []Distribution, passthru bool) ([]Distribution, error) {
	names := make([]string, 0, len(targets))
	for _, rec := range targets {
		if rec.Default {
			c.log.Warn("distribution is already the default, skipping", "distribution", rec.Name)
			continue
		}
		if _, err := c.inv.Invoke(ctx, setDefaultArgs(rec.Name), false); err != nil {
			return nil, err
		}
		names = append(names, rec.Name)
	}
	return c.passthru(ctx, names, passthru)
}

// Unregister removes the given distributions and deletes their data.
func (c *Client) Unregister(ctx context.Context, targets []Distribution) error {
	for _, rec := range targets {
		if _, err := c.inv.Invoke(ctx, unregisterArgs(rec.Name), false); err != nil {
			return err
		}
		c.log.Info("distribution unregistered", "distribution", rec.Name)
	}
	return nil
}

// Export writes the distribution to destination and returns the
// resolved file path. The destination must not already exist; that is
// checked before invoking the tool so a half-written target is never
// overwritten.
func (c *Client) Export(ctx context.Context, target Distribution, destination string, format Format) (string, error) {
	resolved, vhd := ResolveExport(target.Name, destination, format)
	if paths.Exists(resolved) {
		return "", errors.ErrDestinationExists.WithMessagef("export destination %q already exists", resolved)
	}
	if _, err := c.inv.Invoke(ctx, exportArgs(target.Name, resolved, vhd), false); err != nil {
		return "", err
	}
	return resolved, nil
}

// ImportRequest describes one distribution registration.
type ImportRequest struct {
	// Name is the distribution name to register.
	Name string

	// Source is the archive or disk file to import.
	Source string

	// Destination is the directory that will hold the distribution.
	// Ignored for in-place imports.
	Destination string

	// Version pins the architecture version; zero keeps the tool
	// default.
	Version int

	// Format selects tar or virtual disk; FormatAuto inspects the
	// source extension.
	Format Format

	// InPlace registers the source file at its current location
	// without copying.
	InPlace bool
}

// Import registers a distribution and returns its fresh record.
func (c *Client) Import(ctx context.Context, req ImportRequest) (*Distribution, error) {
	var args []string
	if req.InPlace {
		args = importInPlaceArgs(req.Name, req.Source)
	} else {
		vhd := resolveImportFormat(req.Source, req.Format)
		args = importArgs(req.Name, req.Destination, req.Source, req.Version, vhd)
	}
	if _, err := c.inv.Invoke(ctx, args, false); err != nil {
		return nil, err
	}

	records, err := c.List(ctx, &ListOptions{Names: []string{req.Name}})
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.ErrDistributionNotFound.WithMessagef(
			"distribution %q not visible after import", req.Name)
	}
	return &records[0], nil
}

// Run executes a command vector inside the distribution, with the
// session attached to the caller's streams. A non-zero exit of the
// command surfaces as an error.
func (c *Client) Run(ctx context.Context, target Distribution, opts RunOptions, command []string) error {
	return c.inv.Attach(ctx, runArgs(target.Name, opts, command))
}

// RunShell executes a free-form command string through the
// distribution's shell.
func (c *Client) RunShell(ctx context.Context, target Distribution, opts RunOptions, command string) error {
	return c.inv.Attach(ctx, runShellArgs(target.Name, opts, command))
}

// Enter starts an interactive session in the distribution.
func (c *Client) Enter(ctx context.Context, target Distribution, opts RunOptions) error {
	return c.inv.Attach(ctx, enterArgs(target.Name, opts))
}

// Shutdown stops the shared virtual machine and all distributions.
func (c *Client) Shutdown(ctx context.Context) error {
	_, err := c.inv.Invoke(ctx, shutdownArgs(), false)
	return err
}

// passthru re-queries the given names when requested, so callers can
// report post-operation state.
func (c *Client) passthru(ctx context.Context, names []string, enabled bool) ([]Distribution, error) {
	if !enabled || len(names) == 0 {
		return nil, nil
	}
	return c.List(ctx, &ListOptions{Names: names})
}
