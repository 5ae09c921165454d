package wsl

import (
	"strconv"
	"strings"

	"github.com/wslkit/wslctl/src/common/errors"
)

// onlineHeaderToken starts the header line of `wsl --list --online`.
// Unlike the verbose listing header it is not localized, so it is safe
// to match by content.
const onlineHeaderToken = "NAME"

// decodeListing parses the output of `wsl --list --verbose` into
// records. The header line is dropped positionally because its content
// is localized. Data lines have three whitespace-separated fields, or
// four when the leading default marker is present.
func decodeListing(lines []string) ([]Distribution, error) {
	if len(lines) == 0 {
		return nil, nil
	}

	records := make([]Distribution, 0, len(lines)-1)
	for _, line := range lines[1:] {
		fields := strings.Fields(line)

		var rec Distribution
		switch len(fields) {
		case 4:
			rec.Default = true
			fields = fields[1:]
		case 3:
		default:
			return nil, errors.ErrToolOutput.WithMessagef("malformed listing line %q", line)
		}

		state, err := ParseState(fields[1])
		if err != nil {
			return nil, err
		}
		version, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, errors.ErrToolOutput.WithMessagef("bad version in listing line %q", line)
		}

		rec.Name = fields[0]
		rec.State = state
		rec.Version = version
		records = append(records, rec)
	}
	return records, nil
}

// decodeOnlineListing parses the output of `wsl --list --online`.
// Everything before the header line is banner text and skipped; if no
// header is found the catalog is treated as empty.
func decodeOnlineListing(lines []string) []OnlineDistribution {
	start := -1
	for i, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), onlineHeaderToken) {
			start = i + 1
			break
		}
	}
	if start < 0 {
		return nil
	}

	var entries []OnlineDistribution
	for _, line := range lines[start:] {
		line = strings.TrimSpace(line)
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}
		name := fields[0]
		// Split on the first whitespace run only; friendly names
		// contain spaces.
		friendly := strings.TrimSpace(strings.TrimPrefix(line, name))
		entries = append(entries, OnlineDistribution{
			Name:         name,
			FriendlyName: friendly,
		})
	}
	return entries
}

// decodeVersionInfo parses the output of `wsl --version`. The labels
// are localized, so each line is reduced to the value after the last
// colon and before the first hyphen, and values are assigned purely by
// position. This breaks if the tool reorders its output; there is no
// content-based identification available.
func decodeVersionInfo(lines []string) VersionInfo {
	var info VersionInfo
	targets := []*string{
		&info.WSL,
		&info.Kernel,
		&info.WSLg,
		&info.MSRDC,
		&info.Direct3D,
		&info.DXCore,
		&info.Windows,
	}

	for i, line := range lines {
		if i >= len(targets) {
			break
		}
		*targets[i] = parseVersionValue(line)
	}
	return info
}

// parseVersionValue extracts the dotted version number from one line of
// `wsl --version` output.
func parseVersionValue(line string) string {
	value := line
	if idx := strings.LastIndex(value, ":"); idx >= 0 {
		value = value[idx+1:]
	}
	if idx := strings.Index(value, "-"); idx >= 0 {
		value = value[:idx]
	}
	return strings.TrimSpace(value)
}
