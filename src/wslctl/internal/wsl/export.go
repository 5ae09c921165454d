package wsl

import (
	"path/filepath"
	"strings"

	"github.com/wslkit/wslctl/src/common/paths"
)

// Format selects the on-disk format of exports and imports.
type Format int

const (
	// FormatAuto infers the format from the destination path.
	FormatAuto Format = iota
	// FormatTar forces the tar archive format.
	FormatTar
	// FormatVhd forces the virtual disk format.
	FormatVhd
)

// ParseFormat maps a CLI token to a Format.
func ParseFormat(token string) (Format, bool) {
	switch strings.ToLower(token) {
	case "", "auto":
		return FormatAuto, true
	case "tar":
		return FormatTar, true
	case "vhd", "vhdx":
		return FormatVhd, true
	}
	return FormatAuto, false
}

const (
	tarExtension = ".tar.gz"
	vhdExtension = ".vhdx"
)

// ResolveExport turns a destination and format selector into the
// concrete file path and the use-virtual-disk decision. An explicit
// selector wins; when the destination is an existing directory the
// file name is derived from the distribution name; otherwise the
// destination's extension decides.
func ResolveExport(name, destination string, format Format) (string, bool) {
	if paths.IsDir(destination) {
		ext := tarExtension
		if format == FormatVhd {
			ext = vhdExtension
		}
		return filepath.Join(destination, name+ext), format == FormatVhd
	}

	switch format {
	case FormatTar:
		return destination, false
	case FormatVhd:
		return destination, true
	}
	return destination, strings.EqualFold(filepath.Ext(destination), vhdExtension)
}

// resolveImportFormat decides the use-virtual-disk flag for an import
// source file.
func resolveImportFormat(source string, format Format) bool {
	switch format {
	case FormatTar:
		return false
	case FormatVhd:
		return true
	}
	return strings.EqualFold(filepath.Ext(source), vhdExtension)
}

// DistributionNameFromFile derives a distribution name from an import
// file: the base name with archive or disk extensions removed. Both
// path separators are handled because import sources may be Windows
// paths.
func DistributionNameFromFile(source string) string {
	base := filepath.Base(source)
	if idx := strings.LastIndex(base, `\`); idx >= 0 {
		base = base[idx+1:]
	}
	for _, ext := range []string{".tar.gz", ".tar.xz", ".tgz", ".tar", ".vhdx", ".gz", ".xz"} {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			return base[:len(base)-len(ext)]
		}
	}
	return base
}
