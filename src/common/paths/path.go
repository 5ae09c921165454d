// Package paths provides common path manipulation utilities for wslctl.
package paths

import (
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

// longPathPrefix is the Win32 extended-length prefix stored by some
// Windows components in front of absolute paths.
const longPathPrefix = `\\?\`

// Expand expands special path prefixes:
// - ~ expands to the user's home directory
// - Environment variables are expanded via os.ExpandEnv
func Expand(path string) string {
	// First expand environment variables
	path = os.ExpandEnv(path)

	// Then expand ~ to home directory
	if strings.HasPrefix(path, "~/") {
		if usr, err := user.Current(); err == nil {
			return filepath.Join(usr.HomeDir, path[2:])
		}
	} else if path == "~" {
		if usr, err := user.Current(); err == nil {
			return usr.HomeDir
		}
	}

	return path
}

// StripLongPathPrefix removes the \\?\ extended-length prefix if present.
// The configuration store records base paths with this prefix on recent
// Windows builds.
func StripLongPathPrefix(path string) string {
	return strings.TrimPrefix(path, longPathPrefix)
}

// Exists returns true if the path exists
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// IsDir returns true if the path exists and is a directory
func IsDir(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// IsFile returns true if the path exists and is a regular file
func IsFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return info.Mode().IsRegular()
}
