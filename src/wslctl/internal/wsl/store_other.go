//go:build !windows

package wsl

// openStore returns nil on platforms without the registry-backed
// configuration store. Records are served without enrichment, which is
// not an error.
func openStore() ConfigStore {
	return nil
}
