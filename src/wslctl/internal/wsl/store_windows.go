//go:build windows

package wsl

import (
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sys/windows/registry"

	"github.com/wslkit/wslctl/src/common/errors"
	"github.com/wslkit/wslctl/src/common/paths"
)

// lxssKeyPath is the per-user registry key where WSL records its
// distributions.
const lxssKeyPath = `Software\Microsoft\Windows\CurrentVersion\Lxss`

// registryStore reads distribution metadata from the lxss registry
// key. Each subkey is named by the distribution GUID and carries
// DistributionName, BasePath and optionally VhdFileName values.
type registryStore struct{}

// openStore returns the platform configuration store.
func openStore() ConfigStore {
	return registryStore{}
}

// Lookup implements ConfigStore.
func (registryStore) Lookup(name string) (StoreEntry, bool, error) {
	root, err := registry.OpenKey(registry.CURRENT_USER, lxssKeyPath, registry.READ)
	if err != nil {
		return StoreEntry{}, false, errors.ErrStoreUnavailable.WithCause(err)
	}
	defer root.Close()

	subkeys, err := root.ReadSubKeyNames(-1)
	if err != nil {
		return StoreEntry{}, false, errors.ErrStoreUnavailable.WithCause(err)
	}

	for _, subkey := range subkeys {
		key, err := registry.OpenKey(root, subkey, registry.READ)
		if err != nil {
			continue
		}
		stored, _, err := key.GetStringValue("DistributionName")
		if err != nil || !strings.EqualFold(stored, name) {
			key.Close()
			continue
		}

		entry := StoreEntry{GUID: normalizeGUID(subkey)}
		if base, _, err := key.GetStringValue("BasePath"); err == nil {
			entry.BasePath = paths.StripLongPathPrefix(base)
		}
		if vhd, _, err := key.GetStringValue("VhdFileName"); err == nil {
			entry.VhdFileName = vhd
		}
		key.Close()
		return entry, true, nil
	}
	return StoreEntry{}, false, nil
}

// DefaultVersion implements ConfigStore.
func (registryStore) DefaultVersion() (int, bool) {
	root, err := registry.OpenKey(registry.CURRENT_USER, lxssKeyPath, registry.READ)
	if err != nil {
		return 0, false
	}
	defer root.Close()

	value, _, err := root.GetIntegerValue("DefaultVersion")
	if err != nil {
		return 0, false
	}
	return int(value), true
}

// normalizeGUID strips the registry braces and validates the
// identifier; a malformed subkey name is passed through untouched.
func normalizeGUID(subkey string) string {
	trimmed := strings.Trim(subkey, "{}")
	if id, err := uuid.Parse(trimmed); err == nil {
		return id.String()
	}
	return subkey
}
