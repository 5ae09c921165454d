package wsl

// StoreEntry is the per-distribution metadata held by the host
// configuration store outside the tool's own command surface.
type StoreEntry struct {
	// GUID is the normalized registry identifier.
	GUID string

	// BasePath is the distribution's on-disk location.
	BasePath string

	// VhdFileName is the virtual disk file name, when the store
	// records one. Empty means the default name applies.
	VhdFileName string
}

// ConfigStore is a read-only lookup of distribution metadata. Absence
// of an entry, or of the store itself, is tolerated: enrichment is
// best-effort.
type ConfigStore interface {
	// Lookup returns the entry whose stored distribution name equals
	// name, or ok=false when there is none.
	Lookup(name string) (entry StoreEntry, ok bool, err error)

	// DefaultVersion returns the architecture version used for new
	// distributions, or ok=false when the store does not record one.
	DefaultVersion() (version int, ok bool)
}

// defaultVhdFileName is used for version 2 distributions whose store
// entry does not name a custom disk file.
const defaultVhdFileName = "ext4.vhdx"
