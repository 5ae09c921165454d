package wsl

// Distribution is one installed distribution as reported by a single
// listing invocation. Records are built fresh on every query and never
// mutated afterwards; within one snapshot names are unique and at most
// one record is the default.
type Distribution struct {
	// Name uniquely identifies the distribution. Matching is
	// case-insensitive, storage is case-preserving.
	Name string `json:"name"`

	// State is the lifecycle state reported by wsl.exe.
	State State `json:"state"`

	// Version is the WSL architecture version (1 or 2).
	Version int `json:"version"`

	// Default is true for the distribution used when none is named.
	Default bool `json:"default"`

	// GUID is the registry identifier of the distribution. Populated
	// only when the configuration store is available.
	GUID string `json:"guid,omitempty"`

	// BasePath is the on-disk location of the distribution, with any
	// extended-length prefix stripped. Populated from the store.
	BasePath string `json:"base_path,omitempty"`

	// VhdPath is the virtual disk file of a version 2 distribution.
	// Populated from the store.
	VhdPath string `json:"vhd_path,omitempty"`
}

// FileSystemPath returns the UNC path under which the running
// distribution's root filesystem is exposed to Windows.
func (d *Distribution) FileSystemPath() string {
	return `\\wsl$\` + d.Name
}

// OnlineDistribution is one entry of the online catalog listing
// (`wsl --list --online`). It has no local lifecycle.
type OnlineDistribution struct {
	Name         string `json:"name"`
	FriendlyName string `json:"friendly_name"`
}

// VersionInfo bundles the component versions reported by
// `wsl --version`. Fields are populated positionally from the output
// block; a shorter block leaves trailing fields empty.
type VersionInfo struct {
	WSL      string `json:"wsl,omitempty"`
	Kernel   string `json:"kernel,omitempty"`
	WSLg     string `json:"wslg,omitempty"`
	MSRDC    string `json:"msrdc,omitempty"`
	Direct3D string `json:"direct3d,omitempty"`
	DXCore   string `json:"dxcore,omitempty"`
	Windows  string `json:"windows,omitempty"`

	// DefaultVersion is the architecture version used for new
	// distributions, read from the configuration store when available.
	DefaultVersion int `json:"default_version,omitempty"`
}
