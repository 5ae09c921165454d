package wsl

import (
	"path/filepath"
	"testing"
)

func TestResolveExport_DirectoryAuto(t *testing.T) {
	dir := t.TempDir()
	path, vhd := ResolveExport("Ubuntu", dir, FormatAuto)
	if path != filepath.Join(dir, "Ubuntu.tar.gz") {
		t.Errorf("expected tar file in directory, got %q", path)
	}
	if vhd {
		t.Error("expected archive format for Auto in a directory")
	}
}

func TestResolveExport_DirectoryVhd(t *testing.T) {
	dir := t.TempDir()
	path, vhd := ResolveExport("Ubuntu", dir, FormatVhd)
	if path != filepath.Join(dir, "Ubuntu.vhdx") {
		t.Errorf("expected vhdx file in directory, got %q", path)
	}
	if !vhd {
		t.Error("expected virtual disk format")
	}
}

func TestResolveExport_FileExtensionDecides(t *testing.T) {
	path, vhd := ResolveExport("Ubuntu", filepath.Join("out", "x.vhdx"), FormatAuto)
	if !vhd {
		t.Error("expected .vhdx destination to select the virtual disk format")
	}
	if path != filepath.Join("out", "x.vhdx") {
		t.Errorf("expected destination unchanged, got %q", path)
	}

	if _, vhd := ResolveExport("Ubuntu", filepath.Join("out", "x.tar"), FormatAuto); vhd {
		t.Error("expected .tar destination to select the archive format")
	}
}

func TestResolveExport_ExplicitSelectorWins(t *testing.T) {
	if _, vhd := ResolveExport("Ubuntu", "backup.vhdx", FormatTar); vhd {
		t.Error("expected explicit tar selector to override the extension")
	}
	if _, vhd := ResolveExport("Ubuntu", "backup.tar", FormatVhd); !vhd {
		t.Error("expected explicit vhd selector to override the extension")
	}
}

func TestParseFormat(t *testing.T) {
	cases := map[string]Format{
		"":     FormatAuto,
		"auto": FormatAuto,
		"tar":  FormatTar,
		"vhd":  FormatVhd,
		"vhdx": FormatVhd,
		"VHDX": FormatVhd,
	}
	for token, want := range cases {
		got, ok := ParseFormat(token)
		if !ok {
			t.Errorf("expected %q to parse", token)
		}
		if got != want {
			t.Errorf("token %q: expected %v, got %v", token, want, got)
		}
	}

	if _, ok := ParseFormat("zip"); ok {
		t.Error("expected unknown token to be rejected")
	}
}

func TestResolveImportFormat(t *testing.T) {
	if !resolveImportFormat("disk.vhdx", FormatAuto) {
		t.Error("expected .vhdx source to select the virtual disk format")
	}
	if resolveImportFormat("rootfs.tar.gz", FormatAuto) {
		t.Error("expected archive source to select the archive format")
	}
	if resolveImportFormat("disk.vhdx", FormatTar) {
		t.Error("expected explicit tar selector to win")
	}
}

func TestDistributionNameFromFile(t *testing.T) {
	cases := map[string]string{
		"alpine.tar.gz":             "alpine",
		"/data/ubuntu-22.04.tar":    "ubuntu-22.04",
		`C:\images\debian.vhdx`:     "debian",
		"rootfs.tgz":                "rootfs",
		"plainname":                 "plainname",
		"/data/archlinux.tar.xz":    "archlinux",
		"/data/noble-server.tar.gz": "noble-server",
	}
	for source, want := range cases {
		if got := DistributionNameFromFile(source); got != want {
			t.Errorf("source %q: expected %q, got %q", source, want, got)
		}
	}
}
