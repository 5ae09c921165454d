package wsl

import "strconv"

// Argument vector assembly for every supported wsl.exe operation. Each
// builder takes validated high-level parameters and returns the exact
// argv passed to the invoker.

func listArgs() []string {
	return []string{"--list", "--verbose"}
}

func listOnlineArgs() []string {
	return []string{"--list", "--online"}
}

func terminateArgs(name string) []string {
	return []string{"--terminate", name}
}

func setVersionArgs(name string, version int) []string {
	return []string{"--set-version", name, strconv.Itoa(version)}
}

func setDefaultArgs(name string) []string {
	return []string{"--set-default", name}
}

func unregisterArgs(name string) []string {
	return []string{"--unregister", name}
}

func exportArgs(name, destination string, vhd bool) []string {
	args := []string{"--export", name, destination}
	if vhd {
		args = append(args, "--vhd")
	}
	return args
}

func importArgs(name, destination, source string, version int, vhd bool) []string {
	args := []string{"--import", name, destination, source}
	if version != 0 {
		args = append(args, "--version", strconv.Itoa(version))
	}
	if vhd {
		args = append(args, "--vhd")
	}
	return args
}

func importInPlaceArgs(name, source string) []string {
	return []string{"--import-in-place", name, source}
}

func shutdownArgs() []string {
	return []string{"--shutdown"}
}

func versionArgs() []string {
	return []string{"--version"}
}

// RunOptions carries the session parameters shared by command
// execution and interactive sessions.
type RunOptions struct {
	// User runs the command as the given distribution user.
	User string

	// System starts the session in the system distribution.
	System bool

	// WorkingDirectory is the initial directory inside the
	// distribution.
	WorkingDirectory string

	// ShellType selects the shell behavior (standard, login, none).
	ShellType string
}

// sessionArgs builds the common prefix for run and enter invocations.
func sessionArgs(name string, opts RunOptions) []string {
	args := []string{"--distribution", name}
	if opts.System {
		args = append(args, "--system")
	}
	if opts.User != "" {
		args = append(args, "--user", opts.User)
	}
	if opts.WorkingDirectory != "" {
		args = append(args, "--cd", opts.WorkingDirectory)
	}
	if opts.ShellType != "" {
		args = append(args, "--shell-type", opts.ShellType)
	}
	return args
}

// runArgs builds the argv for executing a raw command vector inside a
// distribution. The "--" separator keeps tool flags and the command
// apart.
func runArgs(name string, opts RunOptions, command []string) []string {
	args := append(sessionArgs(name, opts), "--")
	return append(args, command...)
}

// runShellArgs builds the argv for a free-form command string, executed
// through the distribution's shell.
func runShellArgs(name string, opts RunOptions, command string) []string {
	return runArgs(name, opts, []string{"/bin/sh", "-c", command})
}

// enterArgs builds the argv for an interactive session. No separator
// and no command: the tool starts the default shell.
func enterArgs(name string, opts RunOptions) []string {
	return sessionArgs(name, opts)
}
