package mods

import (
	"os"
	"path/filepath"
)

// InvocationArgs assembles the command-line-style argument vector used to
// construct the foreign frontend's parsing session from this configuration.
// The session parses a single almost-empty synthetic source file and is then
// kept open so modules can be loaded incrementally behind it.
func (ic *ImportConfig) InvocationArgs() []string {
	args := []string{
		"-x", "objective-c", "-fmodules", "-fblocks",
		"-fsyntax-only", "-w",
		"-isysroot", ic.SysRoot, "-triple", ic.TargetTriple,
		"sable.m",
	}

	for _, path := range ic.ImportSearchDirs {
		args = append(args, "-I", path)
	}

	for _, path := range ic.FrameworkSearchDirs {
		args = append(args, "-F", path)
	}

	args = append(args, "-fmodules-cache-path="+ic.moduleCachePath())

	if ic.ResourceDir != "" {
		args = append(args, "-resource-dir", ic.ResourceDir)
	}

	return args
}

// moduleCachePath returns the configured module cache directory, falling back
// to a stable default under the system temporary directory
func (ic *ImportConfig) moduleCachePath() string {
	if ic.ModuleCachePath != "" {
		return ic.ModuleCachePath
	}

	return filepath.Join(os.TempDir(), "sable", "ModuleCache")
}
