package mods

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"
	"sable/common"
	"sable/logging"

	"github.com/pelletier/go-toml"
)

// ImportConfig describes how the foreign frontend should be invoked for a
// Sable project.  It is the deserialized form of the bridge configuration
// file at the project root.
type ImportConfig struct {
	// TargetTriple is the target the foreign frontend should analyze for
	TargetTriple string

	// SysRoot is the path to the foreign SDK root
	SysRoot string

	// ModuleCachePath is the directory the foreign frontend caches parsed
	// modules in; when empty a per-user default under the system temporary
	// directory is used
	ModuleCachePath string

	// ImportSearchDirs is a list of directories to search for foreign
	// headers and module maps
	ImportSearchDirs []string

	// FrameworkSearchDirs is a list of directories to search for foreign
	// frameworks
	FrameworkSearchDirs []string

	// ResourceDir overrides the foreign frontend's builtin resource
	// directory; when empty the frontend's default is used
	ResourceDir string
}

// tomlBridgeFile represents the bridge configuration file as it is encoded in
// TOML
type tomlBridgeFile struct {
	Bridge *tomlBridge `toml:"bridge"`
}

// tomlBridge represents the bridge configuration as it is encoded in TOML
type tomlBridge struct {
	TargetTriple        string   `toml:"target-triple"`
	SysRoot             string   `toml:"sysroot"`
	ModuleCachePath     string   `toml:"module-cache,omitempty"`
	ImportSearchDirs    []string `toml:"import-dirs,omitempty"`
	FrameworkSearchDirs []string `toml:"framework-dirs,omitempty"`
	ResourceDir         string   `toml:"resource-dir,omitempty"`
	Version             string   `toml:"sable-version"`
}

// LoadImportConfig loads and validates the bridge configuration for the
// project rooted at `path`
func LoadImportConfig(path string) (*ImportConfig, error) {
	f, err := os.Open(filepath.Join(path, common.BridgeConfigName))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tbf := &tomlBridgeFile{}
	if err := toml.Unmarshal(buff, tbf); err != nil {
		return nil, err
	}

	if tbf.Bridge == nil {
		return nil, fmt.Errorf("missing [bridge] table in %s", common.BridgeConfigName)
	}

	if err := validateBridge(tbf.Bridge); err != nil {
		return nil, err
	}

	return &ImportConfig{
		TargetTriple:        tbf.Bridge.TargetTriple,
		SysRoot:             tbf.Bridge.SysRoot,
		ModuleCachePath:     tbf.Bridge.ModuleCachePath,
		ImportSearchDirs:    tbf.Bridge.ImportSearchDirs,
		FrameworkSearchDirs: tbf.Bridge.FrameworkSearchDirs,
		ResourceDir:         tbf.Bridge.ResourceDir,
	}, nil
}

// validateBridge checks that the bridge configuration contents are valid
func validateBridge(tb *tomlBridge) error {
	if tb.TargetTriple == "" {
		return errors.New("bridge configuration must specify a target triple")
	}

	if tb.SysRoot == "" {
		return errors.New("bridge configuration must specify a sysroot")
	}

	if tb.Version != common.SableVersion {
		logging.PrintWarningMessage(
			"Bridge",
			fmt.Sprintf("bridge configuration version (v%s) does not match current sable version (v%s)", tb.Version, common.SableVersion),
		)
	}

	return nil
}

// InitImportConfig writes a default bridge configuration file into the
// project directory at `path`
func InitImportConfig(path, targetTriple, sysroot string) error {
	configPath := filepath.Join(path, common.BridgeConfigName)

	// check to see if a configuration already exists
	_, err := os.Stat(configPath)
	if err == nil {
		return errors.New("bridge configuration file already exists")
	}

	if !os.IsNotExist(err) {
		return fmt.Errorf("bridge configuration file error: %s", err.Error())
	}

	tb := &tomlBridge{
		TargetTriple: targetTriple,
		SysRoot:      sysroot,
		Version:      common.SableVersion,
	}

	f, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating bridge configuration file: %s", err.Error())
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(&tomlBridgeFile{Bridge: tb}); err != nil {
		return fmt.Errorf("error encoding TOML %s", err.Error())
	}

	return nil
}
