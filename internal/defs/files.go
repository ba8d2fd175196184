// Package defs holds file names and permissions shared across packages.
package defs

import "os"

// File names and directories used by chalee itself.
const (
	// ConfigDir is the per-user configuration directory under the home directory.
	ConfigDir = ".chalee"

	// ConfigFile is the configuration file name inside ConfigDir.
	ConfigFile = "config.yaml"

	// EnvFile is the optional dotenv file read from the working directory.
	EnvFile = ".env"

	// EnvPrefix prefixes every environment variable that overrides configuration.
	EnvPrefix = "CHALEE"
)

// Permissions for generated files and directories.
const (
	DirPerm  os.FileMode = 0o755
	FilePerm os.FileMode = 0o644
)
