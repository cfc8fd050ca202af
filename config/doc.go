// Package config loads checksum CLI settings from a YAML file. Values
// missing from the file keep their defaults; command-line flags are
// applied on top by the caller.
package config
