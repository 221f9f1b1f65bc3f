// Package config defines the settings shared by the wake-gate binaries and
// provides helpers to load, validate and save them in YAML format.
//
// Every field can be overridden with a WAKE_GATE_* environment variable;
// the environment wins over the file.
package config
