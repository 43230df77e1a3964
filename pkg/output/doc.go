// Package output writes composed configurations and renders them for
// humans.
//
// Machine formats (JSON, YAML, TOML) go through Encode. The list and explain
// commands use a pterm table and glamour-rendered markdown respectively;
// both fall back to plain text when the writer is not a terminal.
package output
