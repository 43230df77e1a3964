// Package config loads flatlint's settings.
//
// Sources are layered, later ones winning: the embedded defaults, the user
// file under $XDG_CONFIG_HOME/flatlint, the workspace file (flatlint.toml,
// .flatlint.toml or flatlint.yaml) and FLATLINT_* environment variables.
package config
