// Package config loads dockerpeek settings from .dockerpeek.yaml or
// .dockerpeek.toml. Every setting has a default, so a config file is only
// needed to point the tool at a mirror, change the output location or track
// a different set of services.
package config
