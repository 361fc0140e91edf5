// Package config holds the tunable brush and session defaults — radius,
// strength, falloff shape, normalization mode, undo depth — with YAML
// overrides layered on top of built-in defaults.
//
// Hosts typically load one Brush per user profile and feed its values into
// session calls; nothing in the engine reads a config file on its own.
package config
