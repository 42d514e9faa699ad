// Package config loads textboard settings.
//
// Values are layered, later layers winning: the embedded defaults, the user
// file ($XDG_CONFIG_HOME/textboard/config.toml or an explicit path),
// TEXTBOARD_SECTION__KEY environment variables, then flag overrides.
package config
