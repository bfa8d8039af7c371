// Package config assembles runtime settings for the mykeychain CLI from
// defaults, an optional JSON file and command-line flags, in that order of
// precedence.
package config

// Config holds runtime settings for the mykeychain CLI.
//
// Fields:
//   - UsersFile: path of the persisted account store document.
//   - CharsetFile: path of the persisted cipher alphabet.
type Config struct {
	UsersFile   string
	CharsetFile string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.UsersFile = "users.json"
	c.CharsetFile = "charset.txt"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present) and command-line flags (if present). Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
