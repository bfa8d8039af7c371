package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/mykeychain/internal/flagx"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Parsed
// values are copied into the runtime Config.
type JsonConfig struct {
	UsersFile   string `json:"users_file"`
	CharsetFile string `json:"charset_file"`
}

// parseJson overlays cfg with values loaded from the JSON file named by
// the -c/-config flags. When no file is named, nothing happens. Read or
// unmarshal errors panic; startup configuration has no caller to recover.
// Empty fields in the file leave the current value in place.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.UsersFile != "" {
		cfg.UsersFile = jc.UsersFile
	}
	if jc.CharsetFile != "" {
		cfg.CharsetFile = jc.CharsetFile
	}
}
