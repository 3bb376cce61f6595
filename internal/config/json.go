package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/dmitrijs2005/capitalchronicles/internal/flagx"
	"github.com/dmitrijs2005/capitalchronicles/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from "empty" so a partial file only overrides
// what it names.
type JsonConfig struct {
	StoreKind      *string         `json:"store_kind"`
	StorePath      *string         `json:"store_path"`
	PasswordScheme *string         `json:"password_scheme"`
	LogLevel       *string         `json:"log_level"`
	TypingDelay    *timex.Duration `json:"typing_delay"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without such a flag it does nothing. It panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath()
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

	setString(&cfg.StoreKind, jc.StoreKind)
	setString(&cfg.StorePath, jc.StorePath)
	setString(&cfg.PasswordScheme, jc.PasswordScheme)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.TypingDelay != nil {
		cfg.TypingDelay = time.Duration(jc.TypingDelay.Duration)
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}
