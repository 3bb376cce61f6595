// Package config loads runtime configuration for the CapitalChronicles CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-s string   account store backend: json, legacy or sqlite
//	-f string   path of the account store (default depends on -s)
//	-p string   password hashing scheme for new accounts: sha256 or argon2id
//	-l string   log level: debug, info, warn or error
//	-t int      intro typing delay per character (milliseconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the typing delay, so it can be
// either a string like "70ms" or integer nanoseconds:
//
//	{
//	  "store_kind": "json",
//	  "store_path": "accounts.json",
//	  "password_scheme": "sha256",
//	  "log_level": "warn",
//	  "typing_delay": "70ms"
//	}
//
// Keys left out of the file keep their default values.
package config
