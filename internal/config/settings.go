package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/viper"
)

// Get returns the raw value of key from the user config file, or the empty
// string when unset. Only the four known config keys are addressable; project
// and environment layers are deliberately not consulted here — use Load for
// the merged view.
func Get(key string) (string, error) {
	if !knownKey(key) {
		return "", fmt.Errorf("unknown config key %q", key)
	}
	paths, err := ResolvePaths("")
	if err != nil {
		return "", err
	}

	v := viper.New()
	v.SetConfigFile(paths.UserConfigFile)
	v.SetConfigType("yaml")

	// Ignore error if the config file doesn't exist yet.
	_ = v.ReadInConfig()

	return v.GetString(key), nil
}

// Set writes a single key-value pair to the user config file, creating the
// file and its directory if needed. The value passes the same field
// validation as a full Load before anything is written.
func Set(key, value string) error {
	if !knownKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	if _, err := validate(map[string]any{key: value}); err != nil {
		return err
	}
	paths, err := ResolvePaths("")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(paths.UserConfigDir, dirPerm); err != nil {
		return &Error{Path: paths.UserConfigDir, Msg: "creating config directory", Err: err}
	}

	v := viper.New()
	v.SetConfigFile(paths.UserConfigFile)
	v.SetConfigType("yaml")
	_ = v.ReadInConfig()

	// Keep max_tokens an integer in the written file.
	if key == KeyMaxTokens {
		n, convErr := strconv.Atoi(value)
		if convErr != nil {
			return &Error{Msg: "invalid configuration", Err: FieldError{Field: KeyMaxTokens, Msg: fmt.Sprintf("expected an integer, got %q", value)}}
		}
		v.Set(key, n)
	} else {
		v.Set(key, value)
	}

	// Viper serializes keys alphabetically, so a file touched by Set loses the
	// field-declaration order that WriteDefault produces. The mapping content
	// is identical either way; only config init output is order-canonical.
	if err := v.WriteConfigAs(paths.UserConfigFile); err != nil {
		return &Error{Path: paths.UserConfigFile, Msg: "writing config file", Err: err}
	}
	return nil
}
