package config

import "fmt"

// ConfigError marks malformed or unusable configuration. It is fatal to the
// run that hits it and is recovered by the operator fixing the configuration
// and restarting.
type ConfigError struct {
	Reason string
	Err    error
}

func (e *ConfigError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("config: %s: %v", e.Reason, e.Err)
	}
	return "config: " + e.Reason
}

func (e *ConfigError) Unwrap() error { return e.Err }
