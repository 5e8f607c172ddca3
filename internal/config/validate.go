package config

import (
	"fmt"
	"strings"
)

var validColorModes = []string{string(ColorAuto), string(ColorAlways), string(ColorNever)}

// Validate checks enumerated values. It returns an error describing every
// invalid value found, or nil if all values are valid.
func (c Config) Validate() error {
	var errs []string

	if !contains(validColorModes, string(c.Color)) {
		errs = append(errs, fmt.Sprintf(
			"%s: invalid value %q (allowed: %s)",
			KeyColor, c.Color, strings.Join(validColorModes, ", ")))
	}
	if c.Speak && strings.TrimSpace(c.SpeakCommand) == "" {
		errs = append(errs, fmt.Sprintf("%s: must be set when %s is enabled", KeySpeakCommand, KeySpeak))
	}

	if len(errs) == 0 {
		return nil
	}
	return fmt.Errorf("config validation failed:\n  %s", strings.Join(errs, "\n  "))
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}
