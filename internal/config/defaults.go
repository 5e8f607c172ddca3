package config

import "runtime"

// Config keys, shared by the config file and SDR_<KEY> environment variables.
const (
	KeyUsername     = "username"
	KeyDBPath       = "dbpath"
	KeySpeak        = "speak"
	KeySpeakCommand = "speak_command"
	KeyColor        = "color"
	KeyStrict       = "strict"
	KeyDebug        = "debug"
)

// DefaultValues returns the default value for every key that has one.
// username and dbpath are detected from the workspace instead.
func DefaultValues() map[string]any {
	return map[string]any{
		KeySpeak:        false,
		KeySpeakCommand: DefaultSpeakCommand(),
		KeyColor:        string(ColorAuto),
		KeyStrict:       false,
		KeyDebug:        false,
	}
}

// DefaultSpeakCommand returns the platform text-to-speech program.
func DefaultSpeakCommand() string {
	if runtime.GOOS == "darwin" {
		return "say"
	}
	return "espeak"
}
