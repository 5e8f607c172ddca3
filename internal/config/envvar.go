package config

// EnvPrefix is prepended to upper-cased keys to form environment variable
// names, e.g. SDR_USERNAME or SDR_SPEAK_COMMAND.
const EnvPrefix = "SDR"

// Environment variables read by sdr.
const (
	EnvUsername = "SDR_USERNAME" // Override the acting user
	EnvDBPath   = "SDR_DBPATH"   // Override the database location
	EnvColor    = "SDR_COLOR"    // auto, always or never
	EnvDebug    = "SDR_DEBUG"    // Enable debug logging
	EnvNoColor  = "NO_COLOR"     // Disable colour when set (https://no-color.org)
)
