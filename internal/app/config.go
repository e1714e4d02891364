package app

// AppConfig holds the command-line settings for an App instance. Pointer
// fields are nil when the flag was not given, so the config file value
// (or the built-in default) applies.
type AppConfig struct {
	ConfigPath string
	LogFormat  string
	LogLevel   string

	MinYear  *int
	MaxYear  *int
	HTTPPort *int

	// Dates, when non-empty, are computed once instead of starting a
	// front-end.
	Dates []string
}
