package domain

// ConfigFileName is the name of the global configuration file.
const ConfigFileName = "config.toml"

// LocalConfigFileName is the name of the per-directory configuration file.
const LocalConfigFileName = ".clkit.toml"

// Config represents the application configuration.
type Config struct {
	CLBin   string        `toml:"cl_bin"`  // Path or name of the cl binary
	History HistoryConfig `toml:"history"` // [history] settings
	Chain   ChainConfig   `toml:"chain"`   // [chain] settings
	Log     LogConfig     `toml:"log"`     // [log] settings
}

// HistoryConfig holds history injection settings from the [history] section.
type HistoryConfig struct {
	Shell string `toml:"shell"` // Shell override: bash, zsh, fish
	File  string `toml:"file"`  // History file override
}

// ChainConfig holds chaining settings from the [chain] section.
type ChainConfig struct {
	Split string `toml:"split"` // Field splitting mode: whitespace, lines
}

// LogConfig holds logging settings from the [log] section.
type LogConfig struct {
	Level string `toml:"level"` // Log level: debug, info, warn, error
	File  string `toml:"file"`  // Log file override
}

// NewDefaultConfig returns the configuration used when no file is present.
func NewDefaultConfig() *Config {
	return &Config{
		CLBin: "cl",
		Chain: ChainConfig{
			Split: string(SplitWhitespace),
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
