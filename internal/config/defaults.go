package config

const (
	defaultLogDir         = "~/.local/share/ladle/logs"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultUserAgent      = "ladle/0.1"
	defaultRequestTimeout = 300
	defaultMinFreeMiB     = 512
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			CacheDir: defaultCacheDir(),
			LogDir:   defaultLogDir,
		},
		Fetch: Fetch{
			UserAgent:      defaultUserAgent,
			RequestTimeout: defaultRequestTimeout,
			MinFreeMiB:     defaultMinFreeMiB,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
