// Package config carries the tunable knobs of the codec and the server.
package config

type (
	Config struct {
		NET     NET
		Headers Headers
	}

	NET struct {
		// ReadBufferSize bounds a whole request. Everything beyond a
		// single read of this size is never seen.
		ReadBufferSize int
	}

	Headers struct {
		// Prealloc is the headers capacity a request starts with.
		Prealloc int
	}
)

// Default returns the configuration used when no overrides are given.
func Default() *Config {
	return &Config{
		NET: NET{
			ReadBufferSize: 2048,
		},
		Headers: Headers{
			Prealloc: 10,
		},
	}
}
