// Package config loads typed configuration structs from environment variables.
//
// It wraps github.com/caarlos0/env/v11 for tag-driven parsing and
// github.com/joho/godotenv for dotenv files. The default ".env" in the working
// directory is read once per process if present; additional files can be
// requested per call with WithEnvFiles.
//
// Each struct type is parsed once per prefix and cached, so repeated Load calls
// are cheap and stable for the lifetime of the process. Tests can call
// ResetCache to start over.
//
//	type Settings struct {
//	    Strict   bool   `env:"STRICT" envDefault:"false"`
//	    LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
//	}
//
//	var s Settings
//	if err := config.Load(&s, config.WithPrefix("STATEMACHINE_")); err != nil {
//	    log.Fatal(err)
//	}
//
// Errors can be matched with errors.Is against ErrParsingConfig,
// ErrLoadingEnvFile and ErrNilPointer.
package config
