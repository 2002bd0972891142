// Package config loads environment-style configuration into tagged structs.
//
// Fields are declared with `env` and `envDefault` tags and populated from
// process environment variables, with an optional .env file loaded once per
// process as a development convenience.
//
//	type ServerConfig struct {
//	    Port int    `env:"PORT" envDefault:"8080"`
//	    Env  string `env:"NODE_ENV" envDefault:"development"`
//	}
//
//	var cfg ServerConfig
//	if err := config.Load(&cfg); err != nil {
//	    // missing required variables, malformed values
//	}
package config
