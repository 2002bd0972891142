// Package logger builds configured log/slog loggers.
//
// Components in this module never log through a global singleton; they take
// a *slog.Logger in their constructors so tests can substitute one. This
// package is the single place where handlers, formats and levels are chosen.
//
//	log := logger.New(
//	    logger.WithEnvironment(cfg.Environment, "api"),
//	)
package logger
