// Package logging provides a thin, subsystem-tagged wrapper around log/slog
// for CLI usage. Commands initialize it once at startup; all other packages
// log through the package-level Debug/Info/Warn/Error functions so that the
// verbosity can be controlled from a single flag.
package logging
