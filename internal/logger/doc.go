// Package logger wraps a shared zap sugared logger behind context-aware helpers.
// The verbosity is controlled by an atomic level so it can be changed once
// the configuration file has been read.
package logger
