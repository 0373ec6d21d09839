// Package app implements the CLI commands: viewing the system configuration,
// saving captcha images, logging in, showing the current user and printing
// the annotated route tree.
//
// Each Execute* function wires the backend client into the session service,
// runs one workflow and exits the process through the logger on failure.
// Output is rendered by helpers writing to an io.Writer.
package app
