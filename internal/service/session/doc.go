// Package session implements the user-facing workflows of the CLI on top of
// the backend client.
//
// It fetches the public system configuration, saves captcha images, logs in
// with a password (prompting for missing credentials and the captcha code)
// and persists the resulting token, describes the current user and loads the
// annotated route tree.
package session
