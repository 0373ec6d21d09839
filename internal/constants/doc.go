// Package constants holds file system constants shared across packages.
package constants
