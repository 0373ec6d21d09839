package constants

import "os"

const (
	// DefaultFilePermissions sets the default permissions for regular files: (rw-r--r--).
	DefaultFilePermissions os.FileMode = 0o644

	// SecretFilePermissions is used for files holding credentials such as the auth token: (rw-------).
	SecretFilePermissions os.FileMode = 0o600

	// DefaultFolderPermissions sets the default permissions for regular folders: (rwxr-xr-x).
	DefaultFolderPermissions os.FileMode = 0o755
)
