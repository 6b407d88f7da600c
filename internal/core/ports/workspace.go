package ports

// Workspace defines the filesystem operations used to manage the build directory.
//
//go:generate mockgen -source=workspace.go -destination=mocks/mock_workspace.go -package=mocks
type Workspace interface {
	// Getwd returns the current working directory.
	Getwd() (string, error)

	// Chdir changes the current working directory.
	Chdir(dir string) error

	// Exists reports whether path exists.
	Exists(path string) (bool, error)

	// RemoveAll deletes path and everything below it. A missing path is not an error.
	RemoveAll(path string) error

	// MkdirAll creates dir and any missing parents.
	MkdirAll(dir string) error
}
