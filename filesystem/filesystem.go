// Package filesystem routes every file access through a swappable afero backend.
//
// Production code runs against the OS; tests switch to an in-memory tree with SetMemMapFs.
package filesystem

import (
	"github.com/spf13/afero"
)

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

// SetOsFs switches to the operating system filesystem.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// CreateTemp creates a new uniquely named file in dir; pattern follows os.CreateTemp.
func CreateTemp(dir, pattern string) (afero.File, error) {
	return afero.TempFile(backend.Fs, dir, pattern)
}
