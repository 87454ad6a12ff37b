// Package filesystem holds the afero backend shared by config, logs, palettes and history.
//
// Tests swap in an in-memory backend so nothing touches the real disk.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active backend.
func API() afero.Afero {
	return backend
}

func use(fs afero.Fs) {
	backend = afero.Afero{Fs: fs}
}

// SetOsFs switches to the operating system filesystem.
func SetOsFs() {
	use(afero.NewOsFs())
}

// SetMemMapFs switches to a fresh in-memory filesystem.
func SetMemMapFs() {
	use(afero.NewMemMapFs())
}
