// SPDX-License-Identifier: MIT

// Package fs is the file system seam used by the vector file helpers.
//
// Production code goes through Default (LocalFS, a thin os wrapper); tests swap
// in FaultyFS to make writes, closes or opens fail on demand. Every operation
// is a short local call, so there is no context.Context parameter.
package fs

import (
	"io"
	"os"
)

// File is an open file as seen by the vector file helpers.
type File interface {
	io.ReadWriteCloser
	Name() string
}

// FileSystem opens files by path.
type FileSystem interface {
	// OpenFile mirrors os.OpenFile.
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
}

// LocalFS implements FileSystem using the local os package.
type LocalFS struct{}

// OpenFile opens name via os.OpenFile.
func (LocalFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		// untyped nil, never a File holding a nil *os.File
		return nil, err
	}

	return f, nil
}

// Default is the default local file system.
var Default FileSystem = LocalFS{}
