// SPDX-License-Identifier: MIT

package fs

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// ErrInjected is the error returned by FaultyFS when a Fault carries no Err.
var ErrInjected = errors.New("fs: injected fault")

// Fault describes how files matched by a rule misbehave.
type Fault struct {
	FailOnOpen     bool  // OpenFile fails before touching the underlying FS
	FailAfterBytes int64 // writes past this many bytes fail; -1 disables
	FailOnRead     bool  // every Read fails
	FailOnClose    bool  // Close closes the real file but reports an error
	Err            error // error to report; ErrInjected when nil
}

func (f Fault) err() error {
	if f.Err != nil {
		return f.Err
	}

	return ErrInjected
}

// NoFault is the zero-behavior rule: nothing fails.
var NoFault = Fault{FailAfterBytes: -1}

// FaultyFS wraps a FileSystem and injects failures per file-name pattern.
type FaultyFS struct {
	FS    FileSystem
	mu    sync.Mutex
	rules map[string]Fault // substring of the file name -> fault
}

// NewFaultyFS wraps base (Default when nil) with no rules.
func NewFaultyFS(base FileSystem) *FaultyFS {
	if base == nil {
		base = Default
	}

	return &FaultyFS{FS: base, rules: make(map[string]Fault)}
}

// AddRule registers fault for every file whose name contains pattern.
func (f *FaultyFS) AddRule(pattern string, fault Fault) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.rules[pattern] = fault
}

// match returns the fault for name; with several matching patterns the longest wins.
func (f *FaultyFS) match(name string) Fault {
	f.mu.Lock()
	defer f.mu.Unlock()
	fault, best := NoFault, -1
	for pattern, rule := range f.rules {
		if strings.Contains(name, pattern) && len(pattern) > best {
			fault, best = rule, len(pattern)
		}
	}

	return fault
}

// OpenFile opens name on the wrapped FS and attaches the matching fault.
func (f *FaultyFS) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	fault := f.match(name)
	if fault.FailOnOpen {
		return nil, &os.PathError{Op: "open", Path: name, Err: fault.err()}
	}
	file, err := f.FS.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}

	return &faultyFile{File: file, fault: fault}, nil
}

type faultyFile struct {
	File
	fault   Fault
	written int64
}

func (ff *faultyFile) Read(p []byte) (int, error) {
	if ff.fault.FailOnRead {
		return 0, ff.fault.err()
	}

	return ff.File.Read(p)
}

func (ff *faultyFile) Write(p []byte) (n int, err error) {
	if ff.fault.FailAfterBytes >= 0 && ff.written+int64(len(p)) > ff.fault.FailAfterBytes {
		return 0, ff.fault.err()
	}
	n, err = ff.File.Write(p)
	ff.written += int64(n)

	return n, err
}

func (ff *faultyFile) Close() error {
	err := ff.File.Close()
	if ff.fault.FailOnClose {
		return ff.fault.err()
	}

	return err
}
