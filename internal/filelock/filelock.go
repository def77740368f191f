// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package filelock guards a file against concurrent use by cooperating
// processes with a non-blocking flock(2) lock.
package filelock

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"syscall"
)

// ErrAlreadyLocked is returned by [Acquire] when another process holds the lock.
var ErrAlreadyLocked = errors.New("already locked")

// Lock is a held lock. The zero value and nil are released locks.
type Lock struct {
	file *os.File
}

// Acquire locks path, creating it if needed, and writes the current process
// ID into it so that the holder can be identified.
func Acquire(path string) (*Lock, error) {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o644)
	if err != nil {
		return nil, err
	}
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX|syscall.LOCK_NB); err != nil {
		f.Close()
		if errors.Is(err, syscall.EWOULDBLOCK) {
			return nil, fmt.Errorf("%s: %w", path, ErrAlreadyLocked)
		}
		return nil, err
	}

	l := &Lock{file: f}
	if err := l.writePID(); err != nil {
		return nil, errors.Join(err, l.Release())
	}
	return l, nil
}

func (l *Lock) writePID() error {
	if err := l.file.Truncate(0); err != nil {
		return err
	}
	_, err := l.file.WriteAt([]byte(strconv.Itoa(os.Getpid())+"\n"), 0)
	return err
}

// Release unlocks and closes the lock file. It is safe to call more than once.
func (l *Lock) Release() error {
	if l == nil || l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	return errors.Join(syscall.Flock(int(f.Fd()), syscall.LOCK_UN), f.Close())
}
