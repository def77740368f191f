// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package atomicio writes files so that readers never observe a partial write.
package atomicio

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
)

// WriteFile writes data to a temporary file next to name, syncs it and renames
// it over name. On failure name is left untouched.
func WriteFile(name string, data []byte, perm fs.FileMode) (err error) {
	// os.Rename is only atomic within one filesystem.
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".tmp")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if _, err := f.Write(data); err != nil {
		return err
	}
	if err := f.Chmod(perm); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), name)
}

// WriteJSON marshals v as indented JSON and writes it with [WriteFile].
func WriteJSON(name string, v any, perm fs.FileMode) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	return WriteFile(name, append(b, '\n'), perm)
}

// ReadJSON unmarshals the JSON file name into v. A missing file leaves v
// unchanged and is not an error.
func ReadJSON(name string, v any) error {
	b, err := os.ReadFile(name)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return json.Unmarshal(b, v)
}
