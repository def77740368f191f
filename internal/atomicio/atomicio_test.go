// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package atomicio

import (
	"os"
	"path/filepath"
	"testing"

	"go.astrophena.name/tgapi/internal/testutil"
)

func TestWriteFile(t *testing.T) {
	t.Parallel()

	t.Run("new file", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "test.txt")

		if err := WriteFile(file, []byte("hello"), 0o600); err != nil {
			t.Fatal(err)
		}

		got, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, string(got), "hello")

		fi, err := os.Stat(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, fi.Mode().Perm(), os.FileMode(0o600))
	})

	t.Run("overwrite leaves no temporary files", func(t *testing.T) {
		t.Parallel()
		dir := t.TempDir()
		file := filepath.Join(dir, "test.txt")

		for _, data := range []string{"hello", "world"} {
			if err := WriteFile(file, []byte(data), 0o644); err != nil {
				t.Fatal(err)
			}
		}

		got, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, string(got), "world")

		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatal(err)
		}
		testutil.AssertEqual(t, len(entries), 1)
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()
		file := filepath.Join(t.TempDir(), "nope", "test.txt")
		if err := WriteFile(file, []byte("hello"), 0o644); err == nil {
			t.Fatal("want error, got nil")
		}
	})
}

func TestJSON(t *testing.T) {
	t.Parallel()

	type doc struct {
		Name  string   `json:"name"`
		Items []string `json:"items"`
	}

	file := filepath.Join(t.TempDir(), "state.json")

	var missing doc
	if err := ReadJSON(file, &missing); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, missing, doc{})

	want := doc{Name: "feed", Items: []string{"a", "b"}}
	if err := WriteJSON(file, want, 0o600); err != nil {
		t.Fatal(err)
	}
	var got doc
	if err := ReadJSON(file, &got); err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, got, want)

	if err := os.WriteFile(file, []byte("{"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := ReadJSON(file, &got); err == nil {
		t.Fatal("want error for malformed JSON, got nil")
	}
}
