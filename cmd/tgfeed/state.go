// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package main

import (
	"cmp"
	"errors"
	"fmt"
	"time"

	"go.astrophena.name/tgapi/internal/atomicio"
	"go.astrophena.name/tgapi/internal/filelock"
	"go.astrophena.name/tgapi/internal/util/set"

	"github.com/mmcdole/gofeed"
)

// maxRemembered bounds the number of entry IDs kept per feed.
const maxRemembered = 500

var errAlreadyRunning = errors.New("another tgfeed is using this state file")

// state is the -state file. Feeds are keyed by chat and feed URL.
type state struct {
	Feeds map[string]*feedState `json:"feeds"`

	path string
	lock *filelock.Lock
}

type feedState struct {
	Sent    []string  `json:"sent"` // oldest first
	LastRun time.Time `json:"last_run"`

	seen set.Set[string]
}

func openState(path string) (*state, error) {
	lock, err := filelock.Acquire(path + ".lock")
	if errors.Is(err, filelock.ErrAlreadyLocked) {
		return nil, fmt.Errorf("%w: %s", errAlreadyRunning, path)
	}
	if err != nil {
		return nil, err
	}
	s := &state{path: path, lock: lock}
	if err := atomicio.ReadJSON(path, s); err != nil {
		lock.Release()
		return nil, fmt.Errorf("reading state: %w", err)
	}
	if s.Feeds == nil {
		s.Feeds = make(map[string]*feedState)
	}
	return s, nil
}

func (s *state) feed(chat, url string) *feedState {
	key := chat + " " + url
	fs, ok := s.Feeds[key]
	if !ok {
		fs = new(feedState)
		s.Feeds[key] = fs
	}
	if fs.seen == nil {
		fs.seen = set.Of(fs.Sent...)
	}
	return fs
}

func (s *state) save() error {
	return atomicio.WriteJSON(s.path, s, 0o600)
}

func (s *state) close() error { return s.lock.Release() }

func entryID(item *gofeed.Item) string { return cmp.Or(item.GUID, item.Link) }

func (fs *feedState) has(item *gofeed.Item) bool { return fs.seen.Has(entryID(item)) }

func (fs *feedState) remember(item *gofeed.Item) {
	id := entryID(item)
	if fs.seen.Has(id) {
		return
	}
	fs.seen.Add(id)
	fs.Sent = append(fs.Sent, id)
	if over := len(fs.Sent) - maxRemembered; over > 0 {
		fs.Sent = fs.Sent[over:]
	}
}
