// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package telegram

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ChatID identifies a chat either by its numeric identifier or, for public
// channels and supergroups, by username in the format @channelusername.
//
// If both ID and Username are set, ID takes precedence when encoding.
// Encoding a zero ChatID fails, so a required chat_id can't be silently
// sent as 0; optional chat_id fields are tagged omitzero.
type ChatID struct {
	ID       int64
	Username string
}

// ID returns a ChatID for a numeric chat identifier.
func ID(id int64) ChatID { return ChatID{ID: id} }

// Username returns a ChatID for a channel or supergroup username. The leading
// @ is added if missing.
func Username(name string) ChatID {
	if name != "" && !strings.HasPrefix(name, "@") {
		name = "@" + name
	}
	return ChatID{Username: name}
}

// ParseChatID parses s as a numeric chat identifier, falling back to a
// username.
func ParseChatID(s string) (ChatID, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ChatID{}, errors.New("empty chat ID")
	}
	if id, err := strconv.ParseInt(s, 10, 64); err == nil {
		return ID(id), nil
	}
	if strings.ContainsAny(s, " \t\n") {
		return ChatID{}, fmt.Errorf("invalid chat username %q", s)
	}
	return Username(s), nil
}

// IsZero reports whether c identifies no chat.
func (c ChatID) IsZero() bool { return c.ID == 0 && c.Username == "" }

// String returns the form that would be sent to the Bot API.
func (c ChatID) String() string {
	if c.ID != 0 {
		return strconv.FormatInt(c.ID, 10)
	}
	return c.Username
}

// MarshalJSON implements the json.Marshaler interface.
func (c ChatID) MarshalJSON() ([]byte, error) {
	switch {
	case c.ID != 0:
		return strconv.AppendInt(nil, c.ID, 10), nil
	case c.Username != "":
		return json.Marshal(c.Username)
	}
	return nil, errors.New("telegram: empty chat ID")
}

// UnmarshalJSON implements the json.Unmarshaler interface. It accepts a
// number or a string; a string holding a number decodes to the numeric form.
func (c *ChatID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*c = ChatID{}
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		if id, err := strconv.ParseInt(s, 10, 64); err == nil {
			*c = ID(id)
			return nil
		}
		*c = ChatID{Username: s}
		return nil
	}

	id, err := strconv.ParseInt(string(b), 10, 64)
	if err != nil {
		return fmt.Errorf("telegram: chat ID must be an integer or a string, got %s", b)
	}
	*c = ID(id)
	return nil
}
