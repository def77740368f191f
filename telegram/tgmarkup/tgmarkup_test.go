// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

package tgmarkup

import (
	"encoding/json"
	"testing"

	"go.astrophena.name/tgapi/internal/testutil"
	"go.astrophena.name/tgapi/telegram"
)

func TestFromMarkdown(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		in   string
		want Message
	}{
		"empty": {
			in:   "",
			want: Message{},
		},
		"plain": {
			in:   "Hello, world!",
			want: Message{Text: "Hello, world!"},
		},
		"bold": {
			in: "Hello, **world**!",
			want: Message{
				Text: "Hello, world!",
				Entities: []telegram.MessageEntity{
					{Type: telegram.EntityBold, Offset: 7, Length: 5},
				},
			},
		},
		"nested": {
			in: "**bold _italic_**",
			want: Message{
				Text: "bold italic",
				Entities: []telegram.MessageEntity{
					{Type: telegram.EntityBold, Offset: 0, Length: 11},
					{Type: telegram.EntityItalic, Offset: 5, Length: 6},
				},
			},
		},
		"surrogate pairs": {
			in: "😀 **hi**",
			want: Message{
				Text: "😀 hi",
				Entities: []telegram.MessageEntity{
					{Type: telegram.EntityBold, Offset: 3, Length: 2},
				},
			},
		},
		"link": {
			in: "[site](https://example.com)",
			want: Message{
				Text: "site",
				Entities: []telegram.MessageEntity{
					{Type: telegram.EntityTextLink, Offset: 0, Length: 4, URL: "https://example.com"},
				},
			},
		},
		"inline code": {
			in: "run `go test`",
			want: Message{
				Text: "run go test",
				Entities: []telegram.MessageEntity{
					{Type: telegram.EntityCode, Offset: 4, Length: 7},
				},
			},
		},
		"strikethrough": {
			in: "~~gone~~",
			want: Message{
				Text: "gone",
				Entities: []telegram.MessageEntity{
					{Type: telegram.EntityStrikethrough, Offset: 0, Length: 4},
				},
			},
		},
		"code block": {
			in: "```go\nfmt.Println()\n```",
			want: Message{
				Text: "fmt.Println()",
				Entities: []telegram.MessageEntity{
					{Type: telegram.EntityPre, Offset: 0, Length: 13, Language: "go"},
				},
			},
		},
		"heading and paragraph": {
			in: "# Title\n\nBody",
			want: Message{
				Text: "Title\n\nBody",
				Entities: []telegram.MessageEntity{
					{Type: telegram.EntityBold, Offset: 0, Length: 5},
				},
			},
		},
		"quote": {
			in: "> quoted",
			want: Message{
				Text: "quoted",
				Entities: []telegram.MessageEntity{
					{Type: telegram.EntityBlockquote, Offset: 0, Length: 6},
				},
			},
		},
		"bullet list": {
			in:   "- one\n- two",
			want: Message{Text: "• one\n• two"},
		},
		"ordered list": {
			in:   "3. three\n4. four",
			want: Message{Text: "3. three\n4. four"},
		},
		"thematic break": {
			in:   "above\n\n---\n\nbelow",
			want: Message{Text: "above\n\n⸻\n\nbelow"},
		},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			testutil.AssertEqual(t, FromMarkdown(tc.in), tc.want)
		})
	}
}

func TestMessageParams(t *testing.T) {
	t.Parallel()

	p := FromMarkdown("*hi*").Params(telegram.ID(-100))
	b, err := json.Marshal(p)
	if err != nil {
		t.Fatal(err)
	}
	testutil.AssertEqual(t, string(b), `{"chat_id":-100,"text":"hi","entities":[{"type":"italic","offset":0,"length":2}]}`)
}
