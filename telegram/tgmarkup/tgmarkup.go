// © 2025 Ilya Mateyko. All rights reserved.
// Use of this source code is governed by the ISC
// license that can be found in the LICENSE.md file.

// Package tgmarkup converts Markdown text to Telegram message entities.
//
// Telegram accepts formatting either as escaped markup with a parse mode or
// as plain text with a list of entities. Entities need no escaping, so
// arbitrary Markdown can be sent safely:
//
//	msg := tgmarkup.FromMarkdown("Hello, **world**!")
//	_, err := telegram.SendMessage.Call(ctx, bot, msg.Params(chatID))
package tgmarkup

import (
	"fmt"
	"slices"
	"strings"
	"sync"
	"unicode/utf16"

	"go.astrophena.name/tgapi/telegram"

	"rsc.io/markdown"
)

// Message is message text with entities for formatting.
type Message struct {
	Text     string                   `json:"text"`
	Entities []telegram.MessageEntity `json:"entities,omitempty"`
}

// Params returns sendMessage parameters that send m to chatID.
func (m Message) Params(chatID telegram.ChatID) telegram.SendMessageParams {
	return telegram.SendMessageParams{
		ChatID:   chatID,
		Text:     m.Text,
		Entities: m.Entities,
	}
}

var parser = sync.OnceValue(func() *markdown.Parser {
	return &markdown.Parser{
		Strikethrough: true,
		AutoLinkText:  true,
	}
})

// FromMarkdown converts Markdown text to a [Message]. Entity offsets and
// lengths are counted in UTF-16 code units, as the Bot API requires.
func FromMarkdown(text string) Message {
	doc := parser().Parse(text)

	var c converter
	for i, b := range doc.Blocks {
		if i > 0 {
			c.write("\n")
		}
		c.block(b)
	}
	return c.message()
}

type converter struct {
	sb       strings.Builder
	n        int // UTF-16 length of sb
	entities []telegram.MessageEntity
}

func (c *converter) write(s string) {
	c.sb.WriteString(s)
	for _, r := range s {
		c.n += utf16.RuneLen(r)
	}
}

// wrap records an entity of type typ covering everything written by f.
func (c *converter) wrap(typ telegram.EntityType, f func(), opts ...func(*telegram.MessageEntity)) {
	idx := len(c.entities)
	c.entities = append(c.entities, telegram.MessageEntity{Type: typ, Offset: c.n})
	f()
	e := &c.entities[idx]
	e.Length = c.n - e.Offset
	if e.Length == 0 {
		c.entities = slices.Delete(c.entities, idx, idx+1)
		return
	}
	for _, opt := range opts {
		opt(e)
	}
}

func (c *converter) message() Message {
	text := strings.TrimRight(c.sb.String(), "\n")
	n := c.n - (len(c.sb.String()) - len(text))

	var entities []telegram.MessageEntity
	for _, e := range c.entities {
		if e.Offset+e.Length > n {
			e.Length = n - e.Offset
		}
		if e.Length > 0 {
			entities = append(entities, e)
		}
	}
	return Message{Text: text, Entities: entities}
}

func (c *converter) block(b markdown.Block) {
	switch b := b.(type) {
	case *markdown.Paragraph:
		c.inlines(b.Text.Inline)
		c.write("\n")
	case *markdown.Text:
		c.inlines(b.Inline)
		c.write("\n")
	case *markdown.Heading:
		c.wrap(telegram.EntityBold, func() { c.inlines(b.Text.Inline) })
		c.write("\n")
	case *markdown.Quote:
		c.wrap(telegram.EntityBlockquote, func() {
			for _, b := range b.Blocks {
				c.block(b)
			}
		})
	case *markdown.CodeBlock:
		c.wrap(telegram.EntityPre, func() {
			c.write(strings.Join(b.Text, "\n"))
		}, func(e *telegram.MessageEntity) {
			e.Language = b.Info
		})
		c.write("\n")
	case *markdown.List:
		ordered := b.Bullet == '.' || b.Bullet == ')'
		for i, item := range b.Items {
			item, ok := item.(*markdown.Item)
			if !ok {
				continue
			}
			if ordered {
				c.write(fmt.Sprintf("%d. ", b.Start+i))
			} else {
				c.write("• ")
			}
			for _, b := range item.Blocks {
				c.block(b)
			}
		}
	case *markdown.HTMLBlock:
		c.write(strings.Join(b.Text, "\n"))
		c.write("\n")
	case *markdown.ThematicBreak:
		c.write("⸻\n")
	}
}

func (c *converter) inlines(inlines markdown.Inlines) {
	for _, i := range inlines {
		c.inline(i)
	}
}

func (c *converter) inline(i markdown.Inline) {
	switch i := i.(type) {
	case *markdown.Plain:
		c.write(i.Text)
	case *markdown.Escaped:
		c.write(i.Text)
	case *markdown.HTMLTag:
		c.write(i.Text)
	case *markdown.Strong:
		c.wrap(telegram.EntityBold, func() { c.inlines(i.Inner) })
	case *markdown.Emph:
		c.wrap(telegram.EntityItalic, func() { c.inlines(i.Inner) })
	case *markdown.Del:
		c.wrap(telegram.EntityStrikethrough, func() { c.inlines(i.Inner) })
	case *markdown.Code:
		c.wrap(telegram.EntityCode, func() { c.write(i.Text) })
	case *markdown.Link:
		c.wrap(telegram.EntityTextLink, func() { c.inlines(i.Inner) }, withURL(i.URL))
	case *markdown.Image:
		c.wrap(telegram.EntityTextLink, func() { c.inlines(i.Inner) }, withURL(i.URL))
	case *markdown.AutoLink:
		typ := telegram.EntityURL
		if strings.HasPrefix(i.URL, "mailto:") {
			typ = telegram.EntityEmail
		}
		c.wrap(typ, func() { c.write(i.Text) })
	case *markdown.SoftBreak, *markdown.HardBreak:
		c.write("\n")
	}
}

func withURL(url string) func(*telegram.MessageEntity) {
	return func(e *telegram.MessageEntity) { e.URL = url }
}
