////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

// Package blocks defines the block-level document model that message bodies
// take everywhere downstream of parsing. A body is an ordered [Blocks]
// sequence; renderers consume it with a type switch over the closed set of
// block variants defined here.
package blocks

import (
	"encoding/json"
	"strings"
)

// Parser converts raw message text into its block-level document. It must be
// a pure function with no failure mode: malformed markup degrades to plain
// paragraph rendering rather than erroring. The type exists so that
// implementations can be injected and mocked for testing.
type Parser func(text string) Blocks

// Blocks is an ordered sequence of block-level document nodes.
type Blocks []Block

// Block is a single block-level document node. The set of implementations is
// closed; consumers dispatch on the concrete type.
type Block interface {
	isBlock()
}

// Paragraph is a run of inline text. Inline markup is carried verbatim; it is
// the renderer's job to style it.
type Paragraph struct {
	Text string `json:"text"`
}

// Heading is a section heading with a level of 1 or greater.
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// CodeBlock is a fenced or indented code listing. Info carries the fence info
// string (usually a language hint) and may be empty.
type CodeBlock struct {
	Info string `json:"info"`
	Text string `json:"text"`
}

// Blockquote is a quoted group of blocks.
type Blockquote struct {
	Blocks Blocks `json:"blocks"`
}

// List is an ordered or unordered list. Each item is itself a block sequence.
type List struct {
	Ordered bool     `json:"ordered"`
	Items   []Blocks `json:"items"`
}

// Rule is a thematic break.
type Rule struct{}

func (Paragraph) isBlock()  {}
func (Heading) isBlock()    {}
func (CodeBlock) isBlock()  {}
func (Blockquote) isBlock() {}
func (List) isBlock()       {}
func (Rule) isBlock()       {}

// Quote wraps a block sequence in a single Blockquote.
func Quote(bs Blocks) Block {
	return Blockquote{Blocks: bs}
}

// PlainText flattens the document into a single newline-joined string. It is
// a best-effort projection used for previews and logging, not for rendering.
func (bs Blocks) PlainText() string {
	parts := make([]string, 0, len(bs))
	for _, b := range bs {
		switch t := b.(type) {
		case Paragraph:
			parts = append(parts, t.Text)
		case Heading:
			parts = append(parts, t.Text)
		case CodeBlock:
			parts = append(parts, t.Text)
		case Blockquote:
			parts = append(parts, t.Blocks.PlainText())
		case List:
			for _, item := range t.Items {
				parts = append(parts, item.PlainText())
			}
		case Rule:
		}
	}
	return strings.Join(parts, "\n")
}

// The block variants marshal with an explicit type tag so that emitted
// documents stay distinguishable once the Go types are gone.

// MarshalJSON adheres to the [json.Marshaler] interface.
func (p Paragraph) MarshalJSON() ([]byte, error) {
	type alias Paragraph
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"paragraph", alias(p)})
}

// MarshalJSON adheres to the [json.Marshaler] interface.
func (h Heading) MarshalJSON() ([]byte, error) {
	type alias Heading
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"heading", alias(h)})
}

// MarshalJSON adheres to the [json.Marshaler] interface.
func (c CodeBlock) MarshalJSON() ([]byte, error) {
	type alias CodeBlock
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"codeBlock", alias(c)})
}

// MarshalJSON adheres to the [json.Marshaler] interface.
func (b Blockquote) MarshalJSON() ([]byte, error) {
	type alias Blockquote
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"blockquote", alias(b)})
}

// MarshalJSON adheres to the [json.Marshaler] interface.
func (l List) MarshalJSON() ([]byte, error) {
	type alias List
	return json.Marshal(struct {
		Type string `json:"type"`
		alias
	}{"list", alias(l)})
}

// MarshalJSON adheres to the [json.Marshaler] interface.
func (r Rule) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type string `json:"type"`
	}{"rule"})
}
