////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

// Package markdown provides the default document parser. It runs the goldmark
// CommonMark engine over the raw message text and maps the resulting tree
// onto the [blocks] model. Inline markup is left in the text verbatim.
package markdown

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"gitlab.com/elixxir/postview/blocks"
)

// Compile-time check that Parse satisfies the parser contract.
var _ blocks.Parser = Parse

var engine = goldmark.New()

// Parse converts raw message text into its block document. It is total: any
// input, including malformed markup, yields a document, and empty input
// yields an empty document. It is safe for concurrent use.
func Parse(raw string) blocks.Blocks {
	source := []byte(raw)
	root := engine.Parser().Parse(text.NewReader(source))
	return convertChildren(root, source)
}

// convertChildren maps the block-level children of the given node onto the
// blocks model, skipping nodes that carry no renderable content.
func convertChildren(node ast.Node, source []byte) blocks.Blocks {
	out := make(blocks.Blocks, 0, node.ChildCount())
	for child := node.FirstChild(); child != nil; child = child.NextSibling() {
		if b, ok := convertNode(child, source); ok {
			out = append(out, b)
		}
	}
	return out
}

// convertNode maps a single block-level node. The second return is false when
// the node produced nothing worth keeping, such as an empty paragraph.
func convertNode(node ast.Node, source []byte) (blocks.Block, bool) {
	switch n := node.(type) {
	case *ast.Paragraph:
		return blocks.Paragraph{Text: lineText(n, source)}, true
	case *ast.TextBlock:
		// Tight list items hold their text in a TextBlock rather than a
		// paragraph.
		return blocks.Paragraph{Text: lineText(n, source)}, true
	case *ast.Heading:
		return blocks.Heading{Level: n.Level, Text: lineText(n, source)}, true
	case *ast.FencedCodeBlock:
		return blocks.CodeBlock{
			Info: string(n.Language(source)),
			Text: codeText(n, source),
		}, true
	case *ast.CodeBlock:
		return blocks.CodeBlock{Text: codeText(n, source)}, true
	case *ast.Blockquote:
		return blocks.Blockquote{Blocks: convertChildren(n, source)}, true
	case *ast.List:
		items := make([]blocks.Blocks, 0, n.ChildCount())
		for item := n.FirstChild(); item != nil; item = item.NextSibling() {
			items = append(items, convertChildren(item, source))
		}
		return blocks.List{Ordered: n.IsOrdered(), Items: items}, true
	case *ast.ThematicBreak:
		return blocks.Rule{}, true
	default:
		// Anything unrecognised, such as an HTML block, degrades to a plain
		// paragraph of its raw source lines.
		if raw := lineText(node, source); raw != "" {
			return blocks.Paragraph{Text: raw}, true
		}
		return nil, false
	}
}

// lineText joins the raw source lines of a node, dropping the trailing
// newline. Inline markup in the lines is preserved as written.
func lineText(node ast.Node, source []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimRight(sb.String(), "\n")
}

// codeText joins the raw body lines of a code block, keeping interior
// newlines and dropping the final one.
func codeText(node ast.Node, source []byte) string {
	var sb strings.Builder
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		sb.Write(seg.Value(source))
	}
	return strings.TrimSuffix(sb.String(), "\n")
}
