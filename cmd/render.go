////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/quick"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gitlab.com/elixxir/postview/blocks"
	"gitlab.com/elixxir/postview/markdown"
	"gitlab.com/elixxir/postview/message"
)

// renderCmd converts raw posts and pretty-prints them for a terminal instead
// of dumping JSON.
var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render converted posts as styled terminal text",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initLog(viper.GetUint(logLevelFlag), viper.GetString(logFlag))

		rawPosts, _ := readPosts(viper.GetString(inputFlag))
		conv := message.NewConverter(markdown.Parse)
		color := viper.GetBool(colorFlag)

		for _, p := range rawPosts {
			fmt.Print(renderPost(conv.Convert(p, p.RootID), color))
		}
	},
}

// renderPost formats one converted post: a header line with the timestamp,
// author, and any state markers, followed by the indented body.
func renderPost(cp *message.ClientPost, color bool) string {
	var sb strings.Builder

	author := string(cp.AuthorID)
	if cp.UsernameOverride != "" {
		author = cp.UsernameOverride
	}
	if author == "" {
		author = "(unknown)"
	}

	sb.WriteString(cp.CreatedAt.Format("2006-01-02 15:04:05"))
	sb.WriteString(" " + author)
	if cp.Original.Props.IsFromWebhook() {
		sb.WriteString(" [bot]")
	}
	if cp.Type != message.NormalPost {
		sb.WriteString(" [" + cp.Type.String() + "]")
	}
	if cp.Pending {
		sb.WriteString(" (pending)")
	}
	if cp.Deleted {
		sb.WriteString(" (deleted)")
	}
	sb.WriteString("\n")

	sb.WriteString(renderBlocks(cp.Body, "    ", color))
	return sb.String()
}

// renderBlocks flattens a block document into prefixed terminal lines.
// Quoted content nests by extending the prefix.
func renderBlocks(bs blocks.Blocks, prefix string, color bool) string {
	var sb strings.Builder

	for _, b := range bs {
		switch t := b.(type) {
		case blocks.Paragraph:
			writePrefixed(&sb, t.Text, prefix)
		case blocks.Heading:
			writePrefixed(&sb, strings.Repeat("#", t.Level)+" "+t.Text, prefix)
		case blocks.CodeBlock:
			code := t.Text
			if color {
				code = highlightCode(t.Info, code)
			}
			writePrefixed(&sb, strings.TrimRight(code, "\n"), prefix+"  | ")
		case blocks.Blockquote:
			sb.WriteString(renderBlocks(t.Blocks, prefix+"> ", color))
		case blocks.List:
			for i, item := range t.Items {
				marker := "- "
				if t.Ordered {
					marker = strconv.Itoa(i+1) + ". "
				}
				cont := strings.Repeat(" ", len(marker))
				itemText := renderBlocks(item, prefix+cont, color)
				if itemText == "" {
					continue
				}
				// Hang the marker on the item's first line.
				sb.WriteString(
					prefix + marker + strings.TrimPrefix(itemText, prefix+cont))
			}
		case blocks.Rule:
			writePrefixed(&sb, "---", prefix)
		}
	}

	return sb.String()
}

// writePrefixed writes every line of text with the prefix prepended.
func writePrefixed(sb *strings.Builder, text, prefix string) {
	for _, line := range strings.Split(text, "\n") {
		sb.WriteString(prefix + line + "\n")
	}
}

// highlightCode styles a code listing with ANSI colors, keyed by the fence
// info string. Unknown languages fall back to chroma's plaintext lexer, and
// any highlighting failure falls back to the unstyled listing.
func highlightCode(info, code string) string {
	lexer := info
	if lexer == "" {
		lexer = "plaintext"
	}

	var sb strings.Builder
	if err := quick.Highlight(&sb, code, lexer, "terminal256", "monokai"); err != nil {
		return code
	}
	return sb.String()
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().Bool(colorFlag, true,
		"Highlight code listings with ANSI colors")
	viper.BindPFlag(colorFlag, renderCmd.Flags().Lookup(colorFlag))
}
