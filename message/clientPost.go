////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

// Package message turns raw server posts into the client-internal view the
// rendering layers consume. The conversion pipeline classifies a post,
// undoes transport formatting, parses the text into a block document, and
// folds attachment content in after the primary body.
package message

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	jww "github.com/spf13/jwalterweatherman"

	"gitlab.com/elixxir/postview/blocks"
	"gitlab.com/elixxir/postview/emoji"
	"gitlab.com/elixxir/postview/post"
	"gitlab.com/xx_network/primitives/netTime"
)

// ClientPost is the client-internal view of a single server post. It owns
// its body, its attachment list, its reaction tally, and its copy of the
// original raw post; nothing here is shared with other posts.
//
// The body already has any special-kind formatting removed and any
// attachment blocks appended after the primary text. The kind is fixed at
// conversion time. Reactions, deletion, the pending transition, and the
// attachment list are mutated by whoever owns the post after conversion.
type ClientPost struct {
	Body             blocks.Blocks  `json:"body"`
	AuthorID         post.UserID    `json:"authorId,omitempty"`
	UsernameOverride string         `json:"usernameOverride,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	Type             PostType       `json:"type"`
	Pending          bool           `json:"pending"`
	Deleted          bool           `json:"deleted"`
	Attachments      []Attachment   `json:"attachments"`
	ReplyTo          post.PostID    `json:"replyTo,omitempty"`
	ID               post.PostID    `json:"id"`
	ChannelID        post.ChannelID `json:"channelId"`
	Reactions        map[string]int `json:"reactions"`
	Original         post.Post      `json:"originalPost"`
}

// Converter builds client posts from raw server posts. The zero value is not
// usable; construct one with NewConverter.
type Converter struct {
	parse blocks.Parser
}

// NewConverter returns a Converter that parses message text with the given
// parser. A nil parser is a programmer error and panics.
func NewConverter(parse blocks.Parser) *Converter {
	if parse == nil {
		jww.FATAL.Panicf("[PV] Cannot construct a converter without a parser")
	}

	return &Converter{parse: parse}
}

// Convert builds the client view of a raw post, threading it under replyTo
// when one is supplied. The body is the parsed, normalized message text
// followed by one quoted block per attachment record, in record order.
//
// Convert is total over well-formed posts: missing optional fields degrade
// to their absent values and malformed markup renders as plain text. A nil
// post or a post without an ID is a contract violation and panics. Distinct
// posts may be converted concurrently.
func (c *Converter) Convert(p *post.Post, replyTo post.PostID) *ClientPost {
	if p == nil {
		jww.FATAL.Panicf("[PV] Cannot convert a nil post")
	}
	if p.ID == "" {
		jww.FATAL.Panicf(
			"[PV] Cannot convert a post with no ID (channel %q)", p.ChannelID)
	}

	kind := Classify(p)
	if kind == NormalPost && p.IsSystem() {
		jww.WARN.Printf("[PV] Post %s carries unhandled system type %q; "+
			"treating it as a normal post", p.ID, p.Type)
	}

	body := c.parse(Normalize(kind, p.Message))
	body = append(body, c.RenderAttachments(p)...)

	var usernameOverride string
	if p.Props.OverrideUsername != nil {
		usernameOverride = *p.Props.OverrideUsername
	}

	return &ClientPost{
		Body:             body,
		AuthorID:         p.UserID,
		UsernameOverride: usernameOverride,
		CreatedAt:        p.CreatedAt(),
		Type:             kind,
		Pending:          false,
		Deleted:          false,
		Attachments:      []Attachment{},
		ReplyTo:          replyTo,
		ID:               p.ID,
		ChannelID:        p.ChannelID,
		Reactions:        make(map[string]int),
		Original:         *p.Clone(),
	}
}

// NewPendingPost synthesizes the local echo of a message the user has sent
// but the server has not yet acknowledged. The body goes through the same
// pipeline a delivered post's would, so the echo renders identically to the
// eventual server copy.
func (c *Converter) NewPendingPost(channelID post.ChannelID,
	authorID post.UserID, text string) *ClientPost {
	pendingID := uuid.New().String()
	raw := post.Post{
		ID:            post.PostID(pendingID),
		CreateAt:      netTime.Now().UnixMilli(),
		UserID:        authorID,
		ChannelID:     channelID,
		Message:       text,
		PendingPostID: pendingID,
	}

	cp := c.Convert(&raw, "")
	cp.Pending = true
	return cp
}

// React adds one to the post's tally for the given reaction. The reaction
// may be a native emoji or a known alias; it is stored under its native
// form. Returns emoji.InvalidReaction for anything unresolvable.
func (cp *ClientPost) React(reaction string) error {
	native, err := emoji.Resolve(reaction)
	if err != nil {
		return err
	}

	if cp.Reactions == nil {
		cp.Reactions = make(map[string]int)
	}
	cp.Reactions[native]++
	return nil
}

// Unreact removes one from the post's tally for the given reaction, dropping
// the entry when it reaches zero. Removing a reaction that was never added
// is a no-op.
func (cp *ClientPost) Unreact(reaction string) error {
	native, err := emoji.Resolve(reaction)
	if err != nil {
		return err
	}

	if count := cp.Reactions[native]; count > 1 {
		cp.Reactions[native] = count - 1
	} else {
		delete(cp.Reactions, native)
	}
	return nil
}

// AddAttachment appends a validated attachment record to the post.
func (cp *ClientPost) AddAttachment(a Attachment) error {
	if err := validate.Struct(a); err != nil {
		return errors.Wrap(err, "invalid attachment")
	}

	cp.Attachments = append(cp.Attachments, a)
	return nil
}
