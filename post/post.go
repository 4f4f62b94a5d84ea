////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

// Package post models raw server-delivered posts exactly as the transport
// hands them over. Everything here is wire shape; the client-internal view of
// a post lives in the message package.
package post

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

// Identifier types for the three ID namespaces a post touches. They are
// distinct types so the compiler catches a channel ID passed where a post ID
// belongs.
type (
	// PostID uniquely identifies a post within the server.
	PostID string

	// ChannelID uniquely identifies the channel a post was made in.
	ChannelID string

	// UserID uniquely identifies the author of a post.
	UserID string
)

// Transport-level type tags. A plain user message carries the empty tag;
// server-generated events carry a system_* sentinel.
const (
	TypeDefault      = ""
	TypeJoinChannel  = "system_join_channel"
	TypeLeaveChannel = "system_leave_channel"
	TypeHeaderChange = "system_header_change"
)

// validate does structural validation of wire shapes on arrival.
var validate = validator.New()

// Post is a single raw post as delivered by the server. Timestamps are Unix
// milliseconds, matching the wire encoding.
type Post struct {
	ID            PostID    `json:"id" validate:"required"`
	CreateAt      int64     `json:"create_at"`
	UpdateAt      int64     `json:"update_at"`
	EditAt        int64     `json:"edit_at"`
	DeleteAt      int64     `json:"delete_at"`
	UserID        UserID    `json:"user_id,omitempty"`
	ChannelID     ChannelID `json:"channel_id" validate:"required"`
	RootID        PostID    `json:"root_id,omitempty"`
	Message       string    `json:"message"`
	Type          string    `json:"type,omitempty"`
	PendingPostID string    `json:"pending_post_id,omitempty"`
	Props         Props     `json:"props"`
}

// Props is the per-post properties bag. The pointer fields distinguish a key
// that arrived with an empty value from a key that is absent entirely; that
// distinction is load-bearing for classification.
type Props struct {
	OverrideUsername *string      `json:"override_username,omitempty"`
	OverrideIconURL  *string      `json:"override_icon_url,omitempty"`
	FromWebhook      *string      `json:"from_webhook,omitempty"`
	Attachments      []Attachment `json:"attachments,omitempty"`
}

// Attachment is one rich-content record carried in a post's properties bag.
// Only Text and Fallback feed rendering; the rest is kept for round-tripping.
type Attachment struct {
	ID         int64  `json:"id,omitempty"`
	Fallback   string `json:"fallback,omitempty"`
	Color      string `json:"color,omitempty"`
	Pretext    string `json:"pretext,omitempty"`
	AuthorName string `json:"author_name,omitempty"`
	Title      string `json:"title,omitempty"`
	TitleLink  string `json:"title_link,omitempty"`
	Text       string `json:"text,omitempty"`
	ImageURL   string `json:"image_url,omitempty"`
	Footer     string `json:"footer,omitempty"`
}

// FromJSON decodes a single post from its wire encoding.
func FromJSON(data []byte) (*Post, error) {
	var p Post
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal post")
	}
	return &p, nil
}

// Validate checks that the post carries the identifiers every downstream
// consumer relies on.
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return errors.Wrap(err, "invalid post")
	}
	return nil
}

// CreatedAt returns the post's creation time.
func (p *Post) CreatedAt() time.Time {
	return time.UnixMilli(p.CreateAt)
}

// IsSystem reports whether the post carries a server-generated type tag.
func (p *Post) IsSystem() bool {
	return p.Type != TypeDefault
}

// IsReply reports whether the post is threaded under another post.
func (p *Post) IsReply() bool {
	return p.RootID != ""
}

// Clone returns a deep copy of the post, including its properties bag, so
// the copy can be retained past the lifetime of the original.
func (p *Post) Clone() *Post {
	if p == nil {
		return nil
	}
	clone := *p
	clone.Props = p.Props.clone()
	return &clone
}

// IsFromWebhook reports whether the post was produced by an integration
// rather than a user session.
func (p Props) IsFromWebhook() bool {
	return p.FromWebhook != nil && *p.FromWebhook == "true"
}

func (p Props) clone() Props {
	c := p
	c.OverrideUsername = cloneString(p.OverrideUsername)
	c.OverrideIconURL = cloneString(p.OverrideIconURL)
	c.FromWebhook = cloneString(p.FromWebhook)
	if p.Attachments != nil {
		c.Attachments = make([]Attachment, len(p.Attachments))
		copy(c.Attachments, p.Attachments)
	}
	return c
}

func cloneString(s *string) *string {
	if s == nil {
		return nil
	}
	v := *s
	return &v
}
