////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package message

import (
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"gitlab.com/elixxir/postview/blocks"
	"gitlab.com/elixxir/postview/post"
)

var validate = validator.New()

// Attachment is a named link to external content carried by a client post.
// The three fields identify the same file and are always set together; a
// file reference missing any of them is not representable.
type Attachment struct {
	Name   string `json:"name" validate:"required"`
	URL    string `json:"url" validate:"required"`
	FileID string `json:"fileId" validate:"required"`
}

// NewAttachment builds a validated attachment record. All three fields are
// required.
func NewAttachment(name, url, fileID string) (Attachment, error) {
	a := Attachment{Name: name, URL: url, FileID: fileID}
	if err := validate.Struct(a); err != nil {
		return Attachment{}, errors.Wrap(err, "invalid attachment")
	}

	return a, nil
}

// RenderAttachments converts the raw attachment records on a post into
// renderable blocks: one quoted block per record, in the record order, each
// wrapping the record's text parsed ahead of its fallback text. A post with
// no attachment records yields an empty sequence.
//
// This consumes the transport attachment records in the post's properties
// bag, not the [Attachment] entity above; the two are unrelated shapes.
func (c *Converter) RenderAttachments(p *post.Post) blocks.Blocks {
	records := p.Props.Attachments
	rendered := make(blocks.Blocks, 0, len(records))

	for _, record := range records {
		quoted := append(c.parse(record.Text), c.parse(record.Fallback)...)
		rendered = append(rendered, blocks.Quote(quoted))
	}

	return rendered
}
