////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package post

import (
	"testing"
	"time"
)

// Tests that FromJSON decodes a realistic wire payload and, in particular,
// keeps a present-but-empty properties key distinguishable from an absent
// one.
func TestFromJSON(t *testing.T) {
	data := []byte(`{
		"id": "p8f2", "create_at": 1662738429000, "update_at": 1662738429000,
		"edit_at": 0, "delete_at": 0, "user_id": "u41", "channel_id": "c7",
		"message": "*waves*", "type": "",
		"props": {
			"override_icon_url": "",
			"from_webhook": "true",
			"attachments": [{"id": 1, "fallback": "fb", "text": "body"}]
		}
	}`)

	p, err := FromJSON(data)
	if err != nil {
		t.Fatalf("Failed to decode post: %+v", err)
	}

	if p.ID != "p8f2" || p.ChannelID != "c7" || p.UserID != "u41" {
		t.Errorf("Identifiers did not match expected: %+v", p)
	}
	if p.Message != "*waves*" {
		t.Errorf("Message did not match expected."+
			"\nexpected: %q\nreceived: %q", "*waves*", p.Message)
	}
	if p.Props.OverrideIconURL == nil || *p.Props.OverrideIconURL != "" {
		t.Errorf("Present-but-empty override_icon_url decoded wrong: %v",
			p.Props.OverrideIconURL)
	}
	if p.Props.OverrideUsername != nil {
		t.Errorf("Absent override_username decoded non-nil: %v",
			*p.Props.OverrideUsername)
	}
	if !p.Props.IsFromWebhook() {
		t.Error("Webhook flag did not decode as set.")
	}
	if len(p.Props.Attachments) != 1 || p.Props.Attachments[0].Text != "body" ||
		p.Props.Attachments[0].Fallback != "fb" {
		t.Errorf("Attachments did not decode as expected: %+v",
			p.Props.Attachments)
	}
}

// Tests that FromJSON returns an error on malformed input.
func TestFromJSON_Error(t *testing.T) {
	if _, err := FromJSON([]byte(`{"id":`)); err == nil {
		t.Error("Expected error decoding malformed payload.")
	}
}

// Tests that Validate rejects posts missing required identifiers and accepts
// complete ones.
func TestPost_Validate(t *testing.T) {
	p := &Post{ID: "p1", ChannelID: "c1"}
	if err := p.Validate(); err != nil {
		t.Errorf("Complete post failed validation: %+v", err)
	}

	if err := (&Post{ChannelID: "c1"}).Validate(); err == nil {
		t.Error("Post without an ID passed validation.")
	}
	if err := (&Post{ID: "p1"}).Validate(); err == nil {
		t.Error("Post without a channel ID passed validation.")
	}
}

// Tests that CreatedAt converts the millisecond wire timestamp.
func TestPost_CreatedAt(t *testing.T) {
	p := &Post{CreateAt: 1662738429500}
	expected := time.UnixMilli(1662738429500)
	if !p.CreatedAt().Equal(expected) {
		t.Errorf("Creation time did not match expected."+
			"\nexpected: %s\nreceived: %s", expected, p.CreatedAt())
	}
}

// Tests the system and reply predicates.
func TestPost_IsSystemIsReply(t *testing.T) {
	p := &Post{Type: TypeJoinChannel, RootID: "p0"}
	if !p.IsSystem() || !p.IsReply() {
		t.Errorf("Predicates did not match expected for %+v", p)
	}

	p = &Post{}
	if p.IsSystem() || p.IsReply() {
		t.Errorf("Predicates did not match expected for %+v", p)
	}
}

// Tests that Clone produces a deep copy that is unaffected by later mutation
// of the original, and that a nil post clones to nil.
func TestPost_Clone(t *testing.T) {
	p := &Post{
		ID:        "p1",
		ChannelID: "c1",
		Message:   "hi",
		Props: Props{
			OverrideUsername: sp("deploybot"),
			OverrideIconURL:  sp(""),
			Attachments:      []Attachment{{Text: "a"}},
		},
	}

	clone := p.Clone()
	*p.Props.OverrideUsername = "changed"
	*p.Props.OverrideIconURL = "changed"
	p.Props.Attachments[0].Text = "changed"
	p.Message = "changed"

	if clone.Message != "hi" {
		t.Errorf("Clone shares message with original: %q", clone.Message)
	}
	if *clone.Props.OverrideUsername != "deploybot" {
		t.Errorf("Clone shares override username with original: %q",
			*clone.Props.OverrideUsername)
	}
	if *clone.Props.OverrideIconURL != "" {
		t.Errorf("Clone shares override icon URL with original: %q",
			*clone.Props.OverrideIconURL)
	}
	if clone.Props.Attachments[0].Text != "a" {
		t.Errorf("Clone shares attachments with original: %+v",
			clone.Props.Attachments)
	}

	if (*Post)(nil).Clone() != nil {
		t.Error("Cloning a nil post did not return nil.")
	}
}

func sp(s string) *string { return &s }
