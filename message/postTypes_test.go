////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package message

import (
	"testing"

	"gitlab.com/elixxir/postview/post"
)

// Consistency test of PostType.String.
func TestPostType_String(t *testing.T) {
	tests := map[PostType]string{
		NormalPost:      "NormalPost",
		Emote:           "Emote",
		JoinPost:        "JoinPost",
		LeavePost:       "LeavePost",
		TopicChangePost: "TopicChangePost",
		PostType(32):    "Unknown PostType 32",
	}

	for pt, expected := range tests {
		if pt.String() != expected {
			t.Errorf("Incorrect string for PostType %d."+
				"\nexpected: %s\nreceived: %s", pt, expected, pt.String())
		}
	}
}

// Tests that Classify assigns the expected kind across the classification
// surface, including the tie between the emote text pattern and a transport
// tag, which the emote rule must win.
func TestClassify(t *testing.T) {
	tests := []struct {
		label    string
		p        post.Post
		expected PostType
	}{
		{"plain message",
			post.Post{Message: "hello"}, NormalPost},
		{"emote",
			post.Post{Message: "*waves*",
				Props: post.Props{OverrideIconURL: sp("")}}, Emote},
		{"emote beats transport tag",
			post.Post{Message: "*waves*", Type: post.TypeJoinChannel,
				Props: post.Props{OverrideIconURL: sp("")}}, Emote},
		{"emote text but icon override absent",
			post.Post{Message: "*waves*"}, NormalPost},
		{"emote text but icon override non-empty",
			post.Post{Message: "*waves*",
				Props: post.Props{OverrideIconURL: sp("http://x/icon.png")}},
			NormalPost},
		{"icon override empty but no star wrapping",
			post.Post{Message: "waves",
				Props: post.Props{OverrideIconURL: sp("")}}, NormalPost},
		{"single star is too short for an emote",
			post.Post{Message: "*",
				Props: post.Props{OverrideIconURL: sp("")}}, NormalPost},
		{"two stars is the minimum emote",
			post.Post{Message: "**",
				Props: post.Props{OverrideIconURL: sp("")}}, Emote},
		{"join tag",
			post.Post{Message: "u joined the channel",
				Type: post.TypeJoinChannel}, JoinPost},
		{"leave tag",
			post.Post{Message: "u left the channel",
				Type: post.TypeLeaveChannel}, LeavePost},
		{"topic change tag",
			post.Post{Message: "u updated the channel header",
				Type: post.TypeHeaderChange}, TopicChangePost},
		{"unhandled system tag",
			post.Post{Message: "u pinned a post",
				Type: "system_pinned"}, NormalPost},
	}

	for _, tt := range tests {
		if kind := Classify(&tt.p); kind != tt.expected {
			t.Errorf("Incorrect kind for %s."+
				"\nexpected: %s\nreceived: %s", tt.label, tt.expected, kind)
		}
	}
}

// Tests that the rule list keeps the emote rule ahead of the transport tag
// rules. The precedence is load-bearing, not incidental.
func TestClassificationRules_Order(t *testing.T) {
	expected := []string{"emote", "join", "leave", "topicChange"}

	if len(classificationRules) != len(expected) {
		t.Fatalf("Incorrect number of rules."+
			"\nexpected: %d\nreceived: %d",
			len(expected), len(classificationRules))
	}
	for i, rule := range classificationRules {
		if rule.name != expected[i] {
			t.Errorf("Incorrect rule at position %d."+
				"\nexpected: %s\nreceived: %s", i, expected[i], rule.name)
		}
	}
}

func sp(s string) *string { return &s }
