////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package message

import (
	"strconv"
	"strings"

	"gitlab.com/elixxir/postview/post"
)

// PostType is the semantic kind of a client post. Every post gets exactly
// one kind at conversion time; re-classification requires re-conversion.
type PostType uint32

const (
	// NormalPost is a plain user message.
	NormalPost PostType = 0

	// Emote is an action-style message, sent by the user in the third person.
	Emote PostType = 1

	// JoinPost announces a user joining the channel.
	JoinPost PostType = 2

	// LeavePost announces a user leaving the channel.
	LeavePost PostType = 3

	// TopicChangePost announces a change to the channel topic.
	TopicChangePost PostType = 4
)

// String returns a human-readable version of [PostType], used for debugging
// and logging. This function adheres to the [fmt.Stringer] interface.
func (pt PostType) String() string {
	switch pt {
	case NormalPost:
		return "NormalPost"
	case Emote:
		return "Emote"
	case JoinPost:
		return "JoinPost"
	case LeavePost:
		return "LeavePost"
	case TopicChangePost:
		return "TopicChangePost"
	default:
		return "Unknown PostType " + strconv.Itoa(int(pt))
	}
}

// classificationRule pairs a predicate over a raw post with the kind it
// assigns. The name identifies the rule in tests and diagnostics.
type classificationRule struct {
	name    string
	matches func(p *post.Post) bool
	result  PostType
}

// classificationRules is evaluated in order and the first match wins. The
// emote rule runs before the transport tag rules, so an action-formatted
// post keeps its emote kind even when a system tag is also present.
var classificationRules = []classificationRule{
	{"emote", isEmote, Emote},
	{"join", hasTypeTag(post.TypeJoinChannel), JoinPost},
	{"leave", hasTypeTag(post.TypeLeaveChannel), LeavePost},
	{"topicChange", hasTypeTag(post.TypeHeaderChange), TopicChangePost},
}

// Classify determines the semantic kind of a raw post. Classification is
// total and deterministic: a post matching no rule is a normal message.
func Classify(p *post.Post) PostType {
	for _, rule := range classificationRules {
		if rule.matches(p) {
			return rule.result
		}
	}

	return NormalPost
}

// isEmote reports whether the post uses the action command convention: the
// icon override property present but exactly empty, and a message of at
// least two characters wrapped in asterisks.
func isEmote(p *post.Post) bool {
	if p.Props.OverrideIconURL == nil || *p.Props.OverrideIconURL != "" {
		return false
	}

	return len(p.Message) >= 2 &&
		strings.HasPrefix(p.Message, "*") &&
		strings.HasSuffix(p.Message, "*")
}

func hasTypeTag(tag string) func(p *post.Post) bool {
	return func(p *post.Post) bool { return p.Type == tag }
}
