////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package message

import "testing"

// Tests the normalization table: emotes lose exactly one asterisk from each
// end, a bare "*" survives unchanged, and every other kind passes through.
func TestNormalize(t *testing.T) {
	tests := []struct {
		kind     PostType
		text     string
		expected string
	}{
		{Emote, "*foo*", "foo"},
		{Emote, "*waves to everyone*", "waves to everyone"},
		{Emote, "**", ""},
		{Emote, "*", "*"},
		{Emote, "", ""},
		{Emote, "*unterminated", "*unterminated"},
		{Emote, "unstarted*", "unstarted*"},
		{Emote, "no stars at all", "no stars at all"},
		{Emote, "*inner * stays*", "inner * stays"},
		{NormalPost, "*foo*", "*foo*"},
		{JoinPost, "*foo*", "*foo*"},
		{LeavePost, "*foo*", "*foo*"},
		{TopicChangePost, "*foo*", "*foo*"},
	}

	for i, tt := range tests {
		out := Normalize(tt.kind, tt.text)
		if out != tt.expected {
			t.Errorf("Incorrect normalization of %q as %s (%d)."+
				"\nexpected: %q\nreceived: %q",
				tt.text, tt.kind, i, tt.expected, out)
		}
	}
}

// Tests the normalization contract: when the text changes at all, the
// original is exactly the result wrapped in one asterisk on each side, so
// interior content is untouched and the length shrinks by exactly two.
func TestNormalize_Contract(t *testing.T) {
	inputs := []string{
		"*foo*", "*", "**", "***", "*a*b*", "plain", "", "*x", "x*",
	}

	for _, in := range inputs {
		out := Normalize(Emote, in)
		if out == in {
			continue
		}
		if "*"+out+"*" != in {
			t.Errorf("Normalization of %q modified more than the wrapping: %q",
				in, out)
		}
	}
}
