////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package message

import "strings"

// Normalize undoes the transport-level formatting convention for the given
// post kind. Only Emote is special-cased: exactly one leading and one
// trailing asterisk are stripped. The wrapping is re-checked here because
// Normalize may be called independently of Classify, and a bare "*" is too
// short to strip, so it passes through unchanged. All other kinds return the
// text untouched. Interior content is never modified.
func Normalize(kind PostType, text string) string {
	if kind != Emote {
		return text
	}

	if len(text) < 2 ||
		!strings.HasPrefix(text, "*") || !strings.HasSuffix(text, "*") {
		return text
	}

	return text[1 : len(text)-1]
}
