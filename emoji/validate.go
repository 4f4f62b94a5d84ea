////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import (
	"github.com/forPelevin/gomoji"
	"github.com/pkg/errors"
)

var (
	// InvalidReaction is returned if the passed reaction string is an invalid
	// emoji.
	InvalidReaction = errors.New(
		"The reaction is not valid, it must be a single emoji")

	// InvalidReactionCount is returned if a reaction tally carries a count
	// below one.
	InvalidReactionCount = errors.New(
		"The reaction count is not valid, it must be at least 1")
)

// SupportedEmojis returns a list of emojis that are supported by the backend.
func SupportedEmojis() []gomoji.Emoji {
	return gomoji.AllEmojis()
}

// ValidateReaction checks that the reaction only contains a single emoji.
// Returns InvalidReaction if the emoji is invalid.
func ValidateReaction(reaction string) error {
	emojisList := gomoji.CollectAll(reaction)
	if len(emojisList) < 1 {
		// No emojis found
		return InvalidReaction
	} else if len(emojisList) > 1 {
		// More than one emoji found
		return InvalidReaction
	} else if emojisList[0].Character != reaction {
		// Non-emoji characters found alongside an emoji
		return InvalidReaction
	}

	return nil
}

// ValidateReactionCounts checks a reaction tally as carried on a client post.
// Every key must resolve to a reaction via Resolve and every count must be at
// least one. Returns the first violation found.
func ValidateReactionCounts(reactions map[string]int) error {
	for name, count := range reactions {
		if count < 1 {
			return errors.Wrapf(
				InvalidReactionCount, "reaction %q has count %d", name, count)
		}
		if _, err := Resolve(name); err != nil {
			return errors.Wrapf(err, "reaction %q", name)
		}
	}

	return nil
}
