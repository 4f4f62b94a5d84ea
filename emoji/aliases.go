////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package emoji

import "strings"

// aliases maps the reaction names in common use by chat servers and their
// integrations to the native emoji they stand for. Keys are bare names;
// surrounding colons are stripped before lookup.
var aliases = map[string]string{
	"+1":               "👍",
	"thumbsup":         "👍",
	"-1":               "👎",
	"thumbsdown":       "👎",
	"100":              "💯",
	"heart":            "❤️",
	"smile":            "😄",
	"grinning":         "😀",
	"joy":              "😂",
	"laughing":         "😆",
	"tada":             "🎉",
	"fire":             "🔥",
	"eyes":             "👀",
	"clap":             "👏",
	"wave":             "👋",
	"thinking_face":    "🤔",
	"rocket":           "🚀",
	"white_check_mark": "✅",
	"x":                "❌",
	"question":         "❓",
	"ok_hand":          "👌",
	"pray":             "🙏",
	"sob":              "😭",
	"cry":              "😢",
}

// Resolve maps a reaction name, with or without surrounding colons, to the
// native emoji it denotes. A string that is already a valid single emoji
// resolves to itself. Returns InvalidReaction when the name is neither a
// known alias nor an emoji.
func Resolve(name string) (string, error) {
	if native, exists := aliases[strings.Trim(name, ":")]; exists {
		return native, nil
	}

	if err := ValidateReaction(name); err != nil {
		return "", err
	}

	return name, nil
}
