////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package cmd

// This is a comprehensive list of CLI flag name constants. Organized by
// subcommand, with root level CLI flags at the top of the list. Newly added
// flags for any existing or new subcommands should be listed and organized
// here. Pulling flags using Viper should use the constants defined here.
const (
	//////////////// Root flags ///////////////////////////////////////////////

	// Log flags
	logLevelFlag = "logLevel"
	logFlag      = "log"

	// Input flags
	inputFlag  = "input"
	configFlag = "config"

	// Output flags
	queryFlag = "query"

	// Misc
	profileCPUFlag = "profile-cpu"

	///////////////// Compose subcommand flags ////////////////////////////////
	channelFlag = "channel"
	authorFlag  = "author"
	messageFlag = "message"

	///////////////// Emoji subcommand flags //////////////////////////////////
	resolveFlag  = "resolve"
	validateFlag = "validate"
	listFlag     = "list"

	///////////////// Render subcommand flags /////////////////////////////////
	colorFlag = "color"
)
