////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"gitlab.com/elixxir/postview/markdown"
	"gitlab.com/elixxir/postview/message"
	"gitlab.com/elixxir/postview/post"
)

// composeCmd synthesizes the pending local echo of a message that has not
// been sent yet and prints it as JSON.
var composeCmd = &cobra.Command{
	Use:   "compose",
	Short: "Synthesize the pending local echo of an unsent message",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initLog(viper.GetUint(logLevelFlag), viper.GetString(logFlag))

		channelID := post.ChannelID(viper.GetString(channelFlag))
		authorID := post.UserID(viper.GetString(authorFlag))
		text := viper.GetString(messageFlag)
		if channelID == "" || text == "" {
			jww.FATAL.Panicf("[PV] compose requires --%s and --%s",
				channelFlag, messageFlag)
		}

		conv := message.NewConverter(markdown.Parse)
		cp := conv.NewPendingPost(channelID, authorID, text)

		out, err := json.MarshalIndent(cp, "", "  ")
		if err != nil {
			jww.FATAL.Panicf("[PV] Failed to marshal pending post: %+v", err)
		}
		fmt.Printf("%s\n", out)
	},
}

func init() {
	rootCmd.AddCommand(composeCmd)

	composeCmd.Flags().String(channelFlag, "",
		"ID of the channel the message is composed in")
	viper.BindPFlag(channelFlag, composeCmd.Flags().Lookup(channelFlag))

	composeCmd.Flags().String(authorFlag, "",
		"ID of the composing user")
	viper.BindPFlag(authorFlag, composeCmd.Flags().Lookup(authorFlag))

	composeCmd.Flags().StringP(messageFlag, "m", "",
		"Message text to compose")
	viper.BindPFlag(messageFlag, composeCmd.Flags().Lookup(messageFlag))
}
