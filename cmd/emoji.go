////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"

	"gitlab.com/elixxir/postview/emoji"
)

// emojiCmd provides reaction utilities: alias resolution, validation of a
// single reaction, and a dump of the supported emoji set.
var emojiCmd = &cobra.Command{
	Use:   "emoji",
	Short: "Resolve and validate reaction emojis",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initLog(viper.GetUint(logLevelFlag), viper.GetString(logFlag))

		if name := viper.GetString(resolveFlag); name != "" {
			native, err := emoji.Resolve(name)
			if err != nil {
				jww.FATAL.Panicf("[PV] Failed to resolve %q: %+v", name, err)
			}
			fmt.Printf("%s\n", native)
			return
		}

		if reaction := viper.GetString(validateFlag); reaction != "" {
			if err := emoji.ValidateReaction(reaction); err != nil {
				fmt.Printf("invalid: %s\n", err)
			} else {
				fmt.Printf("valid\n")
			}
			return
		}

		if viper.GetBool(listFlag) {
			for _, e := range emoji.SupportedEmojis() {
				fmt.Printf("%s\t%s\n", e.Character, e.Slug)
			}
			return
		}

		_ = cmd.Help()
	},
}

func init() {
	rootCmd.AddCommand(emojiCmd)

	emojiCmd.Flags().StringP(resolveFlag, "r", "",
		"Reaction name or alias to resolve to its native emoji")
	viper.BindPFlag(resolveFlag, emojiCmd.Flags().Lookup(resolveFlag))

	emojiCmd.Flags().String(validateFlag, "",
		"Reaction to check for validity")
	viper.BindPFlag(validateFlag, emojiCmd.Flags().Lookup(validateFlag))

	emojiCmd.Flags().Bool(listFlag, false,
		"Print every supported emoji with its slug")
	viper.BindPFlag(listFlag, emojiCmd.Flags().Lookup(listFlag))
}
