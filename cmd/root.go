////////////////////////////////////////////////////////////////////////////////
// Copyright © 2022 xx foundation                                             //
//                                                                            //
// Use of this source code is governed by a license that can be found in the  //
// LICENSE file                                                               //
////////////////////////////////////////////////////////////////////////////////

// Package cmd initializes the CLI and config parsers as well as the logger.
// The CLI is a development utility around the conversion library; it is not
// part of the library surface.
package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	jww "github.com/spf13/jwalterweatherman"
	"github.com/spf13/viper"
	"github.com/thedevsaddam/gojsonq"

	"gitlab.com/elixxir/postview/markdown"
	"gitlab.com/elixxir/postview/message"
	"gitlab.com/elixxir/postview/post"
	"gitlab.com/xx_network/primitives/utils"
)

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen once
// to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// rootCmd represents the base command when called without any subcommands.
// It converts raw posts read from a file or stdin and prints the client view
// as JSON.
var rootCmd = &cobra.Command{
	Use:   "postview",
	Short: "Converts raw server posts into their client-side view",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		initLog(viper.GetUint(logLevelFlag), viper.GetString(logFlag))

		if profileDir := viper.GetString(profileCPUFlag); profileDir != "" {
			p := profile.Start(
				profile.CPUProfile, profile.ProfilePath(profileDir))
			defer p.Stop()
		}

		rawPosts, single := readPosts(viper.GetString(inputFlag))
		conv := message.NewConverter(markdown.Parse)

		converted := make([]*message.ClientPost, 0, len(rawPosts))
		for _, p := range rawPosts {
			converted = append(converted, conv.Convert(p, p.RootID))
		}
		jww.INFO.Printf("[PV] Converted %d post(s)", len(converted))

		var out []byte
		var err error
		if single && len(converted) == 1 {
			out, err = json.MarshalIndent(converted[0], "", "  ")
		} else {
			out, err = json.MarshalIndent(converted, "", "  ")
		}
		if err != nil {
			jww.FATAL.Panicf("[PV] Failed to marshal converted posts: %+v", err)
		}

		if query := viper.GetString(queryFlag); query != "" {
			printQuery(string(out), query)
			return
		}

		fmt.Printf("%s\n", out)
	},
}

// readPosts loads raw posts from the given path, or from stdin when the path
// is "-" or empty. The payload may be a single post object or an array of
// posts; the second return reports which. Every post is validated before it
// is returned.
func readPosts(path string) ([]*post.Post, bool) {
	var data []byte
	var err error
	if path == "-" || path == "" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = utils.ReadFile(path)
	}
	if err != nil {
		jww.FATAL.Panicf("[PV] Failed to read posts from %q: %+v", path, err)
	}

	trimmed := bytes.TrimSpace(data)
	single := len(trimmed) == 0 || trimmed[0] != '['

	var posts []*post.Post
	if single {
		p, err2 := post.FromJSON(trimmed)
		if err2 != nil {
			jww.FATAL.Panicf("[PV] Failed to decode post: %+v", err2)
		}
		posts = []*post.Post{p}
	} else if err = json.Unmarshal(trimmed, &posts); err != nil {
		jww.FATAL.Panicf("[PV] Failed to decode post array: %+v", err)
	}

	for _, p := range posts {
		if err = p.Validate(); err != nil {
			jww.FATAL.Panicf("[PV] Rejecting malformed post: %+v", err)
		}
	}

	return posts, single
}

// printQuery runs a dot-notation query against the JSON output and prints
// the result as JSON.
func printQuery(jsonOut, query string) {
	jq := gojsonq.New().FromString(jsonOut)
	result := jq.Find(query)
	if jq.Error() != nil {
		jww.FATAL.Panicf("[PV] Query %q failed: %+v", query, jq.Error())
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		jww.FATAL.Panicf("[PV] Failed to marshal query result: %+v", err)
	}
	fmt.Printf("%s\n", out)
}

func initLog(threshold uint, logPath string) {
	if logPath != "-" && logPath != "" {
		// Disable stdout output
		jww.SetStdoutOutput(io.Discard)
		// Use log file
		logOutput, err := os.OpenFile(logPath,
			os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			panic(err.Error())
		}
		jww.SetLogOutput(logOutput)
	}

	if threshold > 1 {
		jww.SetStdoutThreshold(jww.LevelTrace)
		jww.SetLogThreshold(jww.LevelTrace)
		jww.SetFlags(log.LstdFlags | log.Lmicroseconds)
		jww.INFO.Printf("log level set to: TRACE")
	} else if threshold == 1 {
		jww.SetStdoutThreshold(jww.LevelDebug)
		jww.SetLogThreshold(jww.LevelDebug)
		jww.SetFlags(log.LstdFlags | log.Lmicroseconds)
		jww.INFO.Printf("log level set to: DEBUG")
	} else {
		jww.SetStdoutThreshold(jww.LevelInfo)
		jww.SetLogThreshold(jww.LevelInfo)
		jww.INFO.Printf("log level set to: INFO")
	}
}

// initConfig reads in the config file and environment variables if set.
func initConfig() {
	if cfgPath := viper.GetString(configFlag); cfgPath != "" {
		viper.SetConfigFile(cfgPath)
		if err := viper.ReadInConfig(); err != nil {
			jww.FATAL.Panicf(
				"[PV] Failed to read config file %s: %+v", cfgPath, err)
		}
	}

	viper.SetEnvPrefix("postview")
	viper.AutomaticEnv()
}

// init is the initialization function for Cobra which defines commands
// and flags.
func init() {
	// NOTE: The point of init() is to be declarative. There is one init in
	// each sub command. Do not put variable declarations here, and ensure all
	// the Flags are of the *P variety, unless there's a very good reason not
	// to have them as local params to sub command.
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().UintP(logLevelFlag, "v", 0,
		"Verbose mode for debugging")
	viper.BindPFlag(logLevelFlag,
		rootCmd.PersistentFlags().Lookup(logLevelFlag))

	rootCmd.PersistentFlags().StringP(logFlag, "l", "-",
		"Path to the log output path (- is stdout)")
	viper.BindPFlag(logFlag, rootCmd.PersistentFlags().Lookup(logFlag))

	rootCmd.PersistentFlags().StringP(inputFlag, "i", "-",
		"Path to the raw post JSON, a single post or an array (- is stdin)")
	viper.BindPFlag(inputFlag, rootCmd.PersistentFlags().Lookup(inputFlag))

	rootCmd.PersistentFlags().StringP(configFlag, "c", "",
		"Path to a config file")
	viper.BindPFlag(configFlag, rootCmd.PersistentFlags().Lookup(configFlag))

	rootCmd.Flags().StringP(queryFlag, "q", "",
		"Dot-notation query run against the converted JSON output")
	viper.BindPFlag(queryFlag, rootCmd.Flags().Lookup(queryFlag))

	rootCmd.Flags().String(profileCPUFlag, "",
		"Enable CPU profiling into this directory")
	viper.BindPFlag(profileCPUFlag, rootCmd.Flags().Lookup(profileCPUFlag))
}
