package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/omgnotthatguy/errtree/internal/inspect"
	"github.com/omgnotthatguy/errtree/pkg/context"
	"github.com/omgnotthatguy/errtree/pkg/errtree"
	"github.com/omgnotthatguy/errtree/pkg/log"
	"github.com/spf13/cobra"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// exit code when the root pattern cannot be loaded, distinct from cobra's
// usage errors
const exitRootUnloadable = 10

// These global variables can be configured with the corresponding lowercase flag
var (
	Verbose string // Verbose defines the logging level, either trace, debug, info, error, fatal
	Output  string // Output defines the output format, either pretty, text, json
	Quiet   bool   // Quiet will mute the config file notice upon startup

	cfgFile string

	compact  = false
	allPaths = false

	includeTests      = false
	includeUnexported = false
	dir               = ""
	buildFlags        = []string{}
)

// rootCmd represents the base command; it runs the scan itself
var rootCmd = &cobra.Command{
	Use:   "errtree PATTERN",
	Short: "show the error type tree of a go package",
	Long: `errtree discovers every named type satisfying the error interface that is
reachable from a package pattern, directly or through its subpackages, and
prints the subtype relationships as a tree rooted at the built-in error.

Types marked with '*' embed multiple error types. Use -a or --all-paths to
see them under every parent.

usage:
errtree <pattern> <flags>
errtree github.com/spf13/viper
errtree -c ./...
errtree -a --unexported .

`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		pattern := args[0]

		render := []errtree.RenderOption{
			errtree.Compact(compact),
			errtree.AllPaths(allPaths),
		}
		opts := []inspect.InspectOption{
			inspect.Dir(dir),
			inspect.BuildFlags(buildFlags),
			inspect.IncludeTests(includeTests),
			inspect.IncludeUnexported(includeUnexported),
		}

		if err := inspect.Tree(context.Context(), os.Stdout, pattern, render, opts...); err != nil {
			var rerr *inspect.ErrRootUnloadable
			if errors.As(err, &rerr) {
				log.Error().Err(rerr.Err).Str("pattern", rerr.Pattern).Msg("could not load root pattern")
				os.Exit(exitRootUnloadable)
			}
			log.Fatal().Err(err).Msg("failed to scan pattern")
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}

func init() {
	cobra.OnInitialize(initLogging)
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.errtree.yaml)")

	rootCmd.PersistentFlags().StringVarP(&Verbose, "verbose", "v", "info", "level of logging verbosity. can be error,info,debug,trace")
	rootCmd.PersistentFlags().StringVarP(&Output, "output", "o", "pretty", "output format. can be json,text,pretty")
	rootCmd.PersistentFlags().BoolVarP(&Quiet, "quiet", "q", false, "quiet mode. will mute unecessarry pretty text")

	viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	viper.BindPFlag("output", rootCmd.PersistentFlags().Lookup("output"))
	viper.BindPFlag("quiet", rootCmd.PersistentFlags().Lookup("quiet"))

	rootCmd.Flags().BoolVarP(&compact, "compact", "c", compact, "compact output without guide lines between sibling subtrees")
	rootCmd.Flags().BoolVarP(&allPaths, "all-paths", "a", allPaths, "expand types embedding multiple error types under each parent")

	rootCmd.PersistentFlags().BoolVar(&includeTests, "tests", includeTests, "include the test packages of the matched patterns")
	rootCmd.PersistentFlags().BoolVar(&includeUnexported, "unexported", includeUnexported, "include unexported types in the scan")
	rootCmd.PersistentFlags().StringVar(&dir, "dir", dir, "working directory for resolving relative patterns")
	rootCmd.PersistentFlags().StringSliceVar(&buildFlags, "build-flags", buildFlags, "flags passed through to the go build system, e.g. -tags=integration")
}

func initLogging() {
	log.SetFormat(viper.GetString("output"))

	level := viper.GetString("verbose")
	if level != "" {
		if err := log.SetLevelString(level); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize logging")
		}
	}
	log.Debug().Str("level", level).Str("format", viper.GetString("output")).Msg("custom log settings")
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".errtree" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".errtree")
	}

	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil && !viper.GetBool("quiet") {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
