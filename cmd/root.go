package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gracefm/radio-api/pkg/config"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "radio-api",
	Short: "Grace FM API server",
	Long: `Grace FM API - the backend for the radio station's web and mobile apps.

It serves the live stream link, the sermon message archive, listener
podcasts with their moderation workflow, comments, favourites and the
usage analytics behind the station's admin dashboard.`,
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCmd returns the root command (exported for testing)
func NewRootCmd() *cobra.Command {
	return rootCmd
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig loads the configuration. Commands that don't need it
// (version, help) skip the load so they work without a config file.
func initConfig() {
	cmd, _, _ := rootCmd.Find(os.Args[1:])
	if cmd != nil && (cmd.Name() == "version" || cmd.Name() == "help") {
		return
	}

	if err := config.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing config: %v\n", err)
		os.Exit(1)
	}
}
