package cmd

import (
	"os"

	"github.com/mengelbart/gst-tutorials/config"
	"github.com/mengelbart/gst-tutorials/logging"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var ConfigFile string

func init() {
	rootCmd.PersistentFlags().StringVar(&ConfigFile, "config", "", "Config file (default is $XDG_CONFIG_HOME/gsttut/config.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log debug output")
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: trace, debug, info, warn, error")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log as JSON")
	rootCmd.PersistentFlags().StringP("uri", "u", config.DefaultURI, "URI of the media to play")

	lo.Must0(viper.BindPFlag(config.LogVerbose, rootCmd.PersistentFlags().Lookup("verbose")))
	lo.Must0(viper.BindPFlag(config.LogLevel, rootCmd.PersistentFlags().Lookup("log-level")))
	lo.Must0(viper.BindPFlag(config.LogJSON, rootCmd.PersistentFlags().Lookup("log-json")))
	lo.Must0(viper.BindPFlag(config.URI, rootCmd.PersistentFlags().Lookup("uri")))
}

var rootCmd = &cobra.Command{
	Use:           "gsttut",
	Short:         "GStreamer tutorials: playback, static and dynamic pipelines, time management",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Load(viper.GetViper(), ConfigFile); err != nil {
			return err
		}
		return logging.Setup(logrus.StandardLogger(), os.Stderr, logging.Options{
			Level:   viper.GetString(config.LogLevel),
			Verbose: viper.GetBool(config.LogVerbose),
			JSON:    viper.GetBool(config.LogJSON),
		})
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}
