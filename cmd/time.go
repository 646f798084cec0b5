package cmd

import (
	"os"

	"github.com/mengelbart/gst-tutorials/config"
	"github.com/mengelbart/gst-tutorials/gst"
	"github.com/mengelbart/gst-tutorials/playback"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(timeCmd)
	timeCmd.Flags().Duration("poll-interval", playback.DefaultPollInterval, "How long to wait for a bus message before printing the position")
	timeCmd.Flags().Bool("seek", true, "Seek once after the seek threshold has been reached")
	timeCmd.Flags().Duration("seek-threshold", playback.DefaultSeekThreshold, "Position after which to seek")
	timeCmd.Flags().Duration("seek-target", playback.DefaultSeekTarget, "Position to seek to")
	lo.Must0(viper.BindPFlag(config.TimePollInterval, timeCmd.Flags().Lookup("poll-interval")))
	lo.Must0(viper.BindPFlag(config.TimeSeek, timeCmd.Flags().Lookup("seek")))
	lo.Must0(viper.BindPFlag(config.TimeSeekThreshold, timeCmd.Flags().Lookup("seek-threshold")))
	lo.Must0(viper.BindPFlag(config.TimeSeekTarget, timeCmd.Flags().Lookup("seek-target")))
}

var timeCmd = &cobra.Command{
	Use:   "time",
	Short: "Play a URI, print the position and seek once",
	RunE: func(cmd *cobra.Command, args []string) error {
		return timeManagement()
	},
}

func timeManagement() error {
	cfg, err := config.PlaybackFrom(viper.GetViper())
	if err != nil {
		return err
	}
	p, err := gst.NewPlaybin(viper.GetString(config.URI))
	if err != nil {
		return err
	}
	return play(p, p.Bus(), playbackOptions(cfg)...)
}

func playbackOptions(cfg config.Playback) []func(*playback.Controller) {
	options := []func(*playback.Controller){
		playback.SetPollInterval(cfg.PollInterval),
		playback.ReportPosition(os.Stdout),
	}
	if cfg.Seek {
		options = append(options, playback.EnableAutoSeek(cfg.SeekThreshold, cfg.SeekTarget))
	}
	return options
}
