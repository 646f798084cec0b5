package cmd

import (
	"github.com/mengelbart/gst-tutorials/config"
	"github.com/mengelbart/gst-tutorials/gst"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(dynamicCmd)
	dynamicCmd.Flags().Bool("video", false, "Also link video pads to videoconvert ! autovideosink")
	lo.Must0(viper.BindPFlag(config.DynamicVideo, dynamicCmd.Flags().Lookup("video")))
}

var dynamicCmd = &cobra.Command{
	Use:   "dynamic",
	Short: "Decode a URI with uridecodebin and link its pads as they appear",
	RunE: func(cmd *cobra.Command, args []string) error {
		return dynamic()
	},
}

func dynamic() error {
	p, _, err := gst.NewDynamicPipeline(
		viper.GetString(config.URI),
		viper.GetBool(config.DynamicVideo),
		logrus.NewEntry(logrus.StandardLogger()),
	)
	if err != nil {
		return err
	}
	return play(p, p.Bus())
}
