package cmd

import (
	"github.com/mengelbart/gst-tutorials/config"
	"github.com/mengelbart/gst-tutorials/gst"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(helloCmd)
}

var helloCmd = &cobra.Command{
	Use:   "hello",
	Short: "Play a URI with playbin until end of stream or error",
	RunE: func(cmd *cobra.Command, args []string) error {
		return hello()
	},
}

func hello() error {
	p, err := gst.NewPlaybin(viper.GetString(config.URI))
	if err != nil {
		return err
	}
	return play(p, p.Bus())
}
