package cmd

import (
	"github.com/mengelbart/gst-tutorials/config"
	"github.com/mengelbart/gst-tutorials/gst"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(conceptsCmd)
	conceptsCmd.Flags().String("pattern", "smpte", "videotestsrc pattern")
	lo.Must0(viper.BindPFlag(config.ConceptsPattern, conceptsCmd.Flags().Lookup("pattern")))
}

var conceptsCmd = &cobra.Command{
	Use:   "concepts",
	Short: "Run videotestsrc ! vertigotv ! videoconvert ! autovideosink built element by element",
	RunE: func(cmd *cobra.Command, args []string) error {
		return concepts()
	},
}

func concepts() error {
	p, err := gst.NewConceptsPipeline(viper.GetString(config.ConceptsPattern))
	if err != nil {
		return err
	}
	return play(p, p.Bus())
}
