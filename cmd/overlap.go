package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rnacentral/rnacentral-go/pkg/handler/request"
	"github.com/rnacentral/rnacentral-go/pkg/model"
)

var overlapCmd = &cobra.Command{
	Use:     "overlap <species> <chromosome:start-end>",
	Short:   "Print genome browser features in a region as JSON",
	Example: "  rnacentral overlap homo_sapiens X:73,819,000-73,853,000",
	Args:    cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		region, err := request.ParseRegion(args[0], args[1])
		if err != nil {
			return err
		}

		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		features, err := model.GenomeAnnotations(cmd.Context(), store,
			region.Species, region.Chromosome, region.Start, region.End)
		if err != nil {
			return err
		}
		return printJSON(features)
	},
}

func init() {
	rootCmd.AddCommand(overlapCmd)
}
