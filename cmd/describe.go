package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rnacentral/rnacentral-go/pkg/model"
)

var (
	describeTaxid int
	describeFasta bool
)

var describeCmd = &cobra.Command{
	Use:     "describe <upi>",
	Short:   "Print the description and RNA type of a sequence",
	Example: "  rnacentral describe URS0000016972 --taxid 6239",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db, store, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		if describeFasta {
			fasta, err := model.Fasta(cmd.Context(), store, settings.Description, args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Print(fasta)
			return err
		}

		description, err := model.Describe(cmd.Context(), store, settings.Description, args[0], describeTaxid)
		if err != nil {
			return err
		}
		return printJSON(description)
	},
}

func init() {
	describeCmd.Flags().IntVar(&describeTaxid, "taxid", 0, "restrict to one NCBI taxon")
	describeCmd.Flags().BoolVar(&describeFasta, "fasta", false, "print the sequence as FASTA instead")
	rootCmd.AddCommand(describeCmd)
}

func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
