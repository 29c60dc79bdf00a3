package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/horhof/datafort.network/internal/ingest"
)

var checkCmd = &cobra.Command{
	Use:   "check [source]",
	Short: "Validate a directory source without serving it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ingest.Load(args[0], separator)
		if err != nil {
			return err
		}
		fmt.Printf("%s: ok (%d nodes, %d roots)\n", args[0], store.Len(), len(store.Roots()))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
