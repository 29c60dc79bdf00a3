package cmd

import (
	"github.com/spf13/cobra"

	"github.com/horhof/datafort.network/internal/browse"
	"github.com/horhof/datafort.network/internal/ingest"
)

var browseCmd = &cobra.Command{
	Use:   "browse [source]",
	Short: "Walk a directory source interactively",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ingest.Load(args[0], separator)
		if err != nil {
			return err
		}
		return browse.Run(store)
	},
}

func init() {
	rootCmd.AddCommand(browseCmd)
}
