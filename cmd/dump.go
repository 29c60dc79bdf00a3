package cmd

import (
	"fmt"

	"github.com/ohler55/ojg/oj"
	"github.com/spf13/cobra"

	"github.com/horhof/datafort.network/internal/ingest"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [source]",
	Short: "Parse a directory source and print its structural JSON dump",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ingest.Load(args[0], separator)
		if err != nil {
			return err
		}

		out, err := oj.Marshal(store.Dump(), 2)
		if err != nil {
			return fmt.Errorf("marshal dump: %w", err)
		}
		fmt.Println(string(out))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(dumpCmd)
}
