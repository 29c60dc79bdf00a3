package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/horhof/datafort.network/internal/ingest"
)

var hostsCmd = &cobra.Command{
	Use:   "hosts [source]",
	Short: "List URL hosts and the entries that point at them",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := ingest.Load(args[0], separator)
		if err != nil {
			return err
		}

		for _, host := range store.Hosts() {
			fmt.Println(host)
			for _, n := range store.ByHost(host) {
				fmt.Printf("  %s\t%s\n", n.Path(), n.URL)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(hostsCmd)
}
