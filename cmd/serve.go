package cmd

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/horhof/datafort.network/internal/ingest"
	"github.com/horhof/datafort.network/internal/server"
)

var listenAddr string

var serveCmd = &cobra.Command{
	Use:   "serve [source]",
	Short: "Load a directory source and serve it over HTTP",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()

		store, err := ingest.Load(args[0], separator)
		if err != nil {
			return err
		}
		log.Info().Str("source", args[0]).Int("nodes", store.Len()).Msg("directory loaded")

		srv := server.New(server.Config{
			Store:    store,
			Logger:   log,
			Registry: prometheus.NewRegistry(),
		})
		return srv.Listen(listenAddr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "listen", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}
