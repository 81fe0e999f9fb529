package cli

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/ironsheep/whales-dataset/internal/server"
)

func newServeCommand(opts *options, info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the dataset over MCP on stdin/stdout",
		Long: `Serve the dataset to an MCP client. Requests are read from stdin one per
line and responses written to stdout; logs go to stderr.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, cfg, err := opts.openIndex(cmd)
			if err != nil {
				return err
			}
			if cfg.Debug() {
				log.Printf("whales-dataset %s serving %d images from %s (%s)",
					info.Version, idx.Len(), idx.Root(), idx.Variant().Name)
			}

			server.Version = info.Version
			return server.New(idx).Run(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
