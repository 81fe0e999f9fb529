package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/whales-dataset/internal/dataset"
)

func newValidateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Build the index and report whether every image has a label",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			st := newStyler(out, opts.noColor)

			idx, cfg, err := opts.openIndex(cmd)
			if err != nil {
				fmt.Fprintf(out, "%s %s\n", st.render(errorStyle, "✗"), st.render(dimStyle, cfg.Root))

				var lnf *dataset.LabelNotFoundError
				if errors.As(err, &lnf) {
					fmt.Fprintf(out, "%d unlabelled image(s):\n", len(lnf.Paths))
					for _, p := range lnf.Paths {
						fmt.Fprintf(out, "  %s\n", st.render(errorStyle, p))
					}
				}
				return err
			}

			summary := fmt.Sprintf("%s %s\n%s %s\n%s %d\n%s %d from %d file(s)",
				st.render(dimStyle, "Root:"), idx.Root(),
				st.render(dimStyle, "Variant:"), st.render(titleStyle, idx.Variant().Name),
				st.render(dimStyle, "Images:"), idx.Len(),
				st.render(dimStyle, "Labels:"), idx.LabelCount(), len(idx.LabelFiles()),
			)
			fmt.Fprintln(out, st.box(summary))
			fmt.Fprintf(out, "%s dataset is valid\n", st.render(successStyle, "✓"))
			return nil
		},
	}
}
