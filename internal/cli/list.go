package cli

import (
	"fmt"
	"path/filepath"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func newListCommand(opts *options) *cobra.Command {
	var asTree bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List indexed images in index order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			idx, _, err := opts.openIndex(cmd)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if asTree {
				tree := newFileTree(idx.ImageDir())
				for i, p := range idx.Paths() {
					rel, err := filepath.Rel(idx.ImageDir(), p)
					if err != nil {
						return err
					}
					tree.insert(rel, fmt.Sprintf("[%d] ", i))
				}
				fmt.Fprint(out, tree.render())
				return nil
			}

			// Header stays unstyled: tabwriter counts escape bytes as width.
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "INDEX\tNAME\tUNITS\tPATH")
			for i := 0; i < idx.Len(); i++ {
				e, err := idx.Entry(i)
				if err != nil {
					return err
				}
				rel, err := filepath.Rel(idx.ImageDir(), e.Path)
				if err != nil {
					return err
				}
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\n", e.Index, e.Name, e.Label.UnitCount(), rel)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().BoolVar(&asTree, "tree", false, "Render images grouped by sub-directory")
	return cmd
}
