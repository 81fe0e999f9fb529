package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/ironsheep/whales-dataset/internal/imaging"
)

func newShowCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <index>",
		Short: "Decode one sample and print its label and image metadata",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			i, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid index %q: %w", args[0], err)
			}

			idx, _, err := opts.openIndex(cmd)
			if err != nil {
				return err
			}

			img, label, err := idx.Get(i)
			if err != nil {
				return err
			}
			entry, err := idx.Entry(i)
			if err != nil {
				return err
			}
			info, err := imaging.Describe(img, entry.Path)
			if err != nil {
				return err
			}
			mean := imaging.MeanColor(img)

			labelJSON, err := json.MarshalIndent(label, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode label: %w", err)
			}

			out := cmd.OutOrStdout()
			st := newStyler(out, opts.noColor)
			fmt.Fprintf(out, "%s %s\n", st.render(titleStyle, fmt.Sprintf("[%d]", i)), entry.Name)
			fmt.Fprintf(out, "%s %s\n", st.render(dimStyle, "Path:"), entry.Path)
			fmt.Fprintf(out, "%s %dx%d %s %s\n", st.render(dimStyle, "Image:"), info.Width, info.Height, info.Format, info.ColorDepth)
			fmt.Fprintf(out, "%s %s\n", st.render(dimStyle, "Mean color:"), mean.Hex)
			fmt.Fprintf(out, "%s %d\n", st.render(dimStyle, "Units:"), label.UnitCount())
			fmt.Fprintf(out, "%s\n%s\n", st.render(dimStyle, "Label:"), labelJSON)
			return nil
		},
	}
}
