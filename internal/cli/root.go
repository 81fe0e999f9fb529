// Package cli implements the whales-dataset command line.
package cli

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/whales-dataset/internal/config"
	"github.com/ironsheep/whales-dataset/internal/dataset"
)

// BuildInfo is set by ldflags in main.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// options holds the persistent flags shared by every subcommand.
type options struct {
	configPath string
	root       string
	variant    string
	noColor    bool
}

// NewRootCommand assembles the command tree.
func NewRootCommand(info BuildInfo) *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "whales-dataset",
		Short: "Index and validate image/label datasets",
		Long: `whales-dataset indexes a dataset root laid out as

  <root>/images/{lines|pages}/**/*.png
  <root>/labels/{line_level|page_level}/**/*.json

checks that every image has a label entry and serves samples by index.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       info.Version,
	}
	rootCmd.SetVersionTemplate(fmt.Sprintf("whales-dataset %s\n  Build time: %s\n  Git commit: %s\n",
		info.Version, info.BuildTime, info.GitCommit))

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML config file")
	flags.StringVarP(&opts.root, "root", "r", "", "Dataset root directory (overrides config and "+config.EnvRoot+")")
	flags.StringVar(&opts.variant, "variant", "", "Label granularity: line_level or page_level (overrides config and "+config.EnvVariant+")")
	flags.BoolVar(&opts.noColor, "no-color", false, "Disable styled output")

	rootCmd.AddCommand(
		newValidateCommand(opts),
		newListCommand(opts),
		newShowCommand(opts),
		newServeCommand(opts, info),
	)
	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute(info BuildInfo) {
	if err := NewRootCommand(info).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// settings resolves config file < environment < flags.
func (o *options) settings(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()
	if o.configPath != "" {
		var err error
		if cfg, err = config.Load(o.configPath); err != nil {
			return cfg, err
		}
	}
	cfg.ApplyEnv()

	if cmd.Flags().Changed("root") {
		cfg.Root = o.root
	}
	if cmd.Flags().Changed("variant") {
		cfg.Variant = o.variant
	}
	return cfg, nil
}

// openIndex builds the dataset index described by the resolved settings.
func (o *options) openIndex(cmd *cobra.Command) (*dataset.Index, config.Config, error) {
	cfg, err := o.settings(cmd)
	if err != nil {
		return nil, cfg, err
	}

	variant, err := dataset.VariantByName(cfg.Variant)
	if err != nil {
		return nil, cfg, err
	}

	var opts []dataset.Option
	if cfg.Debug() {
		opts = append(opts, dataset.WithLogger(log.New(cmd.ErrOrStderr(), "", log.Ldate|log.Ltime|log.Lshortfile)))
	}

	idx, err := dataset.New(cfg.Root, variant, opts...)
	return idx, cfg, err
}
