package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/svgdx/svgdx-pandoc/pkg/buildinfo"
	"github.com/svgdx/svgdx-pandoc/pkg/observability"
)

// Execute runs the svgdx-pandoc CLI and returns an error if the filter or
// a subcommand fails.
//
// The root command is the filter itself, matching the pandoc filter
// protocol: one optional positional argument (the output format), AST on
// stdin, AST on stdout. Flags exist for manual runs and debugging; pandoc
// never passes any.
func Execute(ctx context.Context) error {
	var (
		verbose bool
		opts    filterOpts
	)

	root := &cobra.Command{
		Use:   "svgdx-pandoc [format]",
		Short: "A pandoc filter that renders svgdx fenced code blocks",
		Long: `svgdx-pandoc is a pandoc JSON filter. It replaces svgdx-fenced code
blocks with rendered SVG: inlined for HTML-like formats, converted to PNG
for docx/pptx, and written to a temp SVG file for everything else.

Run it through pandoc:

  pandoc --filter svgdx-pandoc input.md -o output.html`,
		Version:      buildinfo.Version,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level)
			cmd.SetContext(withLogger(cmd.Context(), logger))
			if verbose {
				observability.SetFilterHooks(&logHooks{logger: logger})
			}
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				opts.format = args[0]
			}
			return runFilter(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), opts)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "TOML config file (default $SVGDX_PANDOC_CONFIG)")
	root.Flags().StringVar(&opts.tmpdir, "tmpdir", "", "directory for temp image files (default $SVGDX_PANDOC_TMPDIR)")
	root.Flags().StringVar(&opts.svgdxCmd, "svgdx", "", "svgdx executable to invoke (default \"svgdx\" from $PATH)")

	root.AddCommand(newDoctorCmd(&opts))

	return root.ExecuteContext(ctx)
}
