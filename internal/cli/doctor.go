package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/svgdx/svgdx-pandoc/pkg/convert"
	"github.com/svgdx/svgdx-pandoc/pkg/render"
)

var (
	doctorNameStyle = lipgloss.NewStyle().Bold(true).Width(14)
	doctorOKStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	doctorMissStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// newDoctorCmd creates the doctor command, which probes the renderer and
// every PNG converter backend and reports what a filter run would find.
// Useful before converting to docx/pptx, where a missing converter aborts
// the run.
func newDoctorCmd(opts *filterOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check availability of the svgdx renderer and PNG converters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd.OutOrStdout(), *opts)
		},
	}
	cmd.Flags().StringVar(&opts.svgdxCmd, "svgdx", "", "svgdx executable to probe (default \"svgdx\" from $PATH)")
	return cmd
}

func runDoctor(out io.Writer, opts filterOpts) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}

	renderer := render.NewCommand(firstNonEmpty(opts.svgdxCmd, cfg.SvgdxCommand))
	printProbe(out, "renderer", renderer.Path(), renderer.Supported())

	for _, b := range cfg.Backends() {
		printProbe(out, "converter", b.Name(), b.Supported())
	}

	resolved := convert.Resolve(cfg.Backends()...)
	if resolved.Available() {
		fmt.Fprintf(out, "\nPNG conversion would use %s\n", doctorOKStyle.Render(resolved.Backend()))
	} else {
		fmt.Fprintf(out, "\n%s\n", doctorMissStyle.Render("PNG conversion unavailable: docx/pptx output would fail"))
	}
	return nil
}

func printProbe(out io.Writer, kind, name string, ok bool) {
	status := doctorOKStyle.Render("available")
	if !ok {
		status = doctorMissStyle.Render("not found")
	}
	fmt.Fprintf(out, "%s %s %s\n", doctorNameStyle.Render(kind), name, status)
}
