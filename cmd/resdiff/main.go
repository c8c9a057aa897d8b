// resdiff compares numerical result files within a tolerance.
//
// Usage:
//
//	resdiff file1.txt file2.txt [file3.txt ...]
//	resdiff -tolerance 1e-8 'output/results_1d_*.txt'
//	resdiff -output report.txt output/results_*.txt
//
// Each input file holds `# key: value` metadata lines followed by
// `index real imag` data lines. Every unordered pair of inputs is compared;
// each pair report shows the metadata side by side and the per-point
// difference statistics.
//
// Output modes (auto-detected):
//
//	terminal  — styled Unicode output (default when TTY)
//	text      — plain report (default when piped or written to a file)
//	json      — structured JSON for automation
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/term"

	"github.com/jbmorgado/resdiff/internal/browse"
	"github.com/jbmorgado/resdiff/internal/config"
	"github.com/jbmorgado/resdiff/internal/version"
	"github.com/jbmorgado/resdiff/pkg/render"
	"github.com/jbmorgado/resdiff/pkg/report"
	"github.com/jbmorgado/resdiff/pkg/resultfile"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	cfg := config.Load()

	fs := flag.NewFlagSet("resdiff", flag.ContinueOnError)
	fs.SetOutput(stderr)
	tolerance := fs.Float64("tolerance", cfg.Tolerance, "Tolerance for numerical comparison")
	formatFlag := fs.String("format", cfg.Format, "Output format: auto, terminal, text, json")
	themeFlag := fs.String("theme", cfg.Theme, "Theme: default, orca, mono")
	output := fs.String("output", "", "Save report to file instead of stdout")
	browseFlag := fs.Bool("browse", false, "Browse pair reports interactively (TTY only)")
	versionFlag := fs.Bool("version", false, "Print version and exit")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *versionFlag {
		fmt.Fprintf(stdout, "resdiff %s (%s, built %s)\n", version.Version, version.CommitHash, version.BuildDate)
		return 0
	}

	if *tolerance < 0 {
		fmt.Fprintf(stderr, "resdiff: tolerance must be non-negative\n")
		return 2
	}

	paths := expandGlobs(fs.Args())
	if len(paths) < 2 {
		fmt.Fprintf(stderr, "resdiff: at least 2 files are required for comparison\n")
		fmt.Fprintf(stderr, "Usage: resdiff [flags] file1 file2 [file3 ...]\n")
		return 1
	}

	theme := render.ThemeByName(*themeFlag)
	if os.Getenv("NO_COLOR") != "" {
		theme = render.MonoTheme()
	}

	mode := resolveFormat(*formatFlag, stdout, *output != "")
	renderer, err := selectRenderer(mode, theme, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "resdiff: %v\n", err)
		return 2
	}

	// All files must load before any comparison proceeds.
	datasets := make([]*resultfile.Dataset, 0, len(paths))
	for _, path := range paths {
		ds, err := resultfile.Parse(path)
		if err != nil {
			fmt.Fprintf(stderr, "resdiff: %v\n", err)
			return 1
		}
		if ds.Skipped > 0 {
			fmt.Fprintf(stderr, "resdiff: warning: %s: %d malformed line(s) skipped\n", path, ds.Skipped)
		}
		// Keep stdout machine-clean in json mode.
		if mode != "json" {
			fmt.Fprintf(stdout, "Loaded %d data points from %s\n", len(ds.Samples), filepath.Base(path))
		}
		datasets = append(datasets, ds)
	}

	pairs := report.BuildAll(datasets, *tolerance)

	if *browseFlag {
		if !isTTYWriter(stdout) {
			fmt.Fprintf(stderr, "resdiff: -browse requires a terminal\n")
			return 2
		}
		if err := browse.Run(pairs, theme); err != nil {
			fmt.Fprintf(stderr, "resdiff: browse: %v\n", err)
			return 2
		}
		return 0
	}

	out := renderer.Render(pairs)

	if *output != "" {
		if err := os.WriteFile(*output, []byte(out), 0o644); err != nil {
			fmt.Fprintf(stderr, "resdiff: writing report: %v\n", err)
			return 1
		}
		fmt.Fprintf(stdout, "Report saved to %s\n", *output)
		return 0
	}
	fmt.Fprint(stdout, out)
	return 0
}

// expandGlobs resolves glob patterns into concrete paths. An argument that
// matches nothing passes through unchanged so a missing file fails at load
// time with a proper error.
func expandGlobs(args []string) []string {
	var paths []string
	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil || len(matches) == 0 {
			paths = append(paths, arg)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths
}

// isTTYWriter reports whether w is a terminal.
func isTTYWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// resolveFormat maps "auto" to a concrete mode: text when writing to a file
// or piped, terminal on a TTY.
func resolveFormat(format string, w io.Writer, toFile bool) string {
	if format != "auto" {
		return format
	}
	if toFile {
		return "text"
	}
	if isTTYWriter(w) {
		return "terminal"
	}
	return "text"
}

func selectRenderer(mode string, theme render.Theme, w io.Writer) (render.Renderer, error) {
	switch mode {
	case "terminal":
		width := 80
		if f, ok := w.(*os.File); ok {
			if tw, _, err := term.GetSize(int(f.Fd())); err == nil && tw > 0 {
				width = tw
			}
		}
		return render.NewTerminal(theme, width), nil
	case "text":
		return render.NewText(), nil
	case "json":
		return render.NewJSON(), nil
	default:
		return nil, fmt.Errorf("unknown format %q (expected auto, terminal, text, json)", mode)
	}
}
