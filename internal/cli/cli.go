package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// CLIArgs are the command-line arguments for a single audit run.
type CLIArgs struct {
	// Target is the root URL (or host) to audit.
	Target string

	// MaxPages caps how many discovered pages are scanned; 0 means
	// "use config default".
	MaxPages int

	// Format selects the report renderer: text, csv or json.
	Format string

	// DBPath, when set, persists the run to a sqlite audit history.
	DBPath string

	// EnginePath, when set, loads the axe-core script from a local file
	// instead of fetching it.
	EnginePath string

	// Backend selects the browser session backend.
	Backend string

	// RawArgs is the original args slice (useful for debugging/tests).
	RawArgs []string
}

// ParseArgs parses a slice of args and returns CLIArgs. Use in tests by
// passing arbitrary slices. The function is deterministic and does not
// read os.Args.
func ParseArgs(args []string) (*CLIArgs, error) {
	fs := flag.NewFlagSet("a11ylead", flag.ContinueOnError)
	var (
		target     = fs.String("target", "", "Root URL to audit (required)")
		maxPages   = fs.Int("pages", 0, "Max pages to scan (0=use default)")
		format     = fs.String("format", "text", "Report format: text|csv|json")
		dbPath     = fs.String("db", "", "Path to sqlite audit history (empty=do not persist)")
		enginePath = fs.String("engine", "", "Path to a local axe-core script (empty=fetch from CDN)")
		backend    = fs.String("backend", "", "Browser backend (empty=chrome)")
	)

	// Ensure Parse doesn't write to stdout/stderr in tests
	fs.SetOutput(io.Discard)

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if strings.TrimSpace(*target) == "" {
		return nil, fmt.Errorf("missing required -target argument")
	}

	switch *format {
	case "text", "csv", "json":
	default:
		return nil, fmt.Errorf("unknown -format %q (want text, csv or json)", *format)
	}

	if *maxPages < 0 {
		return nil, fmt.Errorf("-pages must not be negative")
	}

	return &CLIArgs{
		Target:     *target,
		MaxPages:   *maxPages,
		Format:     *format,
		DBPath:     *dbPath,
		EnginePath: *enginePath,
		Backend:    *backend,
		RawArgs:    args,
	}, nil
}
