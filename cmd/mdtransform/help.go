package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: mdtransform [flags] [file|dir|-]...")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Parse chat messages and annotate mentions, highlights and search matches.")
	fmt.Fprintln(w, "Reads standard input when no file is given or the file is \"-\".")
	fmt.Fprintln(w, "Directories are searched for .md and .markdown files.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Keys:")
	fmt.Fprintln(w, "  -m, --mention <key>       Mention key, e.g. @alice or alice (repeatable)")
	fmt.Fprintln(w, "      --mention-cs <key>    Case-sensitive mention key")
	fmt.Fprintln(w, "      --highlight <key>     Highlight without notification")
	fmt.Fprintln(w, "  -s, --search <term>       Search term: word, prefix*, or \"phrase\" (repeatable)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output:")
	fmt.Fprintln(w, "  -f, --format <s>          Format: tree, json, html (default: tree)")
	fmt.Fprintln(w, "      --style <name>        HTML preview style: default, compact")
	fmt.Fprintln(w, "      --style-dir <dir>     Directory of custom {name}.css styles")
	fmt.Fprintln(w, "  -o, --output-dir <dir>    Write one file per input (default: stdout)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Processing:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "  -w, --workers <n>         Parallel workers (0 = auto)")
	fmt.Fprintln(w, "      --verify              Check tree invariants after every pass")
	fmt.Fprintln(w, "      --print-config        Print the effective config and exit")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Logging:")
	fmt.Fprintln(w, "      --log-level <s>       debug, info, warn, error (default: info)")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Debug logging with per-file timing")
	fmt.Fprintln(w, "      --no-color            Disable colored log output")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  MDTRANSFORM_CONFIG, MDTRANSFORM_FORMAT, MDTRANSFORM_STYLE,")
	fmt.Fprintln(w, "  MDTRANSFORM_STYLE_DIR, MDTRANSFORM_OUTPUT_DIR, MDTRANSFORM_WORKERS,")
	fmt.Fprintln(w, "  MDTRANSFORM_LOG_LEVEL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version                   Show version information")
	fmt.Fprintln(w, "  help                      Show this message")
}
