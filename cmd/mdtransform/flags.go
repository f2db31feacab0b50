package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds logging and config flags.
type commonFlags struct {
	config   string
	logLevel string
	quiet    bool
	verbose  bool
	noColor  bool
}

// keyFlags holds mention, highlight and search keys given on the command line.
// They are appended to the keys from the config file.
type keyFlags struct {
	mentions   []string
	mentionsCS []string
	highlights []string
	search     []string
}

// outputFlags holds output format and destination flags.
type outputFlags struct {
	format   string
	style    string
	styleDir string
	dir      string
}

// cliFlags holds all flags.
type cliFlags struct {
	common      commonFlags
	keys        keyFlags
	output      outputFlags
	workers     int
	verify      bool
	printConfig bool
	version     bool
}

// addCommonFlags adds logging and config flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.logLevel, "log-level", "", "log level: debug, info, warn, error")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "debug logging with per-file timing")
	fs.BoolVar(&f.noColor, "no-color", false, "disable colored log output")
}

// addKeyFlags adds key flags to a FlagSet.
func addKeyFlags(fs *flag.FlagSet, f *keyFlags) {
	fs.StringSliceVarP(&f.mentions, "mention", "m", nil, "mention key (repeatable, comma-separated)")
	fs.StringSliceVar(&f.mentionsCS, "mention-cs", nil, "case-sensitive mention key")
	fs.StringSliceVar(&f.highlights, "highlight", nil, "key highlighted without notification")
	fs.StringArrayVarP(&f.search, "search", "s", nil, "search term: word, prefix*, or \"phrase\" (repeatable)")
}

// addOutputFlags adds output flags to a FlagSet.
func addOutputFlags(fs *flag.FlagSet, f *outputFlags) {
	fs.StringVarP(&f.format, "format", "f", "", "output format: tree, json, html")
	fs.StringVar(&f.style, "style", "", "HTML preview style name")
	fs.StringVar(&f.styleDir, "style-dir", "", "directory of custom {name}.css styles")
	fs.StringVarP(&f.dir, "output-dir", "o", "", "write one file per input to this directory")
}

// parseFlags parses command flags and returns positional args.
func parseFlags(args []string) (*cliFlags, []string, error) {
	fs := flag.NewFlagSet("mdtransform", flag.ContinueOnError)
	f := &cliFlags{}

	fs.IntVarP(&f.workers, "workers", "w", 0, "parallel workers (0 = auto)")
	fs.BoolVar(&f.verify, "verify", false, "check tree invariants after every pass")
	fs.BoolVar(&f.printConfig, "print-config", false, "print the effective config and exit")
	fs.BoolVar(&f.version, "version", false, "show version information")

	addCommonFlags(fs, &f.common)
	addKeyFlags(fs, &f.keys)
	addOutputFlags(fs, &f.output)

	fs.Usage = func() { printUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
