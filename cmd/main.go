package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/tripwise/trip-estimator/internal/config"
)

// Version is set at build time via -ldflags "-X main.Version=...".
var Version = "dev"

const appName = "trip-estimator"

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// cliOptions is the result of parsing the command line.
type cliOptions struct {
	command    string
	configPath string
	debug      bool
	tripFile   string
	jsonOutput bool
	noSave     bool
}

// parseArgs reads global flags and the subcommand. Flags may appear before
// or after the command name.
func parseArgs(args []string) (cliOptions, error) {
	var (
		opts        cliOptions
		helpFlag    bool
		versionFlag bool
		positional  []string
	)

	i := 0
	for i < len(args) {
		switch args[i] {
		case "-h", "--help":
			helpFlag = true
			i++
		case "-v", "--version":
			versionFlag = true
			i++
		case "-c", "--config":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--config requires a value")
			}
			opts.configPath = args[i+1]
			i += 2
		case "-d", "--debug":
			opts.debug = true
			i++
		case "-f", "--file":
			if i+1 >= len(args) {
				return opts, fmt.Errorf("--file requires a value")
			}
			opts.tripFile = args[i+1]
			i += 2
		case "--json":
			opts.jsonOutput = true
			i++
		case "--no-save":
			opts.noSave = true
			i++
		default:
			if strings.HasPrefix(args[i], "-") {
				return opts, fmt.Errorf("unknown option: %s", args[i])
			}
			positional = append(positional, args[i])
			i++
		}
	}

	switch {
	case helpFlag:
		opts.command = "help"
		return opts, nil
	case versionFlag:
		opts.command = "version"
		return opts, nil
	case len(positional) == 0:
		opts.command = "menu"
	case len(positional) > 1:
		return opts, fmt.Errorf("unexpected argument: %s", positional[1])
	default:
		opts.command = positional[0]
	}

	switch opts.command {
	case "help", "version":
	case "estimate":
		if opts.tripFile == "" {
			return opts, fmt.Errorf("estimate requires --file")
		}
	case "menu", "history", "components":
		if opts.tripFile != "" || opts.jsonOutput || opts.noSave {
			return opts, fmt.Errorf("--file, --json and --no-save only apply to the estimate command")
		}
	default:
		return opts, fmt.Errorf("unknown command: %s", opts.command)
	}
	return opts, nil
}

// run executes the command line and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintf(stderr, "Run '%s --help' for usage.\n", appName)
		return 1
	}

	switch opts.command {
	case "help":
		printHelp(stdout)
		return 0
	case "version":
		printVersion(stdout)
		return 0
	}

	loadEnvFiles()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	closeLog, err := setupLogging(cfg.Logging, opts.debug, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closeLog()

	if cfg.Source != "" {
		log.Debug().Str("path", cfg.Source).Msg("config: loaded")
	}

	a, err := newApp(cfg, stdin, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	switch opts.command {
	case "menu":
		a.runMenu()
	case "history":
		a.showHistory()
	case "components":
		a.listComponents()
	case "estimate":
		if err := a.runEstimateFile(opts.tripFile, opts.jsonOutput, !opts.noSave); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
	}
	return 0
}

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s %s\n", appName, Version)
	fmt.Fprintf(w, "Runtime: %s/%s\n", runtime.GOOS, runtime.GOARCH)
}

func printHelp(w io.Writer) {
	fmt.Fprintln(w, "Intelligent Trip Cost Estimator")
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Usage: %s [COMMAND] [OPTIONS]\n", appName)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  menu                 Interactive menu (default)")
	fmt.Fprintln(w, "  estimate -f FILE     Estimate a trip described in a YAML file")
	fmt.Fprintln(w, "  history              Show the saved trip history")
	fmt.Fprintln(w, "  components           List the cost components in evaluation order")
	fmt.Fprintln(w, "  version              Show version information")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fmt.Fprintln(w, "  -c, --config FILE    Config file (default: ~/.config/trip-estimator/config.yaml, ./trip-estimator.yaml)")
	fmt.Fprintln(w, "  -d, --debug          Enable debug logging")
	fmt.Fprintln(w, "  -f, --file FILE      Trip file for the estimate command")
	fmt.Fprintln(w, "  --json               Print the estimate as JSON")
	fmt.Fprintln(w, "  --no-save            Do not append the estimate to the history log")
	fmt.Fprintln(w, "  -v, --version        Show version information")
	fmt.Fprintln(w, "  -h, --help           Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Examples:")
	fmt.Fprintf(w, "  %s                                   Interactive mode\n", appName)
	fmt.Fprintf(w, "  %s estimate -f goa.yaml --json       JSON estimate\n", appName)
	fmt.Fprintf(w, "  %s history -c ./trip-estimator.yaml  History from a custom log\n", appName)
}
