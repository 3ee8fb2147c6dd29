// Released under an MIT license. See LICENSE.

// Package options parses nemo's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	args        []string
	command     string
	debug       bool
	interactive bool
	script      string
	usage       = `nemo

Usage:
  nemo [-d] SCRIPT [ARGUMENTS...]
  nemo [-d] -c COMMAND [ARGUMENTS...]
  nemo [-di]
  nemo -h
  nemo -v

Arguments:
  ARGUMENTS  Values returned by arg(1), arg(2), ...
  SCRIPT     Path to nemo script. Also returned by arg(0).

Options:
  -c, --command=COMMAND  Evaluate the specified command.
  -d, --debug            Log evaluation details to stderr.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.
  -v, --version          Print nemo version.

If nemo's stdin is a TTY, and nemo was invoked with no script or command,
interactive mode is enabled. Otherwise, nemo reads a program from stdin.
`
)

// Args returns the script name followed by the script's arguments.
func Args() []string {
	return args
}

// Command returns the command passed with -c, if any.
func Command() string {
	return command
}

// Debug is true when debug logging was requested.
func Debug() bool {
	return debug
}

// Interactive is true when nemo should start a REPL.
func Interactive() bool {
	return interactive
}

// Parse parses argv, the command line without the program name. It exits
// after printing help or the version, or when argv is invalid.
func Parse(argv []string, version string) error {
	opts, err := docopt.ParseArgs(usage, argv, version)
	if err != nil {
		return err
	}

	command, _ = opts.String("--command")
	debug, _ = opts.Bool("--debug")
	interactive = false
	script, _ = opts.String("SCRIPT")

	name := "nemo"

	if script != "" {
		name = script
	} else if command == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	args, _ = opts["ARGUMENTS"].([]string)
	args = append([]string{name}, args...)

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert

	return nil
}

// Script returns the path of the script to run, if any.
func Script() string {
	return script
}
