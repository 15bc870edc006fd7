// Command huff compresses and decompresses text files with Huffman coding.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/op/go-logging"

	"github.com/ilindan-dev/huff-cli/internal/storage"
	"github.com/ilindan-dev/huff-cli/internal/workflow"
)

const progName = "huff"

var log = logging.MustGetLogger("huff")

const (
	exitFailure = 1
	exitUsage   = 2
)

func usageMessage() string {
	return `Usage: huff [-d] encode INPUT OUTPUT [--print-tree] [--binary]
       huff [-d] decode INPUT OUTPUT [--print-tree]

Commands:
  encode        Compress the text file INPUT into the artifact OUTPUT.
  decode        Restore the text of the artifact INPUT into OUTPUT.

Options:
  -d, --debug   Log debugging detail.
  --print-tree  Print the Huffman tree to standard output.
  --binary      Accept any byte in INPUT instead of ASCII text only.
`
}

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func usageErrorf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, fmt.Sprintf(format, args...))
	io.WriteString(os.Stderr, usageMessage())
	os.Exit(exitUsage)
}

func exitError(err error) {
	log.Errorf("%v", err)
	os.Exit(exitFailure)
}

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} %{module:-16s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {}
	fs.SetOutput(&nullWriter{})
	return fs
}

// parseInterspersed parses args with fs, allowing flags after positional
// arguments, and returns the positional arguments in order.
func parseInterspersed(fs *flag.FlagSet, args []string) ([]string, error) {
	var positional []string
	for {
		if err := fs.Parse(args); err != nil {
			return nil, err
		}
		args = fs.Args()
		if len(args) == 0 {
			return positional, nil
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
}

type commandArgs struct {
	opts   workflow.Options
	binary bool
}

func parseCommand(command string, args []string) (commandArgs, error) {
	var out commandArgs
	fs := newFlagSet(progName + " " + command)
	fs.BoolVar(&out.opts.PrintTree, "print-tree", false, "")
	if command == "encode" {
		fs.BoolVar(&out.binary, "binary", false, "")
	}

	positional, err := parseInterspersed(fs, args)
	if err != nil {
		return commandArgs{}, err
	}
	if len(positional) != 2 {
		return commandArgs{}, fmt.Errorf("%s: expected INPUT and OUTPUT, got %d arguments", command, len(positional))
	}
	out.opts.Input = positional[0]
	out.opts.Output = positional[1]
	out.opts.TreeOutput = os.Stdout
	return out, nil
}

func main() {
	startLogging()

	ourFlags := newFlagSet(progName)

	var debugLogging bool
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if errors.Is(argErr, flag.ErrHelp) {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	if ourFlags.NArg() == 0 {
		usageErrorf("missing command")
	}

	command := ourFlags.Arg(0)
	if command != "encode" && command != "decode" {
		usageErrorf("bad command \"%s\"", command)
	}

	parsed, err := parseCommand(command, ourFlags.Args()[1:])
	if errors.Is(err, flag.ErrHelp) {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if err != nil {
		usageErrorf("%s", err.Error())
	}

	alphabet := storage.ASCII
	if parsed.binary {
		alphabet = storage.Bytes
	}
	store := storage.FileStore{Alphabet: alphabet}

	switch command {
	case "encode":
		_, err = workflow.Encode(store, parsed.opts)
	case "decode":
		err = workflow.Decode(store, parsed.opts)
	}
	if err != nil {
		exitError(err)
	}
}
