package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffpack"
)

const progName = "huffpack"

const usageMessageRaw = `
Usage: huffpack OPTIONS SUBCOMMAND FILE

Subcommands:
  pack FILE
	Compress FILE, writing the result to FILE.huff.

  unpack FILE.huff
	Decompress FILE.huff, writing the result to FILE.

Options:
  -d, -debug
	Log debugging detail.
`

const packedSuffix = ".huff"

var log = logging.MustGetLogger(progName)

type nullWriter struct{}

func (n *nullWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

var ourFlags *flag.FlagSet

func usageMessage() string {
	return strings.TrimLeft(usageMessageRaw, "\n")
}

func usageErrorf(detailFmt string, detailArgs ...interface{}) {
	detail := fmt.Sprintf(detailFmt, detailArgs...)
	fmt.Fprintf(os.Stderr, "%s: %s\n%s", progName, detail, usageMessage())
	os.Exit(64)
}

func exitError(err error) {
	fmt.Fprintf(os.Stderr, "%s: %s\n", progName, err.Error())
	os.Exit(1)
}

var leveledLogBackend logging.Leveled

func startLogging() {
	backend := logging.NewLogBackend(os.Stderr, progName+": ", 0)
	formatSpec := "%{level:8s} | %{message}"
	formatter := logging.MustStringFormatter(formatSpec)
	formatted := logging.NewBackendFormatter(backend, formatter)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.INFO, "")
	logging.SetBackend(leveled)
	leveledLogBackend = leveled
}

func fileSize(f *os.File) int64 {
	info, err := f.Stat()
	if err != nil {
		return -1
	}
	return info.Size()
}

func packFile(path string) error {
	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	log.Debugf("writing %s", path+packedSuffix)
	out, err := os.Create(path + packedSuffix)
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if err := huffpack.Compress(w, in); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	log.Infof("packed %s: %d -> %d bytes", path, fileSize(in), fileSize(out))
	return nil
}

func unpackFile(path string) error {
	if !strings.HasSuffix(path, packedSuffix) {
		return fmt.Errorf("file to unpack must be named something%s", packedSuffix)
	}

	in, err := os.Open(path)
	if err != nil {
		return err
	}
	defer in.Close()

	log.Debugf("writing %s", strings.TrimSuffix(path, packedSuffix))
	out, err := os.Create(strings.TrimSuffix(path, packedSuffix))
	if err != nil {
		return err
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	if err := huffpack.Decompress(w, in); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return err
	}

	log.Infof("unpacked %s: %d -> %d bytes", path, fileSize(in), fileSize(out))
	return nil
}

func main() {
	startLogging()

	ourFlags = flag.NewFlagSet(progName, flag.ContinueOnError)
	ourFlags.Usage = func() {}
	ourFlags.SetOutput(&nullWriter{})

	// Usage strings are hardcoded above.

	var debugLogging bool
	ourFlags.BoolVar(&debugLogging, "debug", false, "")
	ourFlags.BoolVar(&debugLogging, "d", false, "")

	argErr := ourFlags.Parse(os.Args[1:])
	if argErr == flag.ErrHelp {
		io.WriteString(os.Stdout, usageMessage())
		os.Exit(0)
	} else if argErr != nil {
		usageErrorf("%s", argErr.Error())
	}

	if debugLogging {
		leveledLogBackend.SetLevel(logging.DEBUG, "")
	}

	args := ourFlags.Args()
	if len(args) != 2 {
		usageErrorf("expected SUBCOMMAND FILE")
	}

	var err error
	switch args[0] {
	case "pack":
		err = packFile(args[1])
	case "unpack":
		err = unpackFile(args[1])
	default:
		usageErrorf("unknown subcommand \"%s\"", args[0])
	}

	if err != nil {
		exitError(err)
	}
}
