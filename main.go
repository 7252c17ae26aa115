package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/inconshreveable/log15"
	libshakebytes "github.com/nogoegst/shakebytes/lib"
	"github.com/nogoegst/shakebytes/util"
)

const (
	exitOK    = 0
	exitIO    = 1
	exitUsage = 2
)

func main() {
	os.Exit(run(os.Args[1:], int(os.Stdin.Fd()), os.Stdout, os.Stderr))
}

// parseArgs takes the trailing <message> <count> verbatim and parses flags
// only from the arguments before them, so any message text is accepted.
// Under -p the message comes from the terminal and only <count> trails.
func parseArgs(fs *flag.FlagSet, passphrase *bool, args []string) ([]string, error) {
	n := 2
	if len(args) < n {
		n = 0
	}
	if err := fs.Parse(args[:len(args)-n]); err != nil {
		return nil, err
	}
	if *passphrase && n == 2 {
		n = 1
		if err := fs.Parse(args[:len(args)-n]); err != nil {
			return nil, err
		}
	}
	positional := append([]string{}, fs.Args()...)
	return append(positional, args[len(args)-n:]...), nil
}

func run(args []string, stdinFd int, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("shakebytes", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var debugFlag = fs.Bool("debug", false,
		"Show what's happening")
	var qrFlag = fs.Bool("qr", false,
		"Print hex of the output in QR code to stderr")
	var passphraseFlag = fs.Bool("p", false,
		"Ask for the message on the terminal instead of the command line")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: shakebytes [-debug] [-qr] <message> <count>\n")
		fmt.Fprintf(stderr, "       shakebytes -p [-debug] [-qr] -- <count>\n")
		fs.PrintDefaults()
	}
	positional, err := parseArgs(fs, passphraseFlag, args)
	if err != nil {
		if err == flag.ErrHelp {
			return exitOK
		}
		return exitUsage
	}

	log := log15.New("component", "shakebytes")
	if *debugFlag {
		log.SetHandler(log15.LvlFilterHandler(log15.LvlDebug, log15.StreamHandler(stderr, log15.LogfmtFormat())))
	} else {
		log.SetHandler(log15.DiscardHandler())
	}

	wantArgs := 2
	if *passphraseFlag {
		wantArgs = 1
	}
	if len(positional) != wantArgs {
		fmt.Fprintf(stderr, "You should specify exactly %d positional arguments, got %d\n", wantArgs, len(positional))
		fs.Usage()
		return exitUsage
	}
	count, err := libshakebytes.ParseCount(positional[wantArgs-1])
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return exitUsage
	}

	p := libshakebytes.Parameters{
		Count:  count,
		QR:     *qrFlag,
		Logger: log,
	}
	if *passphraseFlag {
		p.Message, err = util.ReadMessage(stdinFd, stderr)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return exitIO
		}
	} else {
		p.Message = positional[0]
	}

	if err := libshakebytes.Run(p, stdout, stderr); err != nil {
		log.Error("failed", "err", err)
		fmt.Fprintln(stderr, err)
		if libshakebytes.IsUsage(err) {
			fs.Usage()
			return exitUsage
		}
		return exitIO
	}
	return exitOK
}
