// Command delaywatch listens to the serial console of a pi running the
// delays sample and summarizes the delay reports it prints.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	tty "github.com/mattn/go-tty"

	"delays/src/delaylog"
)

var helpFlag = flag.Bool("h", false, "get usage info")
var ptyFlag = flag.String("p", "", "serial device (or pseudo TTY) the board console is on")
var verbose = flag.Int("v", 0, "verbosity level: 0 terse (default), 1 show reports, 2 show everything")

func main() {
	flag.Parse()
	if *helpFlag || *ptyFlag == "" {
		usage()
	}
	ttyObj, err := tty.OpenDevice(*ptyFlag)
	if err != nil {
		log.Fatalf("unable to open %s: %v", *ptyFlag, err)
	}
	defer ttyObj.Close()
	restore := ttyObj.MustRaw()
	defer restore()

	stats := delaylog.NewStats()
	w := newWatcher(ttyObj.Input(), os.Stdout, stats, *verbose)
	if err := w.Run(); err != nil {
		log.Printf("stopped reading %s: %v", *ptyFlag, err)
	}
	if err := stats.WriteSummary(os.Stdout); err != nil {
		log.Fatalf("unable to write summary: %v", err)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: delaywatch -p <tty> [flags]\n")
	flag.PrintDefaults()
	os.Exit(1)
}
