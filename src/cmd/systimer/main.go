//go:build linux && !tinygo
// +build linux,!tinygo

// Command systimer exercises the delay waits from linux user space on a pi,
// reaching the system timer through /dev/mem.  Needs root (or /dev/gpiomem
// permissions) to map the peripherals.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"delays/src/delay"
	"delays/src/delaylog"
	"delays/src/hardware/bcm2835"
	"delays/src/hardware/mmio"
	"delays/src/hardware/rpi"
)

var helpFlag = flag.Bool("h", false, "get usage info")
var boardFlag = flag.String("board", rpi.BoardRPi3, "board model, one of rpi3 or rpi4")
var memFlag = flag.String("mem", "/dev/mem", "device file to map the peripherals from")
var waitFlag = flag.Uint64("wait", 1000, "microseconds to wait each time")
var countFlag = flag.Int("n", 5, "number of waits of each kind")
var verbose = flag.Int("v", 0, "verbosity level: 0 terse (default), 1 each wait, 2 show everything")

func main() {
	flag.Parse()
	if *helpFlag {
		usage()
	}
	board, err := rpi.LookupBoard(*boardFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}
	mem, err := mmio.OpenDevMem(*memFlag, board.MemoryMappedIO, bcm2835.SysTimerCounterOffset, 8)
	if err != nil {
		log.Fatalf("unable to map the system timer: %v", err)
	}
	defer mem.Close()
	st := bcm2835.NewSysTimer(mem)

	first := st.Counter()
	if *verbose > 1 {
		log.Printf("@@@ %s peripherals at %x, system timer at %x", board.Name, board.MemoryMappedIO,
			board.MemoryMappedIO+bcm2835.SysTimerCounterOffset)
	}
	log.Printf("system timer: %d musecs since reset (%v)", first, time.Duration(first)*time.Microsecond)
	if first == 0 {
		log.Printf("system timer reads zero, emulated? system timer waits will return at once")
	}

	stats := delaylog.NewStats()
	for i := 0; i < *countFlag; i++ {
		r, host := measure(st, delaylog.KindSysTimer, *waitFlag, func() {
			delay.WaitMuSecSysTimer(st, *waitFlag)
		})
		record(stats, r, host)
	}
	counterWaits(st, stats)

	if err := stats.WriteSummary(os.Stdout); err != nil {
		log.Fatalf("unable to write summary: %v", err)
	}
}

// measure runs wait, timing it with both the system timer and the host clock.
func measure(c delay.MicrosecondCounter, kind string, n uint64, wait func()) (delaylog.Report, time.Duration) {
	r := delaylog.Report{Kind: kind, Requested: n}
	hostStart := time.Now()
	r.Start = c.Counter()
	wait()
	r.End = c.Counter()
	return r, time.Since(hostStart)
}

func record(stats *delaylog.Stats, r delaylog.Report, host time.Duration) {
	stats.Add(r)
	if *verbose > 0 {
		log.Printf("%s (host clock %v)", r, host)
	}
	if r.Short() {
		log.Printf("short wait: %s", r)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: systimer [flags]\n")
	flag.PrintDefaults()
	os.Exit(1)
}
