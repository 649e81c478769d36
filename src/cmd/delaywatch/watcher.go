package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"delays/src/delaylog"
)

const maxLineLength = 256

// watcher pulls lines off the console.  Reports go to the stats, everything
// else is echoed so you can still see what the board says.
type watcher struct {
	in      io.Reader
	out     io.Writer
	stats   *delaylog.Stats
	verbose int
	buffer  []byte
}

func newWatcher(in io.Reader, out io.Writer, stats *delaylog.Stats, verbose int) *watcher {
	return &watcher{in: in, out: out, stats: stats, verbose: verbose, buffer: make([]byte, maxLineLength)}
}

// Run reads until the board says it is done or the input ends.  Reaching the
// end of the input is not an error.
func (w *watcher) Run() error {
	for {
		line, err := w.readLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if delaylog.IsDone(line) {
			return nil
		}
		r, err := delaylog.ParseReport(line)
		switch {
		case errors.Is(err, delaylog.ErrNotReport):
			fmt.Fprintln(w.out, line)
		case err != nil:
			log.Printf("%v", err)
		default:
			w.stats.Add(r)
			if w.verbose > 0 {
				fmt.Fprintln(w.out, r)
			}
		}
	}
}

// readLine drops control characters (the CR of CR LF included) and anything
// past maxLineLength.
func (w *watcher) readLine() (string, error) {
	data := w.buffer
	count := 0
	dropped := 0
	for {
		r, err := w.in.Read(data[count : count+1])
		if r == 0 && err == nil {
			if w.verbose > 1 {
				log.Printf("retrying failed read (size zero)")
			}
			continue
		}
		if err != nil {
			if err == io.EOF && count > 0 {
				return string(data[:count]), nil
			}
			return "", err
		}
		switch {
		case data[count] < 32 && data[count] != 10:
			continue
		case data[count] == 10:
			if dropped != 0 {
				log.Printf("dropped %d characters from line", dropped)
			}
			return string(data[:count]), nil
		default:
			if count == len(data)-1 {
				dropped++
				continue
			}
			count++
		}
	}
}
