//go:build linux && !arm64 && !tinygo
// +build linux,!arm64,!tinygo

package main

import (
	"log"

	"delays/src/delay"
	"delays/src/delaylog"
)

func counterWaits(_ delay.MicrosecondCounter, _ *delaylog.Stats) {
	if *verbose > 0 {
		log.Printf("not an arm64 host, no architectural counter to wait on")
	}
}
