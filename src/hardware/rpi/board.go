package rpi

import (
	"errors"
	"fmt"
	"sort"
)

const BoardRPi3 = "rpi3"
const BoardRPi4 = "rpi4"

var ErrUnknownBoard = errors.New("unknown board")

// Board describes where the peripherals of one model of the pi are found in
// the physical address space.  The build-tagged MemoryMappedIO is what board
// code uses; this table is for host tools that pick the board with a flag.
type Board struct {
	Name           string
	MemoryMappedIO uintptr
}

var boards = map[string]Board{
	BoardRPi3: {Name: BoardRPi3, MemoryMappedIO: 0x3F000000},
	BoardRPi4: {Name: BoardRPi4, MemoryMappedIO: 0xFE000000},
}

// LookupBoard returns the board with the given name, or ErrUnknownBoard.
func LookupBoard(name string) (Board, error) {
	b, ok := boards[name]
	if !ok {
		return Board{}, fmt.Errorf("%w: %q (known: %v)", ErrUnknownBoard, name, BoardNames())
	}
	return b, nil
}

// BoardNames is the sorted list of known board names.
func BoardNames() []string {
	result := make([]string, 0, len(boards))
	for n := range boards {
		result = append(result, n)
	}
	sort.Strings(result)
	return result
}
