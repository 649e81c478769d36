package delaylog

import (
	"errors"
	"testing"
)

func TestParseGoodReport(t *testing.T) {
	r, err := ParseReport("@delay systimer 1000 5000 6003\r")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := Report{Kind: KindSysTimer, Requested: 1000, Start: 5000, End: 6003}
	if r != expected {
		t.Errorf("expected %+v but got %+v", expected, r)
	}
	if r.Elapsed() != 1003 {
		t.Errorf("expected 1003 elapsed but got %d", r.Elapsed())
	}
	if r.Short() {
		t.Errorf("wait of 1003 for 1000 is not short")
	}
	if r.String() != "@delay systimer 1000 5000 6003" {
		t.Errorf("bad formatting: %q", r.String())
	}
}

func TestParseNotReport(t *testing.T) {
	for _, line := range []string{"", "hello from the pi", "@delayed 1 2 3 4", "@done"} {
		if _, err := ParseReport(line); !errors.Is(err, ErrNotReport) {
			t.Errorf("%q: expected ErrNotReport but got %v", line, err)
		}
	}
}

func TestParseMalformed(t *testing.T) {
	for _, line := range []string{
		"@delay systimer 1000 5000",
		"@delay systimer 1000 5000 6000 7000",
		"@delay systimer ten 5000 6000",
		"@delay counter 10 -5 6000",
	} {
		if _, err := ParseReport(line); !errors.Is(err, ErrMalformedReport) {
			t.Errorf("%q: expected ErrMalformedReport but got %v", line, err)
		}
	}
}

func TestShortOnlyForMicroseconds(t *testing.T) {
	checkShort(t, Report{Kind: KindSysTimer, Requested: 10, Start: 0, End: 0}, true)
	checkShort(t, Report{Kind: KindCounter, Requested: 10, Start: 5, End: 14}, true)
	checkShort(t, Report{Kind: KindCounter, Requested: 10, Start: 5, End: 15}, false)
	checkShort(t, Report{Kind: KindCycles, Requested: 1_000_000, Start: 5, End: 6}, false)
	checkShort(t, Report{Kind: KindGenericTimer, Requested: 5, Start: 5, End: 6}, false)
}

func TestElapsedBackwards(t *testing.T) {
	r := Report{Kind: KindSysTimer, Start: 10, End: 3}
	if r.Elapsed() != 0 {
		t.Errorf("expected zero elapsed for a backwards timer, got %d", r.Elapsed())
	}
}

func TestIsDone(t *testing.T) {
	if !IsDone("@done\r") {
		t.Errorf("expected @done to end the run")
	}
	if IsDone("@delay cycles 1 2 3") {
		t.Errorf("report is not the end of the run")
	}
}

func checkShort(t *testing.T, r Report, expected bool) {
	t.Helper()
	if r.Short() != expected {
		t.Errorf("%v: expected short=%v", r, expected)
	}
}
