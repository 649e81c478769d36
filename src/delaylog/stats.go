package delaylog

import (
	"fmt"
	"io"
	"sort"
)

// KindStats accumulates the reports of one kind of wait.
type KindStats struct {
	Kind     string
	Count    int
	Short    int
	Min, Max uint64
	Total    uint64
}

func (k KindStats) Mean() uint64 {
	if k.Count == 0 {
		return 0
	}
	return k.Total / uint64(k.Count)
}

type Stats struct {
	kinds map[string]*KindStats
}

func NewStats() *Stats {
	return &Stats{kinds: make(map[string]*KindStats)}
}

func (s *Stats) Add(r Report) {
	k, ok := s.kinds[r.Kind]
	if !ok {
		k = &KindStats{Kind: r.Kind, Min: r.Elapsed()}
		s.kinds[r.Kind] = k
	}
	e := r.Elapsed()
	k.Count++
	k.Total += e
	if e < k.Min {
		k.Min = e
	}
	if e > k.Max {
		k.Max = e
	}
	if r.Short() {
		k.Short++
	}
}

// Kinds returns a copy of the per-kind numbers, sorted by kind.
func (s *Stats) Kinds() []KindStats {
	result := make([]KindStats, 0, len(s.kinds))
	for _, k := range s.kinds {
		result = append(result, *k)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Kind < result[j].Kind })
	return result
}

func (s *Stats) WriteSummary(w io.Writer) error {
	if len(s.kinds) == 0 {
		_, err := fmt.Fprintln(w, "no delay reports")
		return err
	}
	for _, k := range s.Kinds() {
		_, err := fmt.Fprintf(w, "%-9s n=%-4d min=%-8d max=%-8d mean=%-8d short=%d\n",
			k.Kind, k.Count, k.Min, k.Max, k.Mean(), k.Short)
		if err != nil {
			return err
		}
	}
	return nil
}
