// Package corpus — streaming frequency accumulation.
package corpus

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ErrEmptyCorpus indicates that a scan produced no usable characters.
var ErrEmptyCorpus = errors.New("corpus: no characters collected")

// Options configures scanning.
//
// FoldCase    – lowercase all input before counting.
// MaxLineLen  – lines longer than this many bytes are skipped (0 = no limit).
type Options struct {
	FoldCase   bool
	MaxLineLen int
}

// DefaultOptions keeps case (a layout places upper and lower case
// separately) and skips pathological lines beyond 4 KiB.
func DefaultOptions() Options {
	return Options{
		FoldCase:   false,
		MaxLineLen: 4096,
	}
}

// Stats holds the accumulated frequency tables of one corpus.
type Stats struct {
	Chars    map[rune]int
	Bigrams  map[[2]rune]int
	Trigrams map[[3]rune]int

	TotalChars int
	Words      int
	Lines      int
}

// NewStats returns an empty Stats with allocated tables.
func NewStats() *Stats {
	return &Stats{
		Chars:    make(map[rune]int),
		Bigrams:  make(map[[2]rune]int),
		Trigrams: make(map[[3]rune]int),
	}
}

// Validate reports ErrEmptyCorpus when the stats carry no characters.
func (s *Stats) Validate() error {
	if s.TotalChars == 0 {
		return ErrEmptyCorpus
	}

	return nil
}

// TotalBigrams returns the sum of all bigram frequencies.
// Complexity: O(B) over distinct bigrams.
func (s *Stats) TotalBigrams() int {
	total := 0
	for _, n := range s.Bigrams {
		total += n
	}

	return total
}

// Scan reads r to EOF and accumulates statistics.
//
// Whitespace separates words and breaks n-gram continuity; every
// non-whitespace rune is counted. Scanner errors are wrapped and returned.
//
// Complexity: O(N) over input runes.
func Scan(r io.Reader, opts Options) (*Stats, error) {
	stats := NewStats()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)

	for sc.Scan() {
		line := sc.Text()
		stats.Lines++

		if opts.MaxLineLen > 0 && len(line) > opts.MaxLineLen {
			continue
		}
		if opts.FoldCase {
			line = strings.ToLower(line)
		}

		stats.Words += len(strings.Fields(line))
		accumulateLine(stats, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("corpus: reading input: %w", err)
	}

	return stats, nil
}

// ScanFile opens path and scans it.
func ScanFile(path string, opts Options) (*Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("corpus: open %s: %w", path, err)
	}
	defer f.Close()

	return Scan(f, opts)
}

// accumulateLine counts characters and n-grams within a single line.
// Whitespace resets the n-gram window so "a b" yields no bigram (a,b).
func accumulateLine(stats *Stats, line string) {
	var (
		prev1, prev2 rune // previous and before-previous runes of the window
		have1, have2 bool
	)
	for _, ch := range line {
		if unicode.IsSpace(ch) {
			have1, have2 = false, false

			continue
		}

		stats.Chars[ch]++
		stats.TotalChars++

		if have1 {
			stats.Bigrams[[2]rune{prev1, ch}]++
		}
		if have2 {
			stats.Trigrams[[3]rune{prev2, prev1, ch}]++
		}

		prev2, have2 = prev1, have1
		prev1, have1 = ch, true
	}
}
