// Package corpus extracts frequency statistics from training text — the
// keylogger dumps or sample documents a layout is optimized against.
//
// Scan streams the input line by line and accumulates:
//
//   - character frequencies (how often each rune is typed),
//   - bigram frequencies (ordered pairs of consecutive runes),
//   - trigram frequencies,
//   - total character, word, and line counts.
//
// Newlines break n-gram continuity: the last rune of one line and the first
// rune of the next never form a bigram.
//
// Options control case folding and the maximum accepted line length;
// overlong lines are skipped rather than failing the whole scan.
//
// Errors (sentinel):
//
//   - ErrEmptyCorpus from Stats.Validate when no characters were collected.
package corpus
