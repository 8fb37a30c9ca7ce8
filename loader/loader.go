// Package loader reads raw read sets into validated fragments.
//
// Two layouts are understood:
//
//	lines  one read per line; blank lines and lines starting with '#' are skipped
//	fasta  '>' header lines start a record, the following lines are its sequence;
//	       ';' comment lines and blank lines are skipped
//
// Every record is validated with fragment.New. Invalid records are never
// dropped or repaired: each one yields a *RecordError and all of them are
// returned together, combined with go.uber.org/multierr.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/multierr"

	"github.com/katalvlaran/sequencer/fragment"
)

// maxLineSize bounds a single input line; FASTA sequence lines are usually short
// but single-line reads of assembled contigs are not.
const maxLineSize = 16 * 1024 * 1024

// Option tunes how records are turned into fragments.
type Option func(*options)

type options struct {
	upperCase bool
}

// WithUpperCase folds lower-case symbols before validation, so soft-masked
// input (acgt) is accepted. Fragments themselves never fold case.
func WithUpperCase(enabled bool) Option {
	return func(o *options) { o.upperCase = enabled }
}

// record is one raw entry before validation.
type record struct {
	line int
	name string
	seq  string
}

// ReadFile opens path and reads it with Read.
func ReadFile(path string, format Format, opts ...Option) ([]fragment.Fragment, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open read set: %w", err)
	}
	defer f.Close()

	return Read(f, format, opts...)
}

// Read parses r in the given format and validates every record.
//
// On success the fragments are returned in input order. If any record is
// invalid, Read returns nil and an error combining one *RecordError per bad
// record; use multierr.Errors to inspect them individually.
func Read(r io.Reader, format Format, opts ...Option) ([]fragment.Fragment, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	lines, err := readLines(r)
	if err != nil {
		return nil, err
	}

	if format == FormatAuto {
		format = detect(lines)
	}

	var recs []record
	switch format {
	case FormatLines:
		recs = splitLines(lines)
	case FormatFASTA:
		recs, err = splitFASTA(lines)
	default:
		return nil, fmt.Errorf("%w %s", ErrUnknownFormat, format)
	}

	frags := make([]fragment.Fragment, 0, len(recs))
	for _, rec := range recs {
		seq := rec.seq
		if o.upperCase {
			seq = strings.ToUpper(seq)
		}
		f, ferr := fragment.New(seq)
		if ferr != nil {
			err = multierr.Append(err, &RecordError{Line: rec.line, Name: rec.name, Err: ferr})
			continue
		}
		frags = append(frags, f)
	}
	if err != nil {
		return nil, err
	}

	return frags, nil
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("unable to read input: %w", err)
	}

	return lines, nil
}

// detect looks at the first non-blank line only.
func detect(lines []string) Format {
	for _, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" {
			continue
		}
		if strings.HasPrefix(l, ">") {
			return FormatFASTA
		}
		return FormatLines
	}

	return FormatLines
}

func splitLines(lines []string) []record {
	var recs []record
	for i, l := range lines {
		l = strings.TrimSpace(l)
		if l == "" || strings.HasPrefix(l, "#") {
			continue
		}
		recs = append(recs, record{line: i + 1, seq: l})
	}

	return recs
}

func splitFASTA(lines []string) ([]record, error) {
	var (
		recs []record
		cur  *record
		sb   strings.Builder
		err  error
	)
	flush := func() {
		if cur != nil {
			cur.seq = sb.String()
			recs = append(recs, *cur)
			sb.Reset()
		}
	}

	for i, l := range lines {
		l = strings.TrimSpace(l)
		switch {
		case l == "" || strings.HasPrefix(l, ";"):
			continue
		case strings.HasPrefix(l, ">"):
			flush()
			name := strings.TrimSpace(l[1:])
			if fields := strings.Fields(name); len(fields) > 0 {
				name = fields[0]
			}
			cur = &record{line: i + 1, name: name}
		case cur == nil:
			err = multierr.Append(err, &RecordError{Line: i + 1, Err: ErrMissingHeader})
		default:
			sb.WriteString(l)
		}
	}
	flush()

	return recs, err
}
