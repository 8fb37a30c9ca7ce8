package loader

import (
	"fmt"
	"strings"
)

// Format selects how raw records are read.
type Format int

const (
	// FormatAuto picks FASTA when the first non-blank line starts with '>',
	// and Lines otherwise.
	FormatAuto Format = iota
	// FormatLines reads one fragment per line.
	FormatLines
	// FormatFASTA reads '>'-headed records whose sequence may span lines.
	FormatFASTA
)

var formatNames = []string{"auto", "lines", "fasta"}

// FormatNames lists the accepted textual format names.
func FormatNames() []string {
	return append([]string(nil), formatNames...)
}

// String implements fmt.Stringer.
func (f Format) String() string {
	if f < 0 || int(f) >= len(formatNames) {
		return fmt.Sprintf("Format(%d)", int(f))
	}
	return formatNames[f]
}

// ParseFormat converts a case-insensitive name into a Format.
func ParseFormat(name string) (Format, error) {
	for i, n := range formatNames {
		if strings.EqualFold(n, strings.TrimSpace(name)) {
			return Format(i), nil
		}
	}
	return FormatAuto, fmt.Errorf("%w %q, must be one of %s", ErrUnknownFormat, name, strings.Join(formatNames, ", "))
}

// MarshalText implements encoding.TextMarshaler.
func (f Format) MarshalText() ([]byte, error) {
	return []byte(f.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *Format) UnmarshalText(text []byte) error {
	v, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = v
	return nil
}
