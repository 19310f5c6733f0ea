package rc

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ParseError reports a malformed line in a style file.
type ParseError struct {
	Line int
	Text string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: missing ':' in %q", e.Line, e.Text)
}

// Parse reads a matplotlib style file: one "key : value" per line, with '#'
// starting a comment. Quoted values are unquoted. Malformed lines are
// skipped; they are reported together in the returned error while the
// well-formed lines are still returned.
func Parse(r io.Reader) (*Params, error) {
	p := &Params{}
	var errs []error

	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := stripComment(sc.Text())
		if strings.TrimSpace(line) == "" {
			continue
		}
		key, value, ok := strings.Cut(line, ":")
		if !ok {
			errs = append(errs, &ParseError{Line: n, Text: strings.TrimSpace(line)})
			continue
		}
		p.Set(strings.TrimSpace(key), unquote(strings.TrimSpace(value)))
	}
	if err := sc.Err(); err != nil {
		return p, err
	}
	return p, errors.Join(errs...)
}

// ParseString is Parse over a string.
func ParseString(s string) (*Params, error) {
	return Parse(strings.NewReader(s))
}

// stripComment drops everything from the first '#' that is not inside
// quotes. Colors such as "#ffffff" are written quoted in style files.
func stripComment(line string) string {
	var quote rune
	for i, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			}
		case r == '"' || r == '\'':
			quote = r
		case r == '#':
			return line[:i]
		}
	}
	return line
}

func unquote(v string) string {
	if len(v) >= 2 {
		if (v[0] == '"' && v[len(v)-1] == '"') || (v[0] == '\'' && v[len(v)-1] == '\'') {
			return v[1 : len(v)-1]
		}
	}
	return v
}

// Format writes p in the style file format accepted by Parse.
func Format(w io.Writer, p *Params) error {
	for _, k := range p.keys {
		v := p.values[k]
		if strings.Contains(v, "#") {
			v = `"` + v + `"`
		}
		if _, err := fmt.Fprintf(w, "%s : %s\n", k, v); err != nil {
			return err
		}
	}
	return nil
}
