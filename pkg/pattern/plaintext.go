package pattern

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"lifegrid/pkg/core"
)

// Parse reads a pattern in plaintext .cells format. Lines starting with '!'
// are comments, and "!Name: x" overrides name. 'O' and '*' are live cells,
// '.' is dead. Short rows are padded with dead cells.
func Parse(name string, r io.Reader) (Pattern, error) {
	p := Pattern{Name: name}
	sc := bufio.NewScanner(r)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimRight(sc.Text(), " \t\r")
		if strings.HasPrefix(line, "!") {
			if v, ok := strings.CutPrefix(line, "!Name:"); ok {
				p.Name = strings.TrimSpace(v)
			}
			continue
		}
		for col, ch := range line {
			switch ch {
			case 'O', '*':
				p.Cells = append(p.Cells, core.Cell{Row: p.Rows, Col: col})
			case '.':
			default:
				return Pattern{}, fmt.Errorf("pattern %q line %d: unexpected character %q", p.Name, lineNo, ch)
			}
		}
		if len(line) > p.Cols {
			p.Cols = len(line)
		}
		p.Rows++
	}
	if err := sc.Err(); err != nil {
		return Pattern{}, fmt.Errorf("pattern %q: %w", p.Name, err)
	}
	return p, nil
}

// MustParse is Parse for built-in patterns; it panics on malformed input.
func MustParse(name, src string) Pattern {
	p, err := Parse(name, strings.NewReader(src))
	if err != nil {
		panic(err)
	}
	return p
}

// Load parses the .cells file at path. The file name without its extension
// is used when the file carries no !Name comment.
func Load(path string) (Pattern, error) {
	f, err := os.Open(path)
	if err != nil {
		return Pattern{}, fmt.Errorf("open pattern: %w", err)
	}
	defer f.Close()
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Parse(base, f)
}
