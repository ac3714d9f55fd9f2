// Package ioformat reads and writes the plain-text problem and solution
// formats, a token-based scanner in the same style as the original
// Placer::ReadFile/WriteFile (our/src/placer.cpp), rather than any
// structured encoding.
package ioformat

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/CGLemon/2025NCTU-placement/internal/model"
)

// ParseError reports a malformed or inconsistent input file. Its message
// names the offending token or block but not its position in the file.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return "ioformat: " + e.Msg }

func parseErrf(format string, args ...any) error {
	return &ParseError{Msg: fmt.Sprintf(format, args...)}
}

// tokenizer pulls whitespace-delimited tokens across line boundaries,
// matching the C++ >> operator's behavior on an ifstream.
type tokenizer struct {
	sc   *bufio.Scanner
	next []string
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) token() (string, bool) {
	if len(t.next) > 0 {
		tok := t.next[0]
		t.next = t.next[1:]
		return tok, true
	}
	if !t.sc.Scan() {
		return "", false
	}
	return t.sc.Text(), true
}

func (t *tokenizer) mustToken() (string, error) {
	tok, ok := t.token()
	if !ok {
		return "", parseErrf("unexpected end of input")
	}
	return tok, nil
}

func (t *tokenizer) mustInt() (int, error) {
	tok, err := t.mustToken()
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, parseErrf("expected integer, got %q", tok)
	}
	return n, nil
}

func (t *tokenizer) expect(want string) error {
	tok, err := t.mustToken()
	if err != nil {
		return err
	}
	if tok != want {
		return parseErrf("expected %q, got %q", want, tok)
	}
	return nil
}

// ParseInput reads the HardBlock/SymGroup problem format from r.
//
//	NumHardBlocks <N>
//	HardBlock <name> <w> <h>         (repeated N times)
//	NumSymGroups <M>
//	SymGroup <name> <cnt> [Axis <V|H>]
//	  SymPair <a> <b>
//	  SymSelf <a>                    (cnt lines, repeated M times)
//
// The Axis token is an extension beyond the original format: if absent
// the group takes defaultAxis. A SymPair/SymSelf naming a block not
// declared in the HardBlock section is a fatal *ParseError.
func ParseInput(r io.Reader, defaultAxis model.Axis) ([]model.Block, []model.SymGroup, error) {
	t := newTokenizer(r)

	if err := t.expect("NumHardBlocks"); err != nil {
		return nil, nil, err
	}
	n, err := t.mustInt()
	if err != nil {
		return nil, nil, err
	}
	if n < 0 {
		return nil, nil, parseErrf("NumHardBlocks is negative: %d", n)
	}

	blocks := make([]model.Block, 0, n)
	nameToID := make(map[string]int, n)

	for i := 0; i < n; i++ {
		if err := t.expect("HardBlock"); err != nil {
			return nil, nil, err
		}
		name, err := t.mustToken()
		if err != nil {
			return nil, nil, err
		}
		w, err := t.mustInt()
		if err != nil {
			return nil, nil, err
		}
		h, err := t.mustInt()
		if err != nil {
			return nil, nil, err
		}
		if _, dup := nameToID[name]; dup {
			return nil, nil, parseErrf("duplicate block name %q", name)
		}
		nameToID[name] = len(blocks)
		blocks = append(blocks, model.NewBlock(name, w, h))
	}

	if len(blocks) == 0 {
		return blocks, nil, nil
	}

	if err := t.expect("NumSymGroups"); err != nil {
		return nil, nil, err
	}
	m, err := t.mustInt()
	if err != nil {
		return nil, nil, err
	}
	if m < 0 {
		return nil, nil, parseErrf("NumSymGroups is negative: %d", m)
	}

	groups := make([]model.SymGroup, 0, m)

	for i := 0; i < m; i++ {
		if err := t.expect("SymGroup"); err != nil {
			return nil, nil, err
		}
		name, err := t.mustToken()
		if err != nil {
			return nil, nil, err
		}
		cnt, err := t.mustInt()
		if err != nil {
			return nil, nil, err
		}

		group := model.SymGroup{Name: name, Axis: defaultAxis}

		peek, ok := t.token()
		if ok {
			if peek == "Axis" {
				axisTok, err := t.mustToken()
				if err != nil {
					return nil, nil, err
				}
				axis, ok := model.ParseAxis(strings.ToUpper(axisTok))
				if !ok {
					return nil, nil, parseErrf("group %q: unknown axis token %q", name, axisTok)
				}
				group.Axis = axis
			} else {
				t.next = append([]string{peek}, t.next...)
			}
		}

		for j := 0; j < cnt; j++ {
			kind, err := t.mustToken()
			if err != nil {
				return nil, nil, err
			}
			switch kind {
			case "SymPair":
				a, err := t.mustToken()
				if err != nil {
					return nil, nil, err
				}
				b, err := t.mustToken()
				if err != nil {
					return nil, nil, err
				}
				aid, ok := nameToID[a]
				if !ok {
					return nil, nil, parseErrf("group %q: unknown block %q in SymPair", name, a)
				}
				bid, ok := nameToID[b]
				if !ok {
					return nil, nil, parseErrf("group %q: unknown block %q in SymPair", name, b)
				}
				blocks[aid].GID = i
				blocks[bid].GID = i
				group.Pairs = append(group.Pairs, model.SymPair{A: a, B: b, AID: aid, BID: bid})
			case "SymSelf":
				a, err := t.mustToken()
				if err != nil {
					return nil, nil, err
				}
				id, ok := nameToID[a]
				if !ok {
					return nil, nil, parseErrf("group %q: unknown block %q in SymSelf", name, a)
				}
				blocks[id].GID = i
				group.Selfs = append(group.Selfs, model.SymSelf{A: a, ID: id})
			default:
				return nil, nil, parseErrf("group %q: expected SymPair or SymSelf, got %q", name, kind)
			}
		}

		groups = append(groups, group)
	}

	return blocks, groups, nil
}

// WriteOutput writes the Area/NumHardBlocks solution format to w,
// matching Placer::WriteFile's layout exactly.
func WriteOutput(w io.Writer, area int64, blocks []model.Block) error {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintf(bw, "Area %d\n\n", area); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(bw, "NumHardBlocks %d\n", len(blocks)); err != nil {
		return err
	}
	for _, b := range blocks {
		rot := 0
		if b.Rotated {
			rot = 1
		}
		if _, err := fmt.Fprintf(bw, "%s %d %d %d\n", b.Name, b.X, b.Y, rot); err != nil {
			return err
		}
	}
	return bw.Flush()
}
