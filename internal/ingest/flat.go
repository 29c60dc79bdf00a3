package ingest

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/horhof/datafort.network/internal/tree"
)

// ErrMalformedLine marks any structurally invalid input: a data line with no
// name, a depth jump past the deepest visited level, or a level whose parent
// depth was never seen. A malformed line fails the whole parse; no partial
// store is ever returned.
var ErrMalformedLine = errors.New("malformed line")

// DefaultSeparator is the field separator of the flat format.
const DefaultSeparator = "\t"

// Recognized metadata keys. Anything else on a key=value line is ignored.
const (
	metaTitle  = "title"
	metaSplash = "splash"
)

// flatState carries the depth bookkeeping for one parse: the depth of the
// previous data line, the most recently seen node per depth, and the parent
// the next same-depth line will attach to. It lives on the stack of ParseFlat
// so the parser is reentrant.
type flatState struct {
	lastLevel int
	frontier  map[int]*tree.Node
	parent    *tree.Node
}

// resolveParent updates st.parent for a data line at level. Level 0 returns
// to the root; a deeper line binds to the frontier node one level up; an
// equal level keeps the previous line's parent (sibling).
func (st *flatState) resolveParent(level int) error {
	switch {
	case level == 0:
		st.parent = nil
	case level > st.lastLevel && level != st.lastLevel+1:
		return fmt.Errorf("depth jumps from %d to %d", st.lastLevel, level)
	case level == st.lastLevel:
		// Sibling of the previous data line; parent unchanged.
	default:
		p, ok := st.frontier[level-1]
		if !ok {
			return fmt.Errorf("no node recorded at depth %d", level-1)
		}
		st.parent = p
	}
	return nil
}

// record notes node as the most recently seen occupant of level, overwriting
// any prior one. The overwrite is what lets a later re-descent find the
// right parent.
func (st *flatState) record(level int, node *tree.Node) {
	st.frontier[level] = node
	st.lastLevel = level
}

// ParseFlat reads the separator-delimited flat directory format and builds a
// fully indexed store. Lines without a separator are key=value metadata,
// blank lines are skipped, and every other line is a data line whose leading
// empty fields encode tree depth. Data line fields are, in order: name,
// title, url, description; trailing extras are ignored. An empty sep means
// DefaultSeparator.
func ParseFlat(r io.Reader, sep string) (*tree.Store, error) {
	if sep == "" {
		sep = DefaultSeparator
	}

	store := tree.NewStore()
	var meta tree.Metadata
	st := &flatState{frontier: make(map[int]*tree.Node)}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 1024), 1024*1024)
	lineNum := 0

	for sc.Scan() {
		lineNum++
		line := strings.TrimSuffix(sc.Text(), "\r")
		if line == "" {
			continue
		}

		// A single-column line is metadata. It does not participate in
		// depth bookkeeping, so the frontier state stays untouched.
		if !strings.Contains(line, sep) {
			key, value, ok := strings.Cut(line, "=")
			if !ok {
				continue
			}
			// Last occurrence of a key wins.
			switch key {
			case metaTitle:
				meta.Title = value
			case metaSplash:
				meta.Splash = value
			}
			continue
		}

		fields := strings.Split(line, sep)
		level := 0
		for level < len(fields) && fields[level] == "" {
			level++
		}
		if level == len(fields) {
			return nil, lineErr(lineNum, line, "missing name")
		}

		node := &tree.Node{Name: fields[level]}
		rest := fields[level+1:]
		if len(rest) > 0 {
			node.Title = rest[0]
		}
		if len(rest) > 1 {
			node.URL = rest[1]
		}
		if len(rest) > 2 {
			node.Description = rest[2]
		}

		if err := st.resolveParent(level); err != nil {
			return nil, lineErr(lineNum, line, err.Error())
		}
		if st.parent != nil {
			st.parent.Attach(node)
		}
		// Parents are always fully resolved before their children (the
		// input is pre-order), so the path is final here.
		if err := store.Add(node); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		st.record(level, node)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	store.SetMetadata(meta)
	return store, nil
}

func lineErr(num int, line, reason string) error {
	return fmt.Errorf("line %d %q: %s: %w", num, line, reason, ErrMalformedLine)
}
