// Package browse is an interactive terminal walk over a parsed directory.
// Command evaluation lives in Session, separate from the readline loop, so
// it can be exercised without a terminal.
package browse

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/horhof/datafort.network/internal/tree"
)

// Session is one navigation state over a store: the current node, or the
// forest root when current is nil.
type Session struct {
	store   *tree.Store
	current *tree.Node
}

func NewSession(store *tree.Store) *Session {
	return &Session{store: store}
}

// Current returns the node the session points at, nil at the forest root.
func (s *Session) Current() *tree.Node { return s.current }

// Prompt returns the location shown before each input line.
func (s *Session) Prompt() string {
	if s.current == nil {
		return "/"
	}
	return s.current.Path()
}

// Eval runs one command line and returns its output. Exit requests surface
// as io.EOF.
func (s *Session) Eval(line string) (string, error) {
	args := strings.Fields(strings.TrimSpace(line))
	if len(args) == 0 {
		return "", nil
	}

	switch args[0] {
	case "ls":
		if len(args) > 1 {
			node, err := s.store.Find(args[1])
			if err != nil {
				return "", err
			}
			return listing(node.Children()), nil
		}
		return listing(s.children()), nil
	case "cd":
		if len(args) < 2 {
			return "", fmt.Errorf("usage: cd <name|path|..|/>")
		}
		return "", s.changeTo(args[1])
	case "pwd":
		return s.Prompt(), nil
	case "open":
		if len(args) < 2 {
			return "", fmt.Errorf("usage: open <name|path>")
		}
		return s.open(args[1])
	case "meta":
		m := s.store.Metadata()
		return fmt.Sprintf("title: %s\nsplash: %s", m.Title, m.Splash), nil
	case "help":
		return helpText, nil
	case "exit", "quit":
		return "", io.EOF
	default:
		return "", fmt.Errorf("unknown command: %s", args[0])
	}
}

const helpText = `ls [path]   list children of the current node or of path
cd <target> descend into a child, jump to a dotted path, ".." or "/"
pwd         print the current path
open <name> print the URL of a leaf entry
meta        print directory title and splash
exit        leave the browser`

func (s *Session) children() []*tree.Node {
	if s.current == nil {
		return s.store.Roots()
	}
	return s.current.Children()
}

func (s *Session) changeTo(target string) error {
	switch target {
	case "/":
		s.current = nil
		return nil
	case "..":
		if s.current != nil {
			s.current = s.current.Parent()
		}
		return nil
	}

	// A plain name descends into a child; anything dotted is an absolute
	// path lookup.
	if !strings.Contains(target, tree.PathSeparator) {
		for _, c := range s.children() {
			if c.Name == target {
				s.current = c
				return nil
			}
		}
	}
	node, err := s.store.Find(target)
	if err != nil {
		return err
	}
	s.current = node
	return nil
}

func (s *Session) open(target string) (string, error) {
	var node *tree.Node
	for _, c := range s.children() {
		if c.Name == target {
			node = c
			break
		}
	}
	if node == nil {
		found, err := s.store.Find(target)
		if err != nil {
			return "", err
		}
		node = found
	}
	if node.IsGroup() {
		return "", fmt.Errorf("%s is a group, not a leaf entry", node.Path())
	}
	return node.URL, nil
}

func listing(nodes []*tree.Node) string {
	if len(nodes) == 0 {
		return "(empty)"
	}
	var b strings.Builder
	for _, n := range nodes {
		switch {
		case n.IsLeaf():
			fmt.Fprintf(&b, "%s\t%s\n", n.Name, n.URL)
		default:
			fmt.Fprintf(&b, "%s/\n", n.Name)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// Run drives a Session over readline until exit or EOF.
func Run(store *tree.Store) error {
	rl, err := readline.New("/ > ")
	if err != nil {
		return err
	}
	defer func() { _ = rl.Close() }()

	sess := NewSession(store)
	for {
		rl.SetPrompt(sess.Prompt() + " > ")
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		out, err := sess.Eval(line)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		if out != "" {
			fmt.Println(out)
		}
	}
}
