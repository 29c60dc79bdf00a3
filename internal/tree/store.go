package tree

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
	"sync"

	"github.com/RoaringBitmap/roaring"
)

var (
	ErrNotFound      = errors.New("node not found")
	ErrDuplicatePath = errors.New("duplicate path")
)

// Metadata holds the document-level fields of a directory source.
type Metadata struct {
	Title  string
	Splash string
}

// Store owns the parsed forest and indexes every node by its canonical path.
// All writes happen during parsing; afterwards the store is read-only and
// safe for concurrent lookups.
type Store struct {
	mu    sync.RWMutex
	meta  Metadata
	roots []*Node
	index map[string]*Node

	// Roaring bitmap index: URL host → set of internal leaf IDs, for
	// reverse lookups ("which entries point at this host"). Internal IDs
	// are assigned in insertion order, so decoding a bitmap in ascending
	// order preserves input order.
	hostToNodes map[string]*roaring.Bitmap
	intToNode   []*Node
}

func NewStore() *Store {
	return &Store{
		index:       make(map[string]*Node),
		hostToNodes: make(map[string]*roaring.Bitmap),
	}
}

// SetMetadata replaces the store's document metadata. Called by parsers only.
func (s *Store) SetMetadata(m Metadata) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.meta = m
}

// Metadata returns the document-level title and splash.
func (s *Store) Metadata() Metadata {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.meta
}

// Add registers a node in the path index and, if it has no parent, appends it
// to the root list. The caller must already have attached the node to its
// parent; Add never performs attachment. A path collision fails with
// ErrDuplicatePath.
func (s *Store) Add(n *Node) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := n.Path()
	if _, exists := s.index[path]; exists {
		return fmt.Errorf("%w: %q", ErrDuplicatePath, path)
	}
	s.index[path] = n
	if n.IsRoot() {
		s.roots = append(s.roots, n)
	}
	s.indexHost(n)
	return nil
}

// indexHost assigns an internal bitmap ID and registers leaf entries under
// their URL host. Must be called with s.mu held.
func (s *Store) indexHost(n *Node) {
	if !n.IsLeaf() {
		return
	}
	u, err := url.Parse(n.URL)
	if err != nil || u.Host == "" {
		return
	}
	host := strings.ToLower(u.Host)

	intID := uint32(len(s.intToNode))
	s.intToNode = append(s.intToNode, n)

	bm, ok := s.hostToNodes[host]
	if !ok {
		bm = roaring.New()
		s.hostToNodes[host] = bm
	}
	bm.Add(intID)
}

// Roots returns the ordered top-level nodes. The returned slice is the
// store's own; callers must not modify it.
func (s *Store) Roots() []*Node {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.roots
}

// Find returns the node whose canonical path equals path. Repeated lookups
// return the identical node. Unknown paths fail with ErrNotFound, never a
// zero node.
func (s *Store) Find(path string) (*Node, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.index[path]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, path)
	}
	return n, nil
}

// Len returns the number of indexed nodes.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.index)
}

// Hosts returns the sorted set of URL hosts referenced by leaf entries.
func (s *Store) Hosts() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	hosts := make([]string, 0, len(s.hostToNodes))
	for h := range s.hostToNodes {
		hosts = append(hosts, h)
	}
	sort.Strings(hosts)
	return hosts
}

// ByHost returns the leaf entries whose URL points at host, in input order.
func (s *Store) ByHost(host string) []*Node {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bm, ok := s.hostToNodes[strings.ToLower(host)]
	if !ok {
		return nil
	}

	var nodes []*Node
	it := bm.Iterator()
	for it.HasNext() {
		intID := it.Next()
		if int(intID) < len(s.intToNode) {
			nodes = append(nodes, s.intToNode[intID])
		}
	}
	return nodes
}
