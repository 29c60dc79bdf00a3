package ingest

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"

	"github.com/horhof/datafort.network/internal/tree"
)

// hclSite mirrors one `site "<name>" { ... }` block, with nested site blocks
// for children.
type hclSite struct {
	Name        string     `hcl:"name,label"`
	Title       string     `hcl:"title,optional"`
	URL         string     `hcl:"url,optional"`
	Description string     `hcl:"description,optional"`
	Sites       []*hclSite `hcl:"site,block"`
}

type hclDirectory struct {
	Title  string     `hcl:"title,optional"`
	Splash string     `hcl:"splash,optional"`
	Sites  []*hclSite `hcl:"site,block"`
}

// ParseHCL decodes an HCL directory description. The block nesting carries
// the hierarchy directly, so there is no depth bookkeeping; the result goes
// through the same store indexing as the flat format, with the same
// fail-fast semantics.
func ParseHCL(src []byte, filename string) (*tree.Store, error) {
	var dir hclDirectory
	if err := hclsimple.Decode(filename, src, nil, &dir); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}

	store := tree.NewStore()
	store.SetMetadata(tree.Metadata{Title: dir.Title, Splash: dir.Splash})
	for _, s := range dir.Sites {
		if err := addHCLSite(store, nil, s); err != nil {
			return nil, err
		}
	}
	return store, nil
}

func addHCLSite(store *tree.Store, parent *tree.Node, s *hclSite) error {
	if s.Name == "" {
		return fmt.Errorf("site block with empty name: %w", ErrMalformedLine)
	}
	node := &tree.Node{
		Name:        s.Name,
		Title:       s.Title,
		URL:         s.URL,
		Description: s.Description,
	}
	if parent != nil {
		parent.Attach(node)
	}
	if err := store.Add(node); err != nil {
		return err
	}
	for _, child := range s.Sites {
		if err := addHCLSite(store, node, child); err != nil {
			return err
		}
	}
	return nil
}
