package tree

import "github.com/horhof/datafort.network/api"

// Dump produces an ordered nested projection of the whole forest for
// diagnostics and the JSON API. It is a pure read; the store is not touched
// otherwise.
func (s *Store) Dump() api.Directory {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return api.Directory{
		Title:  s.meta.Title,
		Splash: s.meta.Splash,
		Sites:  dumpNodes(s.roots),
	}
}

// DumpNode projects a single node and everything beneath it.
func DumpNode(n *Node) api.Site {
	site := api.Site{
		Name:        n.Name,
		Path:        n.Path(),
		Title:       n.Title,
		URL:         n.URL,
		Description: n.Description,
		Sites:       dumpNodes(n.children),
	}
	return site
}

func dumpNodes(nodes []*Node) []api.Site {
	if len(nodes) == 0 {
		return nil
	}
	sites := make([]api.Site, 0, len(nodes))
	for _, n := range nodes {
		sites = append(sites, DumpNode(n))
	}
	return sites
}
