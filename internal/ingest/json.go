package ingest

import (
	"fmt"

	"github.com/ohler55/ojg/oj"

	"github.com/horhof/datafort.network/internal/tree"
)

// ParseJSON decodes a JSON directory description of the shape
//
//	{"title": ..., "splash": ..., "sites": [{"name": ..., "sites": [...]}]}
//
// walked generically rather than unmarshalled into structs, so unknown keys
// are ignored the way unrecognized metadata lines are.
func ParseJSON(src []byte) (*tree.Store, error) {
	val, err := oj.Parse(src)
	if err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	root, ok := val.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("json root is %T, want object: %w", val, ErrMalformedLine)
	}

	store := tree.NewStore()
	store.SetMetadata(tree.Metadata{
		Title:  jsonStr(root["title"]),
		Splash: jsonStr(root["splash"]),
	})
	if err := addJSONSites(store, nil, root["sites"]); err != nil {
		return nil, err
	}
	return store, nil
}

func addJSONSites(store *tree.Store, parent *tree.Node, v any) error {
	if v == nil {
		return nil
	}
	list, ok := v.([]any)
	if !ok {
		return fmt.Errorf("sites is %T, want array: %w", v, ErrMalformedLine)
	}
	for _, item := range list {
		obj, ok := item.(map[string]any)
		if !ok {
			return fmt.Errorf("site is %T, want object: %w", item, ErrMalformedLine)
		}
		node := &tree.Node{
			Name:        jsonStr(obj["name"]),
			Title:       jsonStr(obj["title"]),
			URL:         jsonStr(obj["url"]),
			Description: jsonStr(obj["description"]),
		}
		if node.Name == "" {
			return fmt.Errorf("site with empty name: %w", ErrMalformedLine)
		}
		if parent != nil {
			parent.Attach(node)
		}
		if err := store.Add(node); err != nil {
			return err
		}
		if err := addJSONSites(store, node, obj["sites"]); err != nil {
			return err
		}
	}
	return nil
}

func jsonStr(v any) string {
	s, _ := v.(string)
	return s
}
