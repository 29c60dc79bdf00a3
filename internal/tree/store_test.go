package tree

import (
	"errors"
	"reflect"
	"testing"
)

func TestStoreAddAndFind(t *testing.T) {
	store := NewStore()
	root := &Node{Name: "root"}
	child := &Node{Name: "child", URL: "http://x/1"}
	root.Attach(child)

	if err := store.Add(root); err != nil {
		t.Fatalf("Add(root) returned error: %v", err)
	}
	if err := store.Add(child); err != nil {
		t.Fatalf("Add(child) returned error: %v", err)
	}

	got, err := store.Find("child.root")
	if err != nil {
		t.Fatalf("Find returned error: %v", err)
	}
	if got != child {
		t.Error("Find should return the indexed node itself")
	}
}

func TestStoreFindNotFound(t *testing.T) {
	store := NewStore()

	_, err := store.Find("nonexistent")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestStoreFindIdenticalOnRepeat(t *testing.T) {
	store := NewStore()
	n := &Node{Name: "n"}
	if err := store.Add(n); err != nil {
		t.Fatal(err)
	}

	first, err := store.Find("n")
	if err != nil {
		t.Fatal(err)
	}
	second, err := store.Find("n")
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Error("repeated Find should return the identical node")
	}
}

func TestStoreDuplicatePathRejected(t *testing.T) {
	store := NewStore()
	if err := store.Add(&Node{Name: "dup"}); err != nil {
		t.Fatal(err)
	}

	err := store.Add(&Node{Name: "dup"})
	if !errors.Is(err, ErrDuplicatePath) {
		t.Errorf("err = %v, want ErrDuplicatePath", err)
	}
}

func TestStoreRootsOrder(t *testing.T) {
	store := NewStore()
	a := &Node{Name: "a"}
	b := &Node{Name: "b"}
	if err := store.Add(a); err != nil {
		t.Fatal(err)
	}
	if err := store.Add(b); err != nil {
		t.Fatal(err)
	}

	roots := store.Roots()
	if len(roots) != 2 || roots[0] != a || roots[1] != b {
		t.Errorf("roots = %v, want [a b] in insertion order", roots)
	}
}

func TestStoreMetadata(t *testing.T) {
	store := NewStore()
	store.SetMetadata(Metadata{Title: "Example site", Splash: "Hello, World!"})

	m := store.Metadata()
	if m.Title != "Example site" || m.Splash != "Hello, World!" {
		t.Errorf("metadata = %+v", m)
	}
}

func TestStoreHostIndex(t *testing.T) {
	store := NewStore()
	nodes := []*Node{
		{Name: "one", URL: "http://x.example/1"},
		{Name: "two", URL: "http://y.example/2"},
		{Name: "three", URL: "http://X.example/3"},
		{Name: "group"},
	}
	for _, n := range nodes {
		if err := store.Add(n); err != nil {
			t.Fatal(err)
		}
	}

	want := []string{"x.example", "y.example"}
	if got := store.Hosts(); !reflect.DeepEqual(got, want) {
		t.Errorf("Hosts() = %v, want %v", got, want)
	}

	byHost := store.ByHost("x.example")
	if len(byHost) != 2 || byHost[0] != nodes[0] || byHost[1] != nodes[2] {
		t.Errorf("ByHost(x.example) = %v, want [one three] in input order", byHost)
	}
	if got := store.ByHost("nowhere.example"); got != nil {
		t.Errorf("ByHost on unknown host = %v, want nil", got)
	}
}

func TestStoreDump(t *testing.T) {
	store := NewStore()
	store.SetMetadata(Metadata{Title: "T", Splash: "S"})
	root := &Node{Name: "root", Title: "Root"}
	child := &Node{Name: "child", URL: "http://x/1", Description: "a site"}
	root.Attach(child)
	if err := store.Add(root); err != nil {
		t.Fatal(err)
	}
	if err := store.Add(child); err != nil {
		t.Fatal(err)
	}

	dump := store.Dump()
	if dump.Title != "T" || dump.Splash != "S" {
		t.Errorf("dump metadata = %+v", dump)
	}
	if len(dump.Sites) != 1 {
		t.Fatalf("dump has %d roots, want 1", len(dump.Sites))
	}
	site := dump.Sites[0]
	if site.Name != "root" || site.Path != "root" || site.Title != "Root" {
		t.Errorf("root projection = %+v", site)
	}
	if len(site.Sites) != 1 || site.Sites[0].Path != "child.root" || site.Sites[0].URL != "http://x/1" {
		t.Errorf("child projection = %+v", site.Sites)
	}
}
