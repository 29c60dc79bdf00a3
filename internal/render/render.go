// Package render produces the HTML views of a directory store. It is a pure
// projection: templates only ever read node attributes and computed paths.
package render

import (
	"html/template"
	"io"

	"github.com/horhof/datafort.network/internal/tree"
)

const baseTemplate = `{{define "head"}}<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.}}</title>
<style>
body { font-family: monospace; max-width: 48em; margin: 2em auto; }
ul { list-style: none; padding-left: 1em; }
.crumbs a, .crumbs span { margin-right: 0.25em; }
.desc { color: #666; }
</style>
</head>
<body>{{end}}
{{define "foot"}}</body>
</html>{{end}}`

const indexTemplate = `{{define "index"}}{{template "head" .Title}}
<h1>{{.Title}}</h1>
{{if .Splash}}<p>{{.Splash}}</p>{{end}}
<ul>
{{range .Entries}}<li>{{template "entry" .}}</li>
{{end}}</ul>
{{template "foot"}}{{end}}`

const nodeTemplate = `{{define "node"}}{{template "head" .Label}}
<p class="crumbs"><a href="/">/</a>{{range .Crumbs}} &raquo; <a href="/browse?path={{.Path}}">{{.Name}}</a>{{end}}</p>
<h1>{{.Label}}</h1>
{{if .Node.Description}}<p class="desc">{{.Node.Description}}</p>{{end}}
{{if .Node.IsLeaf}}<p><a href="{{.Node.URL}}">{{.Node.URL}}</a></p>{{end}}
<ul>
{{range .Entries}}<li>{{template "entry" .}}</li>
{{end}}</ul>
{{template "foot"}}{{end}}`

const entryTemplate = `{{define "entry"}}{{if .IsLeaf}}<a href="{{.URL}}">{{.Label}}</a>{{else}}<a href="/browse?path={{.Path}}">{{.Label}}/</a>{{end}}{{if .Description}} <span class="desc">{{.Description}}</span>{{end}}{{end}}`

const notFoundTemplate = `{{define "notfound"}}{{template "head" "Not found"}}
<h1>Not found</h1>
<p>No entry at <code>{{.}}</code>. <a href="/">Back to the index.</a></p>
{{template "foot"}}{{end}}`

// Crumb is one breadcrumb step, root first.
type Crumb struct {
	Name string
	Path string
}

// Entry is one listed child.
type Entry struct {
	Label       string
	Path        string
	URL         string
	Description string
	IsLeaf      bool
}

type indexPage struct {
	Title   string
	Splash  string
	Entries []Entry
}

type nodePage struct {
	Label   string
	Node    *tree.Node
	Crumbs  []Crumb
	Entries []Entry
}

// Renderer renders store state to HTML.
type Renderer struct {
	tmpl *template.Template
}

func New() *Renderer {
	t := template.New("directory")
	for _, src := range []string{baseTemplate, indexTemplate, nodeTemplate, entryTemplate, notFoundTemplate} {
		t = template.Must(t.Parse(src))
	}
	return &Renderer{tmpl: t}
}

// Index renders the landing view: directory title, splash, root listing.
func (r *Renderer) Index(w io.Writer, meta tree.Metadata, roots []*tree.Node) error {
	title := meta.Title
	if title == "" {
		title = "Directory"
	}
	return r.tmpl.ExecuteTemplate(w, "index", indexPage{
		Title:   title,
		Splash:  meta.Splash,
		Entries: entries(roots),
	})
}

// Node renders one node: breadcrumb, description, and its ordered children.
func (r *Renderer) Node(w io.Writer, n *tree.Node) error {
	return r.tmpl.ExecuteTemplate(w, "node", nodePage{
		Label:   label(n),
		Node:    n,
		Crumbs:  crumbs(n),
		Entries: entries(n.Children()),
	})
}

// NotFound renders the miss page for an unknown path.
func (r *Renderer) NotFound(w io.Writer, path string) error {
	return r.tmpl.ExecuteTemplate(w, "notfound", path)
}

// crumbs walks the ancestor chain and reverses it, so the trail reads from
// root to the node itself.
func crumbs(n *tree.Node) []Crumb {
	var cs []Crumb
	for cur := n; cur != nil; cur = cur.Parent() {
		cs = append(cs, Crumb{Name: cur.Name, Path: cur.Path()})
	}
	for i, j := 0, len(cs)-1; i < j; i, j = i+1, j-1 {
		cs[i], cs[j] = cs[j], cs[i]
	}
	return cs
}

func entries(nodes []*tree.Node) []Entry {
	es := make([]Entry, 0, len(nodes))
	for _, c := range nodes {
		es = append(es, Entry{
			Label:       label(c),
			Path:        c.Path(),
			URL:         c.URL,
			Description: c.Description,
			IsLeaf:      c.IsLeaf(),
		})
	}
	return es
}

func label(n *tree.Node) string {
	if n.Title != "" {
		return n.Title
	}
	return n.Name
}
