package api

// Directory is the wire projection of a parsed site directory: the document
// metadata plus the full forest. It is produced for diagnostics and the JSON
// API, never read back for persistence.
type Directory struct {
	// Title of the whole directory, from the source's metadata lines.
	Title string `json:"title,omitempty"`
	// Splash content shown on the landing view.
	Splash string `json:"splash,omitempty"`
	// Sites are the root nodes of the forest, in input order.
	Sites []Site `json:"sites,omitempty"`
}

// Site is the projection of one node. A site with a URL is a leaf entry;
// without one it is a group.
type Site struct {
	// Name of the site, unique only among siblings.
	Name string `json:"name"`
	// Path is the dot-joined name chain up to the root, most-specific
	// segment first. Unique across the whole directory.
	Path string `json:"path"`
	// Title is the optional display label.
	Title string `json:"title,omitempty"`
	// URL of a leaf entry.
	URL string `json:"url,omitempty"`
	// Description is optional free text.
	Description string `json:"description,omitempty"`
	// Sites are the child nodes, in input order.
	Sites []Site `json:"sites,omitempty"`
}
