package ingest

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/horhof/datafort.network/internal/tree"
)

func parseLines(t *testing.T, lines ...string) *tree.Store {
	t.Helper()
	store, err := ParseFlat(strings.NewReader(strings.Join(lines, "\n")), "")
	require.NoError(t, err)
	return store
}

func TestParseFlat_AscentToRoot(t *testing.T) {
	store := parseLines(t,
		"root1\tRoot1",
		"\tchild1\tChild1\thttp://x/1",
		"root2\tRoot2",
		"\tchild3\tChild3\thttp://x/3",
	)

	roots := store.Roots()
	require.Len(t, roots, 2)
	assert.Equal(t, "root1", roots[0].Name)
	assert.Equal(t, "root2", roots[1].Name)
	require.Len(t, roots[0].Children(), 1)
	require.Len(t, roots[1].Children(), 1)

	node, err := store.Find("child3.root2")
	require.NoError(t, err)
	assert.Equal(t, "http://x/3", node.URL)

	_, err = store.Find("child3.root1")
	assert.ErrorIs(t, err, tree.ErrNotFound)
}

func TestParseFlat_Metadata(t *testing.T) {
	store := parseLines(t,
		"title=Example site",
		"splash=Hello, World!",
		"root\tRoot",
		"\tchild\tChild\thttp://x/1",
	)

	meta := store.Metadata()
	assert.Equal(t, "Example site", meta.Title)
	assert.Equal(t, "Hello, World!", meta.Splash)
}

func TestParseFlat_MetadataLastWins(t *testing.T) {
	store := parseLines(t,
		"title=First",
		"root\tRoot",
		"title=Second",
	)

	assert.Equal(t, "Second", store.Metadata().Title)
}

func TestParseFlat_MetadataValueKeepsEquals(t *testing.T) {
	store := parseLines(t, "splash=a=b=c")

	assert.Equal(t, "a=b=c", store.Metadata().Splash)
}

func TestParseFlat_UnrecognizedMetadataIgnored(t *testing.T) {
	store := parseLines(t,
		"color=red",
		"not a metadata line at all",
		"title=Kept",
	)

	assert.Equal(t, "Kept", store.Metadata().Title)
	assert.Equal(t, 0, store.Len())
}

func TestParseFlat_DepthRoundTrip(t *testing.T) {
	store := parseLines(t,
		"a\tA",
		"\tb\tB",
		"\t\tc\tC\thttp://x/c",
		"\td\tD",
		"e\tE",
	)

	wantDepth := map[string]int{
		"a":     0,
		"b.a":   1,
		"c.b.a": 2,
		"d.a":   1,
		"e":     0,
	}
	require.Equal(t, len(wantDepth), store.Len())
	for path, depth := range wantDepth {
		node, err := store.Find(path)
		require.NoError(t, err, path)
		assert.Equal(t, depth, len(node.Segments())-1, path)
	}
}

func TestParseFlat_ReAscentBindsToFrontier(t *testing.T) {
	store := parseLines(t,
		"a\t",
		"\tb",
		"\t\tc",
		"\td",
		"\t\te",
	)

	d, err := store.Find("d.a")
	require.NoError(t, err)
	a, err := store.Find("a")
	require.NoError(t, err)
	assert.Same(t, a, d.Parent())

	// After returning to depth 1, the next deeper line must bind to the
	// new frontier occupant, not the old one.
	e, err := store.Find("e.d.a")
	require.NoError(t, err)
	assert.Same(t, d, e.Parent())
	_, err = store.Find("e.b.a")
	assert.ErrorIs(t, err, tree.ErrNotFound)
}

func TestParseFlat_SiblingOrderPreserved(t *testing.T) {
	store := parseLines(t,
		"p\t",
		"\tzeta\tZ\thttp://x/z",
		"\talpha\tA\thttp://x/a",
		"\tmid\tM\thttp://x/m",
	)

	p, err := store.Find("p")
	require.NoError(t, err)
	var names []string
	for _, c := range p.Children() {
		names = append(names, c.Name)
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, names)
}

func TestParseFlat_DepthJumpRejected(t *testing.T) {
	store, err := ParseFlat(strings.NewReader("root\tRoot\n\t\ttoo-deep\tX"), "")
	assert.Nil(t, store)
	require.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseFlat_FirstLineBelowRootRejected(t *testing.T) {
	store, err := ParseFlat(strings.NewReader("\torphan\tX"), "")
	assert.Nil(t, store)
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestParseFlat_MissingNameRejected(t *testing.T) {
	store, err := ParseFlat(strings.NewReader("root\tRoot\n\t\t"), "")
	assert.Nil(t, store)
	require.ErrorIs(t, err, ErrMalformedLine)
	assert.Contains(t, err.Error(), "missing name")
}

func TestParseFlat_DuplicateSiblingRejected(t *testing.T) {
	store, err := ParseFlat(strings.NewReader("dup\tA\ndup\tB"), "")
	assert.Nil(t, store)
	assert.ErrorIs(t, err, tree.ErrDuplicatePath)
}

func TestParseFlat_BlankAndMetadataLinesSkipDepthTracking(t *testing.T) {
	store := parseLines(t,
		"root\tRoot",
		"",
		"title=Interleaved",
		"\tchild\tChild\thttp://x/1",
	)

	child, err := store.Find("child.root")
	require.NoError(t, err)
	root, err := store.Find("root")
	require.NoError(t, err)
	assert.Same(t, root, child.Parent())
}

func TestParseFlat_OptionalFieldsAndExtras(t *testing.T) {
	store := parseLines(t,
		"bare\t",
		"full\tTitle\thttp://x/f\tdescribed\tignored\talso-ignored",
	)

	bare, err := store.Find("bare")
	require.NoError(t, err)
	assert.True(t, bare.IsGroup())
	assert.Empty(t, bare.Title)

	full, err := store.Find("full")
	require.NoError(t, err)
	assert.Equal(t, "Title", full.Title)
	assert.Equal(t, "http://x/f", full.URL)
	assert.Equal(t, "described", full.Description)
}

func TestParseFlat_CustomSeparator(t *testing.T) {
	store, err := ParseFlat(strings.NewReader("root|Root\n|child|Child|http://x/1"), "|")
	require.NoError(t, err)

	node, err := store.Find("child.root")
	require.NoError(t, err)
	assert.Equal(t, "http://x/1", node.URL)
}

func TestParseFlat_CRLFInput(t *testing.T) {
	store, err := ParseFlat(strings.NewReader("root\tRoot\r\n\tchild\tChild\thttp://x/1\r\n"), "")
	require.NoError(t, err)

	node, err := store.Find("child.root")
	require.NoError(t, err)
	assert.Equal(t, "Child", node.Title)
}
