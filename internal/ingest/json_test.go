package ingest

import (
	"testing"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jsonFixture = `
	{
	  "title": "Example site",
	  "splash": "Hello, World!",
	  "vendor": "ignored",
	  "sites": [
	    {
	      "name": "games",
	      "title": "Games",
	      "sites": [
	        {"name": "wowhead", "url": "https://wowhead.com", "description": "WoW database"}
	      ]
	    },
	    {"name": "blog", "url": "https://example.com/blog"}
	  ]
	}
`

func TestParseJSON(t *testing.T) {
	store, err := ParseJSON([]byte(dedent.Dedent(jsonFixture)))
	require.NoError(t, err)

	assert.Equal(t, "Example site", store.Metadata().Title)
	require.Len(t, store.Roots(), 2)

	wowhead, err := store.Find("wowhead.games")
	require.NoError(t, err)
	assert.Equal(t, "WoW database", wowhead.Description)

	blog, err := store.Find("blog")
	require.NoError(t, err)
	assert.True(t, blog.IsLeaf())
}

func TestParseJSON_Invalid(t *testing.T) {
	store, err := ParseJSON([]byte(`{"sites": [`))
	assert.Nil(t, store)
	assert.Error(t, err)
}

func TestParseJSON_RootMustBeObject(t *testing.T) {
	store, err := ParseJSON([]byte(`["a", "b"]`))
	assert.Nil(t, store)
	assert.ErrorIs(t, err, ErrMalformedLine)
}

func TestParseJSON_SiteNeedsName(t *testing.T) {
	store, err := ParseJSON([]byte(`{"sites": [{"url": "http://x/1"}]}`))
	assert.Nil(t, store)
	assert.ErrorIs(t, err, ErrMalformedLine)
}
