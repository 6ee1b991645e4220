package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/oslc/graph"
	"github.com/viant/oslc/schema"
)

func TestResource_SetGetRoundTrip(t *testing.T) {
	res := New(graph.New(), "https://srv/ccm/resource/1")

	res.Set("https://example.org/ns#severity", "blocker")
	value, ok := res.GetFirst("https://example.org/ns#severity")
	require.True(t, ok)
	assert.Equal(t, "blocker", value)
}

func TestResource_MultiValueOrder(t *testing.T) {
	res := New(graph.New(), "https://srv/ccm/resource/1")

	res.Set("https://example.org/ns#tag", "alpha", "beta", "gamma")
	values, ok := res.Get("https://example.org/ns#tag")
	require.True(t, ok)
	assert.Equal(t, []string{"alpha", "beta", "gamma"}, values)
}

func TestResource_SetReplacesAllValues(t *testing.T) {
	res := New(graph.New(), "https://srv/ccm/resource/1")

	res.Set("https://example.org/ns#tag", "alpha", "beta")
	res.Set("https://example.org/ns#tag", "gamma")
	values, ok := res.Get("https://example.org/ns#tag")
	require.True(t, ok)
	assert.Equal(t, []string{"gamma"}, values)
}

func TestResource_UnsetYieldsAbsent(t *testing.T) {
	res := New(graph.New(), "https://srv/ccm/resource/1")

	res.Set("https://example.org/ns#tag", "alpha")
	res.Unset("https://example.org/ns#tag")
	values, ok := res.Get("https://example.org/ns#tag")
	assert.False(t, ok)
	assert.Nil(t, values)
}

func TestResource_AbsentPropertyIsNotAnError(t *testing.T) {
	res := New(graph.New(), "https://srv/ccm/resource/1")

	_, ok := res.Get("https://example.org/ns#never-set")
	assert.False(t, ok)
	_, ok = res.Title()
	assert.False(t, ok)
}

func TestResource_TypedAccessors(t *testing.T) {
	res := New(graph.New(), "https://srv/ccm/resource/1")

	res.SetTitle("Bug 1")
	res.SetDescription("crash on save")
	res.SetIdentifier("1001")
	res.SetShortTitle("B-1")

	title, ok := res.Title()
	require.True(t, ok)
	assert.Equal(t, "Bug 1", title)
	description, _ := res.Description()
	assert.Equal(t, "crash on save", description)
	identifier, _ := res.Identifier()
	assert.Equal(t, "1001", identifier)
	shortTitle, _ := res.ShortTitle()
	assert.Equal(t, "B-1", shortTitle)
}

func TestResource_TypedAccessorsUnwrapFirstValue(t *testing.T) {
	res := New(graph.New(), "https://srv/ccm/resource/1")

	res.Set(schema.PropTitle, "first", "second")
	title, ok := res.Title()
	require.True(t, ok)
	assert.Equal(t, "first", title)
}

func TestResource_LinkTypes(t *testing.T) {
	res := New(graph.New(), "https://srv/ccm/resource/1")

	res.SetTitle("Bug 1")
	res.SetLink("https://example.org/ns#relatedTo", "https://srv/ccm/resource/2")

	links := res.LinkTypes()
	assert.True(t, links["https://example.org/ns#relatedTo"])
	assert.False(t, links[schema.PropTitle])
}

func TestResource_Properties(t *testing.T) {
	res := New(graph.New(), "https://srv/ccm/resource/1")

	res.SetTitle("Bug 1")
	res.Set("https://example.org/ns#tag", "alpha", "beta")

	props := res.Properties()
	assert.Equal(t, []string{"Bug 1"}, props[schema.PropTitle])
	assert.Equal(t, []string{"alpha", "beta"}, props["https://example.org/ns#tag"])
}

func TestNewLocal_AnonymousSubject(t *testing.T) {
	store := graph.New()
	res := NewLocal(store)

	assert.Empty(t, res.URI())
	res.SetTitle("staged")
	title, ok := res.Title()
	require.True(t, ok)
	assert.Equal(t, "staged", title)
}

func TestResource_SharedStoreIsolation(t *testing.T) {
	store := graph.New()
	first := New(store, "https://srv/ccm/resource/1")
	second := New(store, "https://srv/ccm/resource/2")

	first.SetTitle("one")
	second.SetTitle("two")

	title, _ := first.Title()
	assert.Equal(t, "one", title)
	title, _ = second.Title()
	assert.Equal(t, "two", title)
}
