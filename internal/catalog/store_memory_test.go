package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemStore_AddThenFind(t *testing.T) {
	s := NewMemStore()
	s.Add("P1", "Widget", 9.99)

	p, ok := s.Find("P1")
	require.True(t, ok)
	assert.Equal(t, "Widget", p.Name)
	assert.Equal(t, 9.99, p.Price)
}

func TestMemStore_FindMissing(t *testing.T) {
	s := NewMemStore()
	_, ok := s.Find("nope")
	assert.False(t, ok)
}

func TestMemStore_DuplicateIDLastWriteWins(t *testing.T) {
	s := NewMemStore()
	s.Add("P1", "Widget", 9.99)
	s.Add("P2", "Gadget", 1)
	s.Add("P1", "Widget v2", 12.5)

	p, ok := s.Find("P1")
	require.True(t, ok)
	assert.Equal(t, "Widget v2", p.Name)
	assert.Equal(t, 12.5, p.Price)
	assert.Equal(t, 2, s.Count())

	list := s.List()
	require.Len(t, list, 2)
	assert.Equal(t, "P1", list[0].ID)
	assert.Equal(t, "Widget v2", list[0].Name)
	assert.Equal(t, "P2", list[1].ID)
}

func TestMemStore_DeleteMissingKeepsCount(t *testing.T) {
	s := NewMemStore()
	s.Add("P1", "Widget", 9.99)

	_, ok := s.Delete("P9")
	assert.False(t, ok)
	assert.Equal(t, 1, s.Count())
}

func TestMemStore_CountTracksAddsAndDeletes(t *testing.T) {
	s := NewMemStore()
	s.Add("a", "A", 1)
	s.Add("b", "B", 2)
	s.Add("c", "C", 3)

	p, ok := s.Delete("b")
	require.True(t, ok)
	assert.Equal(t, "B", p.Name)
	assert.Equal(t, 2, s.Count())

	_, ok = s.Find("b")
	assert.False(t, ok)
}

func TestMemStore_ListInsertionOrder(t *testing.T) {
	s := NewMemStore()
	assert.Empty(t, s.List())

	s.Add("z", "Z", 1)
	s.Add("a", "A", 2)
	s.Add("m", "M", 3)
	s.Delete("a")
	s.Add("a", "A again", 4)

	var ids []string
	for _, p := range s.List() {
		ids = append(ids, p.ID)
	}
	assert.Equal(t, []string{"z", "m", "a"}, ids)
}
