package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSingleEntry_WireShape(t *testing.T) {
	entry := NewSingleEntry("1717171717171",
		ImageFile{Filename: "1717171717171-ab12cd34e.jpg", OriginalName: "yard.jpg", URL: "/uploads/1717171717171-ab12cd34e.jpg", Size: 2048},
		"lawn-mowing", time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	assert.False(t, entry.IsBeforeAfter())
	assert.Equal(t, []string{"1717171717171-ab12cd34e.jpg"}, entry.Files())

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	// Single entries stay wire-compatible with the original flat shape.
	assert.NotContains(t, raw, "type")
	assert.NotContains(t, raw, "beforeImage")
	assert.NotContains(t, raw, "afterImage")
	assert.Equal(t, "yard.jpg", raw["originalName"])
}

func TestBeforeAfterEntry_WireShape(t *testing.T) {
	entry := NewBeforeAfterEntry("1717171717172",
		ImageFile{Filename: "b.jpg", OriginalName: "before.jpg", URL: "/uploads/b.jpg", Size: 10},
		ImageFile{Filename: "a.jpg", OriginalName: "after.jpg", URL: "/uploads/a.jpg", Size: 11},
		"landscaping", time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC))

	assert.True(t, entry.IsBeforeAfter())
	assert.Equal(t, []string{"b.jpg", "a.jpg"}, entry.Files())

	data, err := json.Marshal(entry)
	require.NoError(t, err)

	var raw map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &raw))

	assert.Equal(t, "before-after", raw["type"])
	assert.NotContains(t, raw, "filename")
	assert.NotContains(t, raw, "url")
	require.Contains(t, raw, "beforeImage")
	require.Contains(t, raw, "afterImage")
}
