package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImageList_UnmarshalArray(t *testing.T) {
	var l ImageList
	err := json.Unmarshal([]byte(`[{"url":"http://x/a.png"},{"url":"http://x/b.png"}]`), &l)
	require.NoError(t, err)
	require.Len(t, l, 2)
	assert.Equal(t, "http://x/a.png", l[0].URL)
	assert.Equal(t, "http://x/b.png", l[1].URL)
}

func TestImageList_UnmarshalBareObject(t *testing.T) {
	// Older records store the image field as a single object.
	var l ImageList
	err := json.Unmarshal([]byte(`{"url":"http://x/one.png","public_id":"one"}`), &l)
	require.NoError(t, err)
	require.Len(t, l, 1)
	assert.Equal(t, "http://x/one.png", l[0].URL)
	assert.Equal(t, "one", l[0].PublicID)
}

func TestImageList_UnmarshalNull(t *testing.T) {
	var l ImageList
	err := json.Unmarshal([]byte(`null`), &l)
	require.NoError(t, err)
	assert.Empty(t, l)
}

func TestImageList_UnmarshalWithinService(t *testing.T) {
	var s Service
	err := json.Unmarshal([]byte(`{"_id":"1","name_uz":"A","name_ru":"B","image":{"url":"http://x/img.png"}}`), &s)
	require.NoError(t, err)
	require.Len(t, s.Image, 1)
	assert.Equal(t, "http://x/img.png", s.Image[0].URL)
}

func TestImageList_MarshalStaysArray(t *testing.T) {
	out, err := json.Marshal(Service{NameUz: "A", NameRu: "B", Image: ImageList{{URL: "u"}}})
	require.NoError(t, err)
	assert.Contains(t, string(out), `"image":[{"url":"u"}]`)
}
