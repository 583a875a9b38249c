package youtube

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuery(t *testing.T) {
	t.Run("last write wins", func(t *testing.T) {
		q := NewQuery()
		q.AddParam("maxResults", 5)
		q.AddParam("maxResults", "10")
		v, ok := q.Get("maxResults")
		require.True(t, ok)
		assert.Equal(t, "10", v)
	})

	t.Run("nil values are absent", func(t *testing.T) {
		q := NewQuery()
		q.AddParams(Params{"order": "date", "regionCode": nil})
		assert.Equal(t, map[string]string{"order": "date"}, q.Params())
	})

	t.Run("encode is independent of insertion order", func(t *testing.T) {
		a := NewQuery()
		a.AddParam("q", "go lang")
		a.AddParam("key", "k")
		a.AddParam("maxResults", 3)

		b := NewQuery()
		b.AddParam("maxResults", 3)
		b.AddParam("key", "k")
		b.AddParam("q", "go lang")

		assert.Equal(t, a.Encode(), b.Encode())

		values, err := url.ParseQuery(a.Encode())
		require.NoError(t, err)
		assert.Equal(t, url.Values{"q": {"go lang"}, "key": {"k"}, "maxResults": {"3"}}, values)
	})

	t.Run("parts keep order", func(t *testing.T) {
		q := NewQuery()
		q.AddPart("snippet", "statistics")
		q.AddPart("status")
		assert.Equal(t, "snippet,statistics,status", q.PartList())

		q.ClearParts()
		assert.Empty(t, q.PartList())
	})

	t.Run("clone is independent", func(t *testing.T) {
		q := NewQuery()
		q.AddParam("key", "k")
		q.AddPart("snippet")

		c := q.Clone()
		c.AddParam("id", "abc")
		c.AddPart("status")

		assert.Equal(t, map[string]string{"key": "k"}, q.Params())
		assert.Equal(t, []string{"snippet"}, q.Parts())
	})

	t.Run("validate", func(t *testing.T) {
		q := NewQuery()
		assert.ErrorIs(t, q.Validate(), ErrMissingKey)

		q.AddParam("key", "")
		assert.ErrorIs(t, q.Validate(), ErrMissingKey)

		q.AddParam("key", "k")
		assert.NoError(t, q.Validate())
	})
}

func TestResponse(t *testing.T) {
	resp := decodeResponse([]byte(`{
		"nextPageToken": "NEXT",
		"pageInfo": {"totalResults": 42, "resultsPerPage": 2},
		"items": [
			{"id": {"kind": "youtube#video", "videoId": "v1"}, "snippet": {"title": "First"}},
			"garbage",
			{"id": "v2"}
		]
	}`))

	assert.Equal(t, "NEXT", resp.NextPageToken())
	assert.Empty(t, resp.PrevPageToken())
	assert.Equal(t, 42, resp.TotalResults())

	items := resp.Items()
	require.Len(t, items, 2)
	assert.Equal(t, "v1", ItemID(items[0]))
	assert.Equal(t, "First", ItemTitle(items[0]))
	assert.Equal(t, "v2", ItemID(items[1]))
	assert.Empty(t, ItemTitle(items[1]))

	assert.Nil(t, Response{}.Items())
	assert.Equal(t, Response{}, decodeResponse([]byte(`[1,2]`)))
	assert.Equal(t, Response{}, decodeResponse([]byte(`null`)))
}

func TestKind(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindUnknown, "unknown"},
		{KindValidation, "validation"},
		{KindAPI, "api"},
		{KindNotFound, "not_found"},
		{KindForbidden, "forbidden"},
		{KindRateLimited, "rate_limited"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestError(t *testing.T) {
	err := &Error{Kind: KindRateLimited, StatusCode: 403, Message: MsgRateLimited}
	assert.Equal(t, "Retelimit exceeded", err.Error())
	assert.True(t, err.IsRateLimited())
	assert.False(t, err.IsForbidden())
	assert.False(t, err.IsNotFound())
	assert.Equal(t, ErrorResult{Error: ErrorBody{Message: "Retelimit exceeded"}}, err.Result())

	_, ok := AsError(assert.AnError)
	assert.False(t, ok)
}
