package filter

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeItems(t *testing.T, raw string) []map[string]any {
	t.Helper()
	var items []map[string]any
	require.NoError(t, json.Unmarshal([]byte(raw), &items))
	return items
}

const sampleItems = `[
	{
		"id": "v1",
		"snippet": {"title": "Learning Golang", "publishedAt": "2020-01-02T15:04:05Z"},
		"statistics": {"viewCount": "150000", "likeCount": "900"},
		"contentDetails": {"duration": "PT12M30S"}
	},
	{
		"id": "v2",
		"snippet": {"title": "Cat compilation", "publishedAt": "2021-06-01T00:00:00Z"},
		"statistics": {"viewCount": "42"},
		"contentDetails": {"duration": "PT45S"}
	},
	{
		"id": {"kind": "youtube#video", "videoId": "v3"},
		"snippet": {"title": "golang generics"}
	}
]`

func TestCompile(t *testing.T) {
	tests := []struct {
		name        string
		expression  string
		wantErr     bool
		errContains string
	}{
		{
			name:       "valid expression",
			expression: `num(statistics.viewCount) > 100`,
		},
		{
			name:        "empty expression",
			expression:  "   ",
			wantErr:     true,
			errContains: "empty expression",
		},
		{
			name:       "invalid syntax",
			expression: `icontains(snippet.title, "unclosed`,
			wantErr:    true,
		},
		{
			name:       "non boolean result",
			expression: `1 + 2`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewCompiler().Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				if tt.errContains != "" {
					assert.Contains(t, err.Error(), tt.errContains)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestFilter_Apply(t *testing.T) {
	items := decodeItems(t, sampleItems)

	tests := []struct {
		name       string
		expression string
		wantIDs    []any
	}{
		{
			name:       "numeric counter",
			expression: `num(statistics.viewCount) >= 1000`,
			wantIDs:    []any{"v1"},
		},
		{
			name:       "case insensitive title",
			expression: `icontains(snippet.title, "GOLANG")`,
			wantIDs:    []any{"v1", map[string]any{"kind": "youtube#video", "videoId": "v3"}},
		},
		{
			name:       "prefix",
			expression: `iprefix(snippet.title, "cat")`,
			wantIDs:    []any{"v2"},
		},
		{
			name:       "duration",
			expression: `durationSeconds(contentDetails.duration) < 60`,
			wantIDs:    []any{"v2"},
		},
		{
			name:       "age",
			expression: `ageDays(snippet.publishedAt) > 365`,
			wantIDs:    []any{"v1", "v2"},
		},
		{
			name:       "expr operators",
			expression: `snippet.title startsWith "Learning" or snippet.title contains "Cat"`,
			wantIDs:    []any{"v1", "v2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			var got []any
			for _, item := range f.Apply(items) {
				got = append(got, item["id"])
			}
			assert.Equal(t, tt.wantIDs, got)
		})
	}
}

func TestFilter_MissingFieldsDoNotMatch(t *testing.T) {
	f, err := Compile(`num(statistics.viewCount) > 0`)
	require.NoError(t, err)

	assert.False(t, f.Match(map[string]any{"id": "x"}))
	assert.True(t, f.Match(map[string]any{"statistics": map[string]any{"viewCount": "1"}}))
}

func TestCompiler_Cache(t *testing.T) {
	c := NewCompiler(WithCacheSize(2))

	a, err := c.Compile(`num(statistics.viewCount) > 1`)
	require.NoError(t, err)
	again, err := c.Compile(`  num(statistics.viewCount) > 1  `)
	require.NoError(t, err)
	assert.Same(t, a, again)
	assert.Equal(t, 1, c.Size())

	_, err = c.Compile(`num(statistics.viewCount) > 2`)
	require.NoError(t, err)
	_, err = c.Compile(`num(statistics.viewCount) > 3`)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Size())

	// the first expression was evicted
	evicted, err := c.Compile(`num(statistics.viewCount) > 1`)
	require.NoError(t, err)
	assert.NotSame(t, a, evicted)

	c.Clear()
	assert.Zero(t, c.Size())

	uncached := NewCompiler(WithCacheSize(0))
	_, err = uncached.Compile(`true`)
	require.NoError(t, err)
	assert.Zero(t, uncached.Size())
}

func TestCompiler_CustomFunctions(t *testing.T) {
	c := NewCompiler(WithFunctions(map[string]any{
		"isShort": func(v any) bool { return durationSeconds(v) <= 60 },
	}))

	f, err := c.Compile(`isShort(contentDetails.duration)`)
	require.NoError(t, err)

	matches := f.Apply(decodeItems(t, sampleItems))
	require.Len(t, matches, 1)
	assert.Equal(t, "v2", matches[0]["id"])
}

func TestHelpers(t *testing.T) {
	t.Run("num", func(t *testing.T) {
		assert.Equal(t, 1234.0, num("1234"))
		assert.Equal(t, 1.5, num(1.5))
		assert.Equal(t, 3.0, num(3))
		assert.Zero(t, num("n/a"))
		assert.Zero(t, num(nil))
	})

	t.Run("durationSeconds", func(t *testing.T) {
		tests := map[string]int{
			"PT45S":     45,
			"PT4M13S":   253,
			"PT1H":      3600,
			"P1DT2H3M":  93780,
			"PT":        -1,
			"4 minutes": -1,
		}
		for in, want := range tests {
			assert.Equal(t, want, durationSeconds(in), in)
		}
	})

	t.Run("ageDays", func(t *testing.T) {
		yesterday := time.Now().Add(-36 * time.Hour).UTC().Format(time.RFC3339)
		assert.Equal(t, 1, ageDays(yesterday))
		assert.Equal(t, -1, ageDays("yesterday"))
	})

	t.Run("text helpers", func(t *testing.T) {
		assert.True(t, icontains("Hello World", "WORLD"))
		assert.False(t, icontains(nil, "x"))
		assert.True(t, iprefix("Hello", "he"))
	})
}
