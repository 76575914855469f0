package mcp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gitpan/pgrep/internal/search"
)

func TestParseSearchRequest(t *testing.T) {
	t.Parallel()

	t.Run("full argument set", func(t *testing.T) {
		args, err := parseSearchRequest(map[string]interface{}{
			"pattern":        "hello",
			"categories":     []interface{}{"quote", "pods"},
			"root":           "lib",
			"filenames_only": true,
		})
		require.NoError(t, err)
		assert.Equal(t, "hello", args.Pattern)
		assert.Equal(t, []string{"quote", "pods"}, args.Categories)
		assert.Equal(t, "lib", args.Root)
		assert.True(t, args.FilenamesOnly)
	})

	t.Run("empty arguments are fine", func(t *testing.T) {
		args, err := parseSearchRequest(map[string]interface{}{})
		require.NoError(t, err)
		assert.Empty(t, args.Pattern)
		assert.Empty(t, args.Categories)
	})

	t.Run("unknown keys fail", func(t *testing.T) {
		_, err := parseSearchRequest(map[string]interface{}{
			"patern": "typo",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, search.ErrInvalidConfiguration)
	})
}

func TestResolveRoot(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/srv/project", resolveRoot("/srv/project", ""))
	assert.Equal(t, "/srv/project/lib", resolveRoot("/srv/project", "lib"))
	assert.Equal(t, "/other", resolveRoot("/srv/project", "/other"))
}

func TestBuildResponse(t *testing.T) {
	t.Parallel()

	t.Run("drains groups and matches in order", func(t *testing.T) {
		fr := search.NewFileResults("script.pl", false)
		fr.AddGroup("quote", []string{"first", "second"})
		fr.AddGroup("heredoc", []string{"body\n"})

		response := buildResponse([]*search.FileResults{fr})
		require.Equal(t, 1, response.Total)
		require.Len(t, response.Files, 1)

		file := response.Files[0]
		assert.Equal(t, "script.pl", file.Path)
		require.Len(t, file.Groups, 2)
		assert.Equal(t, "quote", file.Groups[0].Category)
		assert.Equal(t, []string{"first", "second"}, file.Groups[0].Matches)
		assert.Equal(t, "heredoc", file.Groups[1].Category)
		assert.Equal(t, []string{"body\n"}, file.Groups[1].Matches)
	})

	t.Run("filenames-only results carry no groups", func(t *testing.T) {
		fr := search.NewFileResults("script.pl", true)

		response := buildResponse([]*search.FileResults{fr})
		require.Len(t, response.Files, 1)
		assert.Equal(t, "script.pl", response.Files[0].Path)
		assert.Empty(t, response.Files[0].Groups)
	})

	t.Run("marshals to the documented shape", func(t *testing.T) {
		fr := search.NewFileResults("script.pl", false)
		fr.AddGroup("quote", []string{"hello"})

		data, err := json.Marshal(buildResponse([]*search.FileResults{fr}))
		require.NoError(t, err)
		assert.JSONEq(t, `{
			"files": [
				{"path": "script.pl", "groups": [{"category": "quote", "matches": ["hello"]}]}
			],
			"total": 1
		}`, string(data))
	})
}
