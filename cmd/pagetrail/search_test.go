package main_test

import (
	"encoding/json"
	"testing"

	"github.com/mjaros/pagetrail"
	main "github.com/mjaros/pagetrail/cmd/pagetrail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints matches with snippets", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps(t)
		indexPage(t, deps, "https://example.com/otters", "Otters", "River otters hold hands while sleeping.")
		indexPage(t, deps, "https://example.com/weather", "Weather", "Partly cloudy with light wind.")

		cmd := &main.SearchCmd{Query: "otters", Limit: 100}
		require.NoError(t, cmd.Run(deps.Dependencies))

		output := deps.Stdout.String()
		assert.Contains(t, output, "matches")
		assert.Contains(t, output, "Otters")
		assert.Contains(t, output, "https://example.com/otters")
		assert.Contains(t, output, "<mark>otters</mark>")
		assert.NotContains(t, output, "https://example.com/weather")
		assert.Empty(t, deps.Stderr.String())
	})

	t.Run("shows message when nothing matches", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps(t)
		indexPage(t, deps, "https://example.com/only", "Only", "only page here")

		cmd := &main.SearchCmd{Query: "absent", Limit: 100}
		require.NoError(t, cmd.Run(deps.Dependencies))

		assert.Contains(t, deps.Stdout.String(), "No matches.")
	})

	t.Run("prints JSON with --json", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps(t)
		indexPage(t, deps, "https://example.com/otters", "Otters", "River otters hold hands while sleeping.")

		cmd := &main.SearchCmd{Query: "otters", Limit: 100, JSON: true}
		require.NoError(t, cmd.Run(deps.Dependencies))

		var resp pagetrail.SearchResponse
		require.NoError(t, json.Unmarshal(deps.Stdout.Bytes(), &resp))
		assert.Equal(t, 1, resp.Count)
		require.NotEmpty(t, resp.Results)
		assert.Equal(t, "https://example.com/otters", resp.Results[0].URL)
	})

	t.Run("returns error for empty query", func(t *testing.T) {
		t.Parallel()

		deps := newTestDeps(t)

		cmd := &main.SearchCmd{Query: "   ", Limit: 100}
		err := cmd.Run(deps.Dependencies)

		require.Error(t, err)
		assert.Contains(t, deps.Stderr.String(), "error:")
		assert.Empty(t, deps.Stdout.String())
	})
}
