package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommits(t *testing.T) {
	commits, err := Commits()
	require.NoError(t, err)
	require.Len(t, commits, 6)

	assert.Equal(t, "a1c9e2", commits[0].Hash)
	assert.Equal(t, "feat", commits[0].Type)
	assert.Equal(t, "2024", commits[1].Date)
	assert.Equal(t, "root00", commits[5].Hash)

	hashes := map[string]bool{}
	for _, c := range commits {
		assert.False(t, hashes[c.Hash], "duplicate hash %s", c.Hash)
		hashes[c.Hash] = true
		assert.NotEmpty(t, c.Details)
	}
}

func TestCommitTone(t *testing.T) {
	tests := map[string]string{
		"feat":    "green",
		"ship":    "yellow",
		"chore":   "orange",
		"fix":     "blue",
		"learn":   "blue",
		"explore": "blue",
		"init":    "purple",
		"other":   "zinc",
	}
	for typ, want := range tests {
		assert.Equal(t, want, Commit{Type: typ}.Tone(), typ)
	}
}

func TestDetailTone(t *testing.T) {
	assert.Equal(t, "green", DetailTone("+ added"))
	assert.Equal(t, "red", DetailTone("- removed"))
	assert.Equal(t, "", DetailTone("plain"))
}

func TestSections(t *testing.T) {
	sections, err := Sections()
	require.NoError(t, err)
	require.Len(t, sections, 6)

	editor := sections[0]
	assert.Contains(t, editor.Title, "Editor & Terminal")
	require.Len(t, editor.Items, 3)
	assert.Equal(t, "https://code.visualstudio.com/", editor.Items[0].Link)

	iterm := editor.Items[1]
	assert.Empty(t, iterm.Link)
	require.NotNil(t, iterm.Ref)
	assert.Equal(t, "my setup", iterm.Ref.Text)
}
