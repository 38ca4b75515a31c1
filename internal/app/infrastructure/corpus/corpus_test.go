package corpus

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"sort"
	"testing"
)

func writeCorpusFile(t *testing.T, name string, lines string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))
	return path
}

func TestLoad_ChannelsRequired(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"), "")
	assert.Error(t, err)
}

func TestLoad_EmptyChannelsRejected(t *testing.T) {
	path := writeCorpusFile(t, "channels.txt", "\n\n  \n")
	_, err := Load(path, "")
	assert.Error(t, err)
}

func TestLoad_NicksOptional(t *testing.T) {
	channels := writeCorpusFile(t, "channels.txt", "#general\n#random\n")

	c, err := Load(channels, "")
	require.NoError(t, err)
	assert.Empty(t, c.Nicks)
	assert.Equal(t, []string{"#general", "#random"}, c.Channels)

	c, err = Load(channels, filepath.Join(t.TempDir(), "missing.txt"))
	require.NoError(t, err)
	assert.Empty(t, c.Nicks)
}

func TestLoad_SkipsBlankAndTrims(t *testing.T) {
	channels := writeCorpusFile(t, "channels.txt", "#general\n\n  #random  \n\t\n#dev\n")

	c, err := Load(channels, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"#general", "#random", "#dev"}, c.Channels)
}

func TestLoad_UnionCombinesPools(t *testing.T) {
	channels := writeCorpusFile(t, "channels.txt", "#general\n#random\n")
	nicks := writeCorpusFile(t, "nicks.txt", "alice\nbob\ncarol\n")

	c, err := Load(channels, nicks)
	require.NoError(t, err)
	assert.Len(t, c.Union(), 5)
	assert.Subset(t, c.Union(), c.Nicks)
	assert.Subset(t, c.Union(), c.Channels)
}

func TestLoad_Idempotent(t *testing.T) {
	channels := writeCorpusFile(t, "channels.txt", "#general\n#random\n#dev\n")
	nicks := writeCorpusFile(t, "nicks.txt", "alice\nbob\n")

	first, err := Load(channels, nicks)
	require.NoError(t, err)
	second, err := Load(channels, nicks)
	require.NoError(t, err)

	a, b := append([]string(nil), first.Union()...), append([]string(nil), second.Union()...)
	sort.Strings(a)
	sort.Strings(b)
	assert.Equal(t, a, b)
}
