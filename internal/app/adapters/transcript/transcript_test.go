package transcript

import (
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"ircfuzz/pkg/logger"
	"os"
	"path/filepath"
	"testing"
)

func TestTranscript_RecordsRawBytes(t *testing.T) {
	dir := t.TempDir()

	tr := Open(logger.New(), dir, "alice")
	tr.Record([]byte("NICK alice\r\n"))
	tr.Record([]byte(":server 001 alice :welcome\r\n"))
	tr.Record(nil)
	require.NoError(t, tr.Close())

	data, err := os.ReadFile(filepath.Join(dir, "alice.log"))
	require.NoError(t, err)
	assert.Equal(t, "NICK alice\r\n:server 001 alice :welcome\r\n", string(data))
}

func TestTranscript_AppendsAcrossOpens(t *testing.T) {
	dir := t.TempDir()

	tr := Open(logger.New(), dir, "bob")
	tr.Record([]byte("one\r\n"))
	require.NoError(t, tr.Close())

	tr = Open(logger.New(), dir, "bob")
	tr.Record([]byte("two\r\n"))
	require.NoError(t, tr.Close())

	data, err := os.ReadFile(tr.Path())
	require.NoError(t, err)
	assert.Equal(t, "one\r\ntwo\r\n", string(data))
}

func TestTranscript_SanitizesNick(t *testing.T) {
	dir := t.TempDir()

	tr := Open(logger.New(), dir, "a/b\\c")
	tr.Record([]byte("x"))
	require.NoError(t, tr.Close())

	assert.Equal(t, filepath.Join(dir, "a_b_c.log"), tr.Path())
}

func TestTranscript_DegradedSink(t *testing.T) {
	dir := t.TempDir()

	// a file where the directory should be makes the open fail
	blocker := filepath.Join(dir, "blocked")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o644))

	tr := Open(logger.New(), blocker, "carol")
	tr.Record([]byte("dropped"))
	require.NoError(t, tr.Close())
}
