package novelty

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriterEmitter(t *testing.T) {
	buf := &bytes.Buffer{}
	e := WriterEmitter{W: buf}
	require.NoError(t, e.Emit("https://example.com/t/1"))
	require.NoError(t, e.Emit("https://example.com/t/2"))
	assert.Equal(t, "https://example.com/t/1\nhttps://example.com/t/2\n", buf.String())

	err := WriterEmitter{W: failingWriter{}}.Emit("x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "write link")
}

func TestCollectEmitter(t *testing.T) {
	e := &CollectEmitter{}
	require.NoError(t, e.Emit("a"))
	require.NoError(t, e.Emit("b"))
	assert.Equal(t, []string{"a", "b"}, e.Links)
}
