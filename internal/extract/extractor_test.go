package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/asharhb/document-processor/constants"
	"github.com/asharhb/document-processor/internal/llm"
)

type fakeTextModel struct {
	out string
	err error
}

func (m *fakeTextModel) GenerateText(_ context.Context, _ llm.TextRequest) (string, error) {
	return m.out, m.err
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestExtractTextWithoutModel(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "note.txt", []byte("hello world"))
	e := NewExtractor(nil, nil)

	res, err := e.Extract(context.Background(), path, constants.TXT)
	require.NoError(t, err)
	assert.Equal(t, "hello world", res.Text)
	assert.Equal(t, "text", res.Method)
	assert.Equal(t, 1, res.Pages)
}

func TestExtractTextModelCleanup(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "note.txt", []byte("raw   text"))
	e := NewExtractor(&fakeTextModel{out: "raw text"}, nil)

	res, err := e.Extract(context.Background(), path, constants.TXT)
	require.NoError(t, err)
	assert.Equal(t, "raw text", res.Text)
	assert.Equal(t, "text+llm", res.Method)
}

func TestExtractTextModelFailureFallsBack(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "note.txt", []byte("original content"))
	e := NewExtractor(&fakeTextModel{err: errors.New("model down")}, nil)

	res, err := e.Extract(context.Background(), path, constants.TXT)
	require.NoError(t, err)
	assert.Equal(t, "original content", res.Text)
	assert.Equal(t, "text", res.Method)
}

func TestExtractTextInvalidUTF8(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "binary.txt", []byte{0xff, 0xfe, 0x00, 0xba, 0xad})
	e := NewExtractor(nil, nil)

	_, err := e.Extract(context.Background(), path, constants.TXT)
	assert.Error(t, err)
}

func TestExtractEmptyTextFails(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "empty.txt", []byte("   \n "))
	e := NewExtractor(nil, nil)

	_, err := e.Extract(context.Background(), path, constants.TXT)
	assert.Error(t, err)
}

func TestExtractCSVAsOffice(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "table.csv", []byte("a,b\n1,2\n"))
	e := NewExtractor(nil, nil)

	res, err := e.Extract(context.Background(), path, constants.OFFICE)
	require.NoError(t, err)
	assert.Contains(t, res.Text, "a,b")
}

func TestExtractUnknownFormat(t *testing.T) {
	t.Parallel()

	e := NewExtractor(nil, nil)
	_, err := e.Extract(context.Background(), "whatever.bin", constants.Format("BIN"))
	assert.Error(t, err)
}

func TestExtractCorruptPDF(t *testing.T) {
	t.Parallel()

	path := writeTemp(t, "broken.pdf", []byte("not a pdf"))
	e := NewExtractor(&fakeTextModel{out: "text"}, nil)

	_, err := e.Extract(context.Background(), path, constants.PDF)
	assert.Error(t, err)
}
