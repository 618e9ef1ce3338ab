package ingest

import (
	"archive/zip"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildDOCX packs the given document.xml body into a minimal docx archive.
func buildDOCX(t *testing.T, documentXML string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtractText(t *testing.T) {
	t.Run("plain text is normalized", func(t *testing.T) {
		in := "  First   line \n\n\n  Second\tline  \n"
		got, err := ExtractText("notes.txt", strings.NewReader(in))
		require.NoError(t, err)
		assert.Equal(t, "First line\nSecond line", got)
	})

	t.Run("docx paragraphs become lines", func(t *testing.T) {
		doc := `<?xml version="1.0"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Hello</w:t></w:r><w:r><w:t> world</w:t></w:r></w:p>
    <w:p><w:r><w:t>Second paragraph</w:t></w:r></w:p>
  </w:body>
</w:document>`
		got, err := ExtractText("idea.docx", bytes.NewReader(buildDOCX(t, doc)))
		require.NoError(t, err)
		assert.Equal(t, "Hello world\nSecond paragraph", got)
	})

	t.Run("corrupt docx is rejected", func(t *testing.T) {
		_, err := ExtractText("idea.docx", strings.NewReader("this is not a zip archive"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not parse Word document")
	})

	t.Run("docx without a document part is rejected", func(t *testing.T) {
		var buf bytes.Buffer
		zw := zip.NewWriter(&buf)
		w, err := zw.Create("word/other.xml")
		require.NoError(t, err)
		_, err = w.Write([]byte("<x/>"))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		_, err = ExtractText("idea.docx", bytes.NewReader(buf.Bytes()))
		require.Error(t, err)
	})

	t.Run("corrupt pdf is rejected", func(t *testing.T) {
		_, err := ExtractText("idea.pdf", strings.NewReader("%PDF-1.4 truncated garbage"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "could not parse PDF document")
	})

	t.Run("unknown extension is rejected", func(t *testing.T) {
		_, err := ExtractText("clip.mp4", strings.NewReader("data"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported file type")
	})

	t.Run("empty upload is rejected", func(t *testing.T) {
		_, err := ExtractText("notes.txt", strings.NewReader(""))
		require.Error(t, err)
	})
}
