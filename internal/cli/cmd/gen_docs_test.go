package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDocs(t *testing.T) {
	tests := []struct {
		format string
		want   []string
	}{
		{format: docsFormatMarkdown, want: []string{"dumbdesk.md", "dumbdesk_replay.md", "dumbdesk_config_show.md"}},
		{format: docsFormatMan, want: []string{"dumbdesk.1", "dumbdesk-replay.1", "dumbdesk-apps.1"}},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			dir := t.TempDir()
			files, err := generateDocs(rootCmd, tt.format, dir)
			require.NoError(t, err)
			for _, name := range tt.want {
				assert.Contains(t, files, name)
			}
		})
	}
}

func TestGenerateDocs_UnknownFormat(t *testing.T) {
	_, err := generateDocs(rootCmd, "pdf", t.TempDir())
	assert.Error(t, err)
}

func TestDocsOutputDir(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/tmp/data")

	dir, err := docsOutputDir(docsFormatMan, "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/data/man/man1", dir)

	dir, err = docsOutputDir(docsFormatMarkdown, "")
	require.NoError(t, err)
	assert.Equal(t, "./docs", dir)

	dir, err = docsOutputDir("pdf", "./out")
	require.NoError(t, err)
	assert.Equal(t, "./out", dir, "explicit output wins")

	_, err = docsOutputDir("pdf", "")
	assert.Error(t, err)
}
