package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// loadPage reads a captured server page from testdata.
func loadPage(t *testing.T, name string) string {
	t.Helper()
	html, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(html)
}
