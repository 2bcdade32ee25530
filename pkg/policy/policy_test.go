package policy

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/licenseguard/licenseguard/pkg/license"
)

func TestParseValidPolicy(t *testing.T) {
	p, err := Parse([]byte(`version: v1
licenses:
  allowed_categories:
    - permissive
  allowed:
    - MPL-2.0
  forbidden:
    - GPL-3.0
    - AGPL-3.0
  forbidden_patterns:
    - "SSPL-*"
`))
	require.NoError(t, err)

	assert.Equal(t, "v1", p.Version)
	assert.Equal(t, []license.Category{license.CategoryPermissive}, p.AllowedCategories)
	assert.Equal(t, []string{"MPL-2.0"}, p.Allowed)
	assert.Equal(t, []string{"GPL-3.0", "AGPL-3.0"}, p.Forbidden)
	assert.Equal(t, []string{"SSPL-*"}, p.ForbiddenPatterns)
}

func TestParseDefaultsCategories(t *testing.T) {
	p, err := Parse([]byte(`version: v1
licenses:
  forbidden:
    - GPL-3.0
`))
	require.NoError(t, err)
	assert.Equal(t, Default().AllowedCategories, p.AllowedCategories)
}

func TestParseRejectsInvalidDocuments(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"missing version", "licenses:\n  forbidden: [GPL-3.0]\n"},
		{"bad version", "version: v2\n"},
		{"unknown top-level key", "version: v1\nextra: true\n"},
		{"unknown licenses key", "version: v1\nlicenses:\n  banned: [GPL-3.0]\n"},
		{"bad category", "version: v1\nlicenses:\n  allowed_categories: [friendly]\n"},
		{"not yaml", "{{{{"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "policy.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`version: v1
licenses:
  forbidden:
    - GPL-3.0
`), 0644))

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"GPL-3.0"}, p.Forbidden)
}
