package resource

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadText(t *testing.T) {
	baseDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(baseDir, "people.table"), []byte("|name|\n|Ann|"), 0o644))

	var testCases = []struct {
		description string
		baseURL     string
		id          string
		expect      string
		hasError    bool
	}{
		{description: "relative", baseURL: baseDir, id: "people.table", expect: "|name|\n|Ann|"},
		{description: "relative with spaces", baseURL: baseDir, id: " people.table ", expect: "|name|\n|Ann|"},
		{description: "absolute", id: filepath.Join(baseDir, "people.table"), expect: "|name|\n|Ann|"},
		{description: "file url", id: "file://" + filepath.Join(baseDir, "people.table"), expect: "|name|\n|Ann|"},
		{description: "missing", baseURL: baseDir, id: "missing.table", hasError: true},
	}

	for _, testCase := range testCases {
		loader := New(testCase.baseURL)
		actual, err := loader.LoadText(context.Background(), testCase.id)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
	}
}

func TestLoader_URL(t *testing.T) {
	loader := New("mem://localhost/params")
	assert.Equal(t, "mem://localhost/params/a.json", loader.URL("a.json"))
	assert.Equal(t, "s3://bucket/a.json", loader.URL("s3://bucket/a.json"))
	assert.Equal(t, "/tmp/a.json", loader.URL("/tmp/a.json"))
	assert.Equal(t, "a.json", New("").URL("a.json"))
}
