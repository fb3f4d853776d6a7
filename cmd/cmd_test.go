package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/paramconv/param/table"
)

func TestConvertCmd_Execute(t *testing.T) {
	var testCases = []struct {
		description string
		cmd         *ConvertCmd
		expect      string
		hasError    bool
	}{
		{description: "int", cmd: &ConvertCmd{Type: "int", Value: "42"}, expect: "42"},
		{description: "list", cmd: &ConvertCmd{Type: "List<string>", Value: " a , b "}, expect: `["a","b"]`},
		{description: "sorted set", cmd: &ConvertCmd{Type: "SortedSet<int>", Value: "3,1,2,1"}, expect: `[1,2,3]`},
		{description: "decimal", cmd: &ConvertCmd{Type: "decimal.Decimal", Value: "3.1415"}, expect: `"3.1415"`},
		{description: "enum", cmd: &ConvertCmd{Type: "enum Color{RED,GREEN}", Value: "GREEN"}, expect: `"GREEN"`},
		{description: "stdin", cmd: &ConvertCmd{Type: "bool", in: strings.NewReader("true\n")}, expect: "true"},
		{description: "bad type", cmd: &ConvertCmd{Type: "List<", Value: "1"}, hasError: true},
		{description: "bad value", cmd: &ConvertCmd{Type: "int", Value: "x"}, hasError: true},
	}

	for _, testCase := range testCases {
		out := &bytes.Buffer{}
		testCase.cmd.out = out
		err := testCase.cmd.Execute(nil)
		if testCase.hasError {
			assert.Error(t, err, testCase.description)
			continue
		}
		require.NoError(t, err, testCase.description)
		assert.JSONEq(t, testCase.expect, out.String(), testCase.description)
	}
}

func TestConvertCmd_InputFile(t *testing.T) {
	location := filepath.Join(t.TempDir(), "value.txt")
	require.NoError(t, os.WriteFile(location, []byte("1,2\n"), 0o644))
	out := &bytes.Buffer{}
	cmd := &ConvertCmd{Type: "List<int>", InputFile: location, out: out}
	require.NoError(t, cmd.Execute(nil))
	assert.JSONEq(t, `[1,2]`, out.String())
}

func TestTableCmd_Execute(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &TableCmd{Source: "{transformer=FROM_LANDSCAPE}\n|name|Ann|\n|age|30|", JSON: true, out: out}
	require.NoError(t, cmd.Execute(nil))
	assert.JSONEq(t, `[{"name":"Ann","age":"30"}]`, out.String())

	out.Reset()
	cmd = &TableCmd{Source: "| a | b |\n|-- note --|\n| 1 | 2 |", out: out}
	require.NoError(t, cmd.Execute(nil))
	assert.Equal(t, "|a|b|\n|1|2|\n", out.String())
}

func TestTableCmd_RegistryTransformers(t *testing.T) {
	registry, err := registrySingleton()
	require.NoError(t, err)
	factory, ok := registry.TableFactory().(*table.Factory)
	require.True(t, ok)
	factory.Register("UPPER", func(grid [][]string, _ table.Properties) ([][]string, error) {
		for _, row := range grid {
			for i, cell := range row {
				row[i] = strings.ToUpper(cell)
			}
		}
		return grid, nil
	})

	out := &bytes.Buffer{}
	cmd := &TableCmd{Source: "{transformer=UPPER}\n|name|\n|ann|", JSON: true, out: out}
	require.NoError(t, cmd.Execute(nil))
	assert.JSONEq(t, `[{"NAME":"ANN"}]`, out.String())
}

func TestConvertersCmd_Execute(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := &ConvertersCmd{Pattern: "String, Json", out: out}
	require.NoError(t, cmd.Execute(nil))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.GreaterOrEqual(t, len(lines), 3)
	last := lines[len(lines)-1]
	assert.True(t, strings.HasSuffix(last, "\tJson"), last)
	assert.Contains(t, out.String(), "\tString\n")
	assert.Contains(t, out.String(), "\tStringList\n")
}

func TestExtractConfigPath(t *testing.T) {
	var testCases = []struct {
		args   []string
		expect string
	}{
		{args: []string{"convert", "-f", "cfg.yaml"}, expect: "cfg.yaml"},
		{args: []string{"--config=mem://localhost/cfg.yaml", "table"}, expect: "mem://localhost/cfg.yaml"},
		{args: []string{"converters", "-f"}, expect: ""},
		{args: nil, expect: ""},
	}
	for _, testCase := range testCases {
		assert.Equal(t, testCase.expect, extractConfigPath(testCase.args), strings.Join(testCase.args, " "))
	}
}
