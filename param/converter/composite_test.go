package converter

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/paramconv/param/types"
)

type countingConverter struct {
	Converter
	calls int
}

func (c *countingConverter) Convert(ctx context.Context, value string, t *types.Type) (interface{}, error) {
	c.calls++
	return c.Converter.Convert(ctx, value, t)
}

func TestList_Convert(t *testing.T) {
	var testCases = []struct {
		description string
		separator   string
		value       string
		expect      []interface{}
	}{
		{description: "blank", value: "   ", expect: []interface{}{}},
		{description: "empty", value: "", expect: []interface{}{}},
		{description: "plain", value: "a,b,c", expect: []interface{}{"a", "b", "c"}},
		{description: "trimmed", value: " a , b ", expect: []interface{}{"a", "b"}},
		{description: "regex separator", separator: "|", value: "a|b", expect: []interface{}{"a", "b"}},
		{description: "trailing separator", value: "a,b,", expect: []interface{}{"a", "b"}},
	}
	for _, testCase := range testCases {
		element := &countingConverter{Converter: NewString("")}
		list := NewList(element, testCase.separator)
		actual, err := list.Convert(context.Background(), testCase.value, types.ListOf(types.Scalar(types.String)))
		require.NoError(t, err, testCase.description)
		assert.Equal(t, testCase.expect, actual, testCase.description)
		if len(testCase.expect) == 0 {
			assert.Equal(t, 0, element.calls, testCase.description)
		}
	}
}

func TestList_Accept(t *testing.T) {
	ints := NewNumberList(nil, "")
	assert.True(t, ints.Accept(types.ListOf(types.Scalar(types.Int))))
	assert.False(t, ints.Accept(types.SetOf(types.Scalar(types.Int))))
	assert.False(t, ints.Accept(types.ListOf(types.Scalar(types.String))))
	assert.False(t, ints.Accept(types.Scalar(types.Int)))
	assert.Equal(t, "NumberList", ints.Name())

	actual, err := ints.Convert(context.Background(), "1, 2,3", types.ListOf(types.Scalar(types.Int)))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{1, 2, 3}, actual)

	_, err = ints.Convert(context.Background(), "1,x", types.ListOf(types.Scalar(types.Int)))
	assert.ErrorIs(t, err, ErrConversionFailed)

	bools := NewBooleanList(";", "on", "off")
	actual, err = bools.Convert(context.Background(), "on;off;maybe", types.ListOf(types.Scalar(types.Bool)))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{true, false, false}, actual)

	color := types.Enumeration("Color", types.Names("RED", "GREEN")...)
	enums := NewEnumList("")
	actual, err = enums.Convert(context.Background(), "GREEN,RED", types.ListOf(color))
	require.NoError(t, err)
	assert.Len(t, actual, 2)
}

func TestSeparator(t *testing.T) {
	separator := NewSeparator("")
	assert.Equal(t, ",", separator.Literal())
	assert.Equal(t, ",", separator.Escaped())

	separator = NewSeparator(".")
	assert.Equal(t, `\.`, separator.Escaped())
	assert.Equal(t, []string{"a", "b"}, separator.Split("a.b"))
	assert.Nil(t, separator.Split(" "))
}

type person struct {
	Name string `yaml:"name"`
	Age  int    `yaml:"age"`
}

type fakeTable struct {
	rows []map[string]string
}

func (f *fakeTable) RowsAs(rowType reflect.Type) ([]interface{}, error) {
	ret := make([]interface{}, 0, len(f.rows))
	for _, row := range f.rows {
		if rowType == nil {
			ret = append(ret, row)
			continue
		}
		ret = append(ret, person{Name: row["name"]})
	}
	return ret, nil
}

type fakeTableFactory struct{}

func (fakeTableFactory) NewTable(_ context.Context, text string) (Table, error) {
	if strings.HasPrefix(text, "!") {
		return nil, errors.New("broken table")
	}
	table := &fakeTable{}
	for _, line := range strings.Split(strings.TrimSpace(text), "\n")[1:] {
		if line = strings.Trim(line, "|"); line != "" {
			table.rows = append(table.rows, map[string]string{"name": line})
		}
	}
	return table, nil
}

func TestExamplesTable_Convert(t *testing.T) {
	converter := NewExamplesTable(fakeTableFactory{})
	target := types.Scalar(types.ExamplesTable)
	assert.True(t, converter.Accept(target))
	assert.False(t, converter.Accept(types.Scalar(types.String)))

	actual, err := converter.Convert(context.Background(), "|name|\n|Ann|", target)
	require.NoError(t, err)
	rows, err := actual.(Table).RowsAs(nil)
	require.NoError(t, err)
	assert.Equal(t, []interface{}{map[string]string{"name": "Ann"}}, rows)

	_, err = converter.Convert(context.Background(), "!", target)
	assert.ErrorIs(t, err, ErrConversionFailed)
}

func TestTableRows_Convert(t *testing.T) {
	converter := NewTableRows(fakeTableFactory{})
	row := types.Scalar("Person", types.WithMarks(types.Rows), types.Bind[person]())
	plain := types.Scalar("Person", types.Bind[person]())

	var acceptCases = []struct {
		target *types.Type
		expect bool
	}{
		{target: row, expect: true},
		{target: types.ListOf(row), expect: true},
		{target: types.ListOf(plain, types.WithMarks(types.Rows)), expect: true},
		{target: plain, expect: false},
		{target: types.ListOf(plain), expect: false},
	}
	for i, testCase := range acceptCases {
		assert.Equal(t, testCase.expect, converter.Accept(testCase.target), "case %d", i)
	}

	actual, err := converter.Convert(context.Background(), "|name|\n|Ann|\n|Bob|", types.ListOf(row))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{person{Name: "Ann"}, person{Name: "Bob"}}, actual)

	actual, err = converter.Convert(context.Background(), "|name|\n|Ann|\n|Bob|", row)
	require.NoError(t, err)
	assert.Equal(t, person{Name: "Ann"}, actual)

	_, err = converter.Convert(context.Background(), "|name|", row)
	assert.ErrorIs(t, err, ErrNoRows)

	actual, err = converter.Convert(context.Background(), "|name|", types.ListOf(row))
	require.NoError(t, err)
	assert.Equal(t, []interface{}{}, actual)

	untyped := types.Parameterized(types.List, nil, types.WithMarks(types.Rows))
	require.True(t, converter.Accept(untyped))
	_, err = converter.Convert(context.Background(), "|name|\n|Ann|", untyped)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConversionFailed)
	assert.Contains(t, err.Error(), "missing row type")
}

type fakeDecoder struct {
	text   string
	target *types.Type
}

func (f *fakeDecoder) Decode(_ context.Context, text string, t *types.Type) (interface{}, error) {
	if text == "bad" {
		return nil, errors.New("invalid json")
	}
	f.text, f.target = text, t
	return map[string]interface{}{"decoded": true}, nil
}

func TestJSON_Convert(t *testing.T) {
	decoder := &fakeDecoder{}
	converter := NewJSON(decoder)
	bound := types.Scalar("Person", types.WithMarks(types.JSON), types.Bind[person]())

	assert.True(t, converter.Accept(bound))
	assert.True(t, converter.Accept(types.ListOf(bound)))
	assert.True(t, converter.Accept(types.Scalar(types.String, types.WithMarks(types.JSON))))
	assert.False(t, converter.Accept(types.Scalar(types.String)))

	actual, err := converter.Convert(context.Background(), `{"name":"Ann"}`, bound)
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"decoded": true}, actual)
	assert.Equal(t, `{"name":"Ann"}`, decoder.text)
	assert.True(t, bound.Equal(decoder.target))

	_, err = converter.Convert(context.Background(), "bad", bound)
	assert.ErrorIs(t, err, ErrConversionFailed)
}

type greeter struct {
	prefix string
}

type instances map[string]interface{}

func (i instances) InstanceOf(_ context.Context, name string) (interface{}, error) {
	if ret, ok := i[name]; ok {
		return ret, nil
	}
	return nil, errors.New("no instance " + name)
}

func TestMethodReturning_Convert(t *testing.T) {
	greeting := types.Scalar("Greeting")
	fn := func(_ context.Context, instance interface{}, value string) (interface{}, error) {
		if value == "" {
			return nil, errors.New("empty name")
		}
		return instance.(*greeter).prefix + value, nil
	}
	converter := NewMethodReturning("Greet", "Greeter", greeting, instances{"Greeter": &greeter{prefix: "hello "}}, fn)

	assert.True(t, converter.Accept(types.Scalar("Greeting")))
	assert.False(t, converter.Accept(types.Scalar(types.String)))
	assert.False(t, converter.Accept(types.ListOf(greeting)))
	assert.Equal(t, "MethodReturning(Greeter.Greet)", NameOf(converter))

	actual, err := converter.Convert(context.Background(), "Ann", greeting)
	require.NoError(t, err)
	assert.Equal(t, "hello Ann", actual)

	_, err = converter.Convert(context.Background(), "", greeting)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConversionFailed)
	assert.Contains(t, err.Error(), "failed to invoke method Greet with value  in Greeter")
	assert.Contains(t, err.Error(), "empty name")

	orphan := NewMethodReturning("Greet", "Missing", greeting, instances{}, fn)
	_, err = orphan.Convert(context.Background(), "Ann", greeting)
	assert.ErrorIs(t, err, ErrConversionFailed)

	static := NewMethodReturning("Upper", "strings", greeting, nil, func(_ context.Context, instance interface{}, value string) (interface{}, error) {
		assert.Nil(t, instance)
		return strings.ToUpper(value), nil
	})
	actual, err = static.Convert(context.Background(), "ann", greeting)
	require.NoError(t, err)
	assert.Equal(t, "ANN", actual)
}

func TestNameOf(t *testing.T) {
	assert.Equal(t, "Boolean", NameOf(NewBoolean("", "")))
	assert.Equal(t, "custom", NameOf(NewFunc("custom", nil, nil)))
	assert.Equal(t, "countingConverter", NameOf(&countingConverter{Converter: NewEnum()}))
}
