package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/viant/paramconv/internal/conv"
	"github.com/viant/paramconv/param/converter"
	"github.com/viant/paramconv/param/number"
	"github.com/viant/paramconv/param/types"
)

// ConvertCmd converts one raw value. The value comes from --value, --input
// or stdin, in that order.
type ConvertCmd struct {
	Type      string `short:"t" long:"type" description:"target type expression, e.g. int, List<decimal.Decimal>, enum Color{RED,GREEN}" required:"yes"`
	Value     string `short:"v" long:"value" description:"raw value"`
	InputFile string `short:"i" long:"input" description:"file holding the raw value (stdin if empty)"`
	Fluent    bool   `long:"fluent" description:"resolve enumeration constants from prose"`

	out io.Writer
	in  io.Reader
}

func (c *ConvertCmd) Execute(_ []string) error {
	registry, err := registrySingleton()
	if err != nil {
		return err
	}
	target, err := types.Parse(c.Type)
	if err != nil {
		return err
	}
	value, err := c.value()
	if err != nil {
		return err
	}
	if c.Fluent {
		registry.AddConverters(converter.NewFluentEnum())
	}

	ctx := number.WithExecution(context.Background())
	defer registry.Release(ctx)
	result, err := registry.Convert(ctx, value, target)
	if err != nil {
		return err
	}
	data, err := conv.Marshal(result)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output(c.out), string(data))
	return err
}

func (c *ConvertCmd) value() (string, error) {
	if c.Value != "" {
		return c.Value, nil
	}
	reader := c.in
	if c.InputFile != "" {
		f, err := os.Open(c.InputFile)
		if err != nil {
			return "", fmt.Errorf("open input file: %w", err)
		}
		defer f.Close()
		reader = f
	}
	if reader == nil {
		reader = os.Stdin
	}
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read value: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
