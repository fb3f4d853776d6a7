package cmd

import (
	"fmt"
	"io"

	"github.com/viant/paramconv/internal/matcher"
	"github.com/viant/paramconv/param/converter"
)

// ConvertersCmd prints the registered converters in priority order.
type ConvertersCmd struct {
	Pattern string `short:"p" long:"pattern" description:"name prefix filter, comma separated alternatives" default:"*"`

	out io.Writer
}

func (c *ConvertersCmd) Execute(_ []string) error {
	registry, err := registrySingleton()
	if err != nil {
		return err
	}
	out := output(c.out)
	for i, item := range registry.Converters() {
		name := converter.NameOf(item)
		if !matcher.Match(c.Pattern, name) {
			continue
		}
		if _, err := fmt.Fprintf(out, "%d\t%s\n", i, name); err != nil {
			return err
		}
	}
	return nil
}
