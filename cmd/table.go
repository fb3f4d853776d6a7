package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/viant/paramconv/param/table"
)

// TableCmd parses an inline table or the resource naming one and prints its
// rows.
type TableCmd struct {
	Source string `short:"s" long:"source" description:"inline pipe table or resource URL" required:"yes"`
	JSON   bool   `long:"json" description:"print rows as JSON"`

	out io.Writer
}

func (c *TableCmd) Execute(_ []string) error {
	registry, err := registrySingleton()
	if err != nil {
		return err
	}
	created, err := registry.TableFactory().NewTable(context.Background(), c.Source)
	if err != nil {
		return err
	}
	parsed, ok := created.(*table.Table)
	if !ok {
		return fmt.Errorf("unsupported table type %T", created)
	}
	out := output(c.out)
	if !c.JSON {
		_, err = fmt.Fprint(out, parsed.String())
		return err
	}
	data, err := json.MarshalIndent(parsed.Rows(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode table rows: %w", err)
	}
	_, err = fmt.Fprintln(out, string(data))
	return err
}
