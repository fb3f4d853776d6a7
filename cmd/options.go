package cmd

// Options is the root for the CLI. Struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config string `short:"f" long:"config" description:"registry configuration YAML/JSON URL"`

	Convert    *ConvertCmd    `command:"convert"    description:"Convert a raw value into a typed value"`
	Table      *TableCmd      `command:"table"      description:"Parse an examples table and print its rows"`
	Converters *ConvertersCmd `command:"converters" description:"List registered converters in priority order"`
}

// Init instantiates the sub-command referenced by the first positional argument
// so that go-flags can populate its fields.
func (o *Options) Init(firstArg string) {
	switch firstArg {
	case "convert":
		o.Convert = &ConvertCmd{}
	case "table":
		o.Table = &TableCmd{}
	case "converters":
		o.Converters = &ConvertersCmd{}
	}
}
