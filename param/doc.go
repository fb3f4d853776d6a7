// Package param converts raw step parameter text into typed values.
//
// A Registry holds an ordered list of converters (index 0 has the highest
// priority) and dispatches each conversion to the first converter accepting
// the requested type descriptor. Parameterized collection types with no
// direct converter are assembled element by element:
//
//	registry, err := param.New(param.WithLocale("de"))
//	...
//	value, err := registry.Convert(ctx, "1,5 | 2,25", types.SortedSetOf(types.Scalar(types.Decimal)))
package param
