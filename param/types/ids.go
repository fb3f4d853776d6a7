package types

// Scalar type ids understood by the default converters.
const (
	Int8        = "int8"
	Int16       = "int16"
	Int32       = "int32"
	Int         = "int"
	Int64       = "int64"
	Uint8       = "uint8"
	Uint16      = "uint16"
	Uint32      = "uint32"
	Uint        = "uint"
	Uint64      = "uint64"
	Float32     = "float32"
	Float64     = "float64"
	BigInt      = "big.Int"
	Decimal     = "decimal.Decimal"
	AtomicInt32 = "atomic.Int32"
	AtomicInt64 = "atomic.Int64"
	// Number is the generic numeric type: int64 when the text is integral,
	// float64 otherwise.
	Number = "Number"

	String        = "string"
	Bool          = "bool"
	Time          = "time.Time"
	ExamplesTable = "ExamplesTable"
)

// Raw ids of the collection shapes the registry can assemble.
const (
	List         = "List"
	Set          = "Set"
	SortedSet    = "SortedSet"
	NavigableSet = "NavigableSet"
)

var numeric = map[string]bool{
	Int8: true, Int16: true, Int32: true, Int: true, Int64: true,
	Uint8: true, Uint16: true, Uint32: true, Uint: true, Uint64: true,
	Float32: true, Float64: true,
	BigInt: true, Decimal: true,
	AtomicInt32: true, AtomicInt64: true,
	Number: true,
}

// IsNumeric reports whether id names a numeric scalar.
func IsNumeric(id string) bool {
	return numeric[id]
}
