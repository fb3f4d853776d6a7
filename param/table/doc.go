// Package table parses examples tables: pipe separated text with a header
// row, optional "|--" comment lines and an optional leading properties block
// such as {transformer=FROM_LANDSCAPE}. Text without a pipe is treated as a
// resource identifier and loaded first.
//
//	|name|age|
//	|-- retired people are skipped --|
//	|Ann |30 |
package table
