// Package jsoncore implements the parsing and serialization engine of a
// compact, arena-backed JSON document representation. A Document owns all
// of the memory its value tree lives in; parsing a byte slice allocates
// nodes and long string bytes out of two bump-allocated arenas, and the
// whole tree is released in one step when the Document is released.
//
// The value tree is a fixed 32-byte node record (see node.go) rather than
// a Go interface/sum type, trading a larger node than the theoretical
// 24-byte packed layout for a representation that is portable across host
// byte orders and does not require unsafe pointer arithmetic.
package jsoncore
