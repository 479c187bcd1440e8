// Package maplecode decodes MapleCode documents: a compact, self-describing
// binary format encoding a tree of strongly-typed nodes. Each node has a
// declared type, generic string parameters, positional typed arguments, and
// optional children. A document either carries its own node-type dictionary
// inline or borrows one from another already-decoded document.
//
// The package only reads documents; it has no encoder and never mutates a
// decoded Document. Construct a Document with ReadFromData or
// ReadFromDataWithTypes, then navigate it with Node and Argument views.
package maplecode
