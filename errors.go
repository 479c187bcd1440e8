package maplecode

import (
	"errors"
	"fmt"
)

// DecodeErrorKind classifies why a MapleCode document failed to decode or a
// view operation failed against an otherwise-valid document.
type DecodeErrorKind uint8

const (
	// TruncatedPayload means the declared table lengths exceed the supplied bytes.
	TruncatedPayload DecodeErrorKind = iota + 1
	// MissingTypeList means nodes were declared but no type dictionary is available.
	MissingTypeList
	// DuplicateTypeList means both an inline and an external dictionary were supplied.
	DuplicateTypeList
	// InvalidString means a string table entry has no terminator before the data range ends.
	InvalidString
	// InvalidTypeDef means a type record has an out-of-range name index, data offset, or argument kind.
	InvalidTypeDef
	// InvalidStringIndex means a node references a string table index at or beyond the table size.
	InvalidStringIndex
	// InvalidNodeType means a node references a type index at or beyond the type list size.
	InvalidNodeType
	// InvalidNodeData means a node's declared extent exceeds the node table.
	InvalidNodeData
	// InvalidHierarchy means parent search cannot place the target node.
	InvalidHierarchy
	// WrongArgumentKind means a typed accessor was invoked for the wrong argument kind.
	WrongArgumentKind
	// DataAlignment means a typed data blob length is not a multiple of the requested element size.
	DataAlignment
	// WidthMismatch means an inherited type dictionary's document uses different table widths
	// than the importing document. This kind is an addition beyond spec.md's eleven (see
	// SPEC_FULL.md §4.4 and DESIGN.md); it never overrides or removes any of the eleven above.
	WidthMismatch
)

func (k DecodeErrorKind) String() string {
	switch k {
	case TruncatedPayload:
		return "TruncatedPayload"
	case MissingTypeList:
		return "MissingTypeList"
	case DuplicateTypeList:
		return "DuplicateTypeList"
	case InvalidString:
		return "InvalidString"
	case InvalidTypeDef:
		return "InvalidTypeDef"
	case InvalidStringIndex:
		return "InvalidStringIndex"
	case InvalidNodeType:
		return "InvalidNodeType"
	case InvalidNodeData:
		return "InvalidNodeData"
	case InvalidHierarchy:
		return "InvalidHierarchy"
	case WrongArgumentKind:
		return "WrongArgumentKind"
	case DataAlignment:
		return "DataAlignment"
	case WidthMismatch:
		return "WidthMismatch"
	default:
		return "Unknown"
	}
}

// DecodeError is the error type returned for every decode or view failure.
// Offset is a best-effort byte offset where the failure was detected: for
// header errors it counts from the start of the raw payload; for table-decode
// errors from the start of the document body (the payload after its header,
// which is 1 to 17 bytes long); for node and argument errors from the start
// of the node table. It is -1 when no single offset is meaningful (the Err*
// sentinels, and operations on the null node).
type DecodeError struct {
	Kind   DecodeErrorKind
	Offset int
	Msg    string
}

func (e *DecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("maplecode: %s at offset %d: %s", e.Kind, e.Offset, e.Msg)
	}
	return fmt.Sprintf("maplecode: %s: %s", e.Kind, e.Msg)
}

// Is enables errors.Is(err, ErrTruncatedPayload) style sentinel comparisons
// against the package-level Err* sentinels declared below, matching the kind
// rather than pointer identity.
func (e *DecodeError) Is(target error) bool {
	var de *DecodeError
	if errors.As(target, &de) {
		return de.Kind == e.Kind && de.Offset < 0
	}
	return false
}

// Sentinel errors, one per DecodeErrorKind, for use with errors.Is. Mirrors
// glint's ErrInvalidDocument/ErrSchemaNotFound package-level var block and
// hivekit's edit.Err* sentinel block.
var (
	ErrTruncatedPayload  = &DecodeError{Kind: TruncatedPayload, Offset: -1}
	ErrMissingTypeList   = &DecodeError{Kind: MissingTypeList, Offset: -1}
	ErrDuplicateTypeList = &DecodeError{Kind: DuplicateTypeList, Offset: -1}
	ErrInvalidString     = &DecodeError{Kind: InvalidString, Offset: -1}
	ErrInvalidTypeDef    = &DecodeError{Kind: InvalidTypeDef, Offset: -1}
	ErrInvalidStringIdx  = &DecodeError{Kind: InvalidStringIndex, Offset: -1}
	ErrInvalidNodeType   = &DecodeError{Kind: InvalidNodeType, Offset: -1}
	ErrInvalidNodeData   = &DecodeError{Kind: InvalidNodeData, Offset: -1}
	ErrInvalidHierarchy  = &DecodeError{Kind: InvalidHierarchy, Offset: -1}
	ErrWrongArgumentKind = &DecodeError{Kind: WrongArgumentKind, Offset: -1}
	ErrDataAlignment     = &DecodeError{Kind: DataAlignment, Offset: -1}
	ErrWidthMismatch     = &DecodeError{Kind: WidthMismatch, Offset: -1}
)

func newErr(kind DecodeErrorKind, offset int, format string, args ...any) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset, Msg: fmt.Sprintf(format, args...)}
}
