package maplecode

// decodeTypeDict decodes the inline TYPE table (spec.md §4.4): each record is
// (strWidth name-index, dataWidth dataOffset, u8 genericCount, u8 hasChildren),
// with the record's argument list stored out-of-line in the DATA table at
// dataOffset: a 1-byte argument count followed by that many kind-code bytes.
func decodeTypeDict(body []byte, typ, data tableRange, w tableWidths, strList []string, aw [numArgumentKinds]int) ([]NodeType, error) {
	var result []NodeType

	pos := typ.start
	for pos < typ.end {
		recordStart := pos

		if pos+int(w.str) > typ.end {
			return nil, newErr(InvalidTypeDef, recordStart, "type record truncated before name index")
		}
		nameIdx := int(readWidthAt(body, pos, w.str))
		pos += int(w.str)
		if nameIdx >= len(strList) {
			return nil, newErr(InvalidTypeDef, recordStart, "name index %d >= string table size %d", nameIdx, len(strList))
		}

		if pos+int(w.data) > typ.end {
			return nil, newErr(InvalidTypeDef, recordStart, "type record truncated before data offset")
		}
		dataOffset := int(readWidthAt(body, pos, w.data))
		pos += int(w.data)
		if dataOffset < 0 || dataOffset >= data.length() {
			return nil, newErr(InvalidTypeDef, recordStart, "data offset %d out of range [0,%d)", dataOffset, data.length())
		}

		if pos+2 > typ.end {
			return nil, newErr(InvalidTypeDef, recordStart, "type record truncated before genericCount/hasChildren")
		}
		genericCount := int(body[pos])
		pos++
		hasChildren := body[pos] != 0
		pos++

		argCountPos := data.start + dataOffset
		if argCountPos >= data.end {
			return nil, newErr(InvalidTypeDef, recordStart, "argument count offset out of data range")
		}
		argCount := int(body[argCountPos])
		if dataOffset+1+argCount > data.length() {
			return nil, newErr(InvalidTypeDef, recordStart, "argument list (%d bytes) exceeds data range", argCount)
		}

		args := make([]ArgumentKind, argCount)
		for i := 0; i < argCount; i++ {
			code := body[argCountPos+1+i]
			if code >= byte(numArgumentKinds) {
				return nil, newErr(InvalidTypeDef, recordStart, "argument kind code %d > 10", code)
			}
			args[i] = ArgumentKind(code)
		}

		result = append(result, NodeType{
			Name:         strList[nameIdx],
			GenericCount: genericCount,
			Args:         args,
			HasChildren:  hasChildren,
			TotalLen:     totalLen(w.typ, w.str, genericCount, args, aw),
		})
	}

	return result, nil
}

// cloneTypeDict copies an inherited type dictionary by value so the new
// Document's type list never aliases the source Document's slice, per
// spec.md §5 ("the inherited data is cloned; B and A thereafter have
// independent lifetimes").
func cloneTypeDict(src []NodeType) []NodeType {
	out := make([]NodeType, len(src))
	for i, t := range src {
		args := make([]ArgumentKind, len(t.Args))
		copy(args, t.Args)
		out[i] = NodeType{
			Name:         t.Name,
			GenericCount: t.GenericCount,
			Args:         args,
			HasChildren:  t.HasChildren,
			TotalLen:     t.TotalLen,
		}
	}
	return out
}
