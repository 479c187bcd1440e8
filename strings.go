package maplecode

import "bytes"

// decodeStringTable decodes the STR table (spec.md §4.3): a contiguous run of
// dataWidth-sized offsets into the DATA table, each pointing at a
// NUL-terminated byte string. Strings are returned in encounter order; their
// index in the result is their string-table index. Bytes are preserved
// verbatim, not validated as UTF-8, per spec.md §4.3.
func decodeStringTable(body []byte, str, data tableRange, dataW width) ([]string, error) {
	var result []string

	pos := str.start
	for pos < str.end {
		if pos+int(dataW) > str.end {
			return nil, newErr(InvalidString, pos, "string table truncated before offset field")
		}
		offset := int(readWidthAt(body, pos, dataW))
		pos += int(dataW)

		strStart := data.start + offset
		if strStart < data.start || strStart > data.end {
			return nil, newErr(InvalidString, pos, "string offset %d out of data range", offset)
		}

		window := body[strStart:data.end]
		term := bytes.IndexByte(window, 0)
		if term < 0 {
			return nil, newErr(InvalidString, strStart, "unterminated string")
		}

		result = append(result, string(window[:term]))
	}

	return result, nil
}
