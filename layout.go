package maplecode

// tableRange is a half-open [start,end) interval of byte offsets within the
// document body (i.e. everything after the header).
type tableRange struct {
	start, end int
}

func (r tableRange) length() int {
	return r.end - r.start
}

// tableWidths holds the four independently-chosen per-document widths.
type tableWidths struct {
	str, typ, node, data width
}

// layout is the result of decoding the 1-byte sizeMode plus the four table
// lengths that follow it: the per-document widths and the four resolved
// table ranges, plus the header length consumed.
type layout struct {
	widths     tableWidths
	str        tableRange
	typ        tableRange
	node       tableRange
	data       tableRange
	headerSize int
}

// decodeLayout reads the wire header (spec.md §4.2, §6.1): a 1-byte sizeMode
// packing four 2-bit width selectors, followed by one length field per table
// at its resolved width, then derives the four table ranges by prefix-summing
// lengths and validates that the body is long enough to hold them.
func decodeLayout(raw []byte) (layout, error) {
	if len(raw) < 1 {
		return layout{}, newErr(TruncatedPayload, 0, "payload too short for sizeMode byte")
	}

	sizeMode := raw[0]
	w := tableWidths{
		str:  sizeModeToWidth[sizeMode&0b11],
		typ:  sizeModeToWidth[(sizeMode>>2)&0b11],
		node: sizeModeToWidth[(sizeMode>>4)&0b11],
		data: sizeModeToWidth[(sizeMode>>6)&0b11],
	}

	headerSize := 1 + int(w.str) + int(w.typ) + int(w.node) + int(w.data)
	if len(raw) < headerSize {
		return layout{}, newErr(TruncatedPayload, 0, "payload too short for table length fields")
	}

	c := newCursor(raw)
	c.skip(1)

	lstr := int(c.readWidth(w.str))
	ltyp := int(c.readWidth(w.typ))
	lnode := int(c.readWidth(w.node))
	ldata := int(c.readWidth(w.data))

	body := raw[headerSize:]
	total := lstr + ltyp + lnode + ldata
	if len(body) < total {
		return layout{}, newErr(TruncatedPayload, headerSize, "declared table lengths (%d) exceed supplied body (%d)", total, len(body))
	}

	strR := tableRange{0, lstr}
	typR := tableRange{strR.end, strR.end + ltyp}
	nodeR := tableRange{typR.end, typR.end + lnode}
	dataR := tableRange{nodeR.end, nodeR.end + ldata}

	return layout{
		widths:     w,
		str:        strR,
		typ:        typR,
		node:       nodeR,
		data:       dataR,
		headerSize: headerSize,
	}, nil
}
