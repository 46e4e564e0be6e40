package resp

import "strconv"

// Encoder is a pure function from native values to RESP bytes, grounded
// on the teacher's Writer.Deserialize (writer.go): the same switch-on-tag
// structure, generalized to the Frame and Reply sum types used here.

// EncodeFrame renders a decoded Frame back to RESP bytes. Used for the
// round-trip testable property (decode(encode(f)) == f) and by anything
// that needs to re-serialize a raw frame rather than a command reply.
func EncodeFrame(f Frame) []byte {
	var buf []byte
	return appendFrame(buf, f)
}

func appendFrame(buf []byte, f Frame) []byte {
	switch f.Typ {
	case SimpleStringFrame:
		buf = append(buf, '+')
		buf = append(buf, f.Str...)
		return append(buf, '\r', '\n')
	case ErrorFrame:
		buf = append(buf, '-')
		buf = append(buf, f.Str...)
		return append(buf, '\r', '\n')
	case IntegerFrame:
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, f.Int, 10)
		return append(buf, '\r', '\n')
	case BulkStringFrame:
		if f.Null {
			return append(buf, '$', '-', '1', '\r', '\n')
		}
		buf = append(buf, '$')
		buf = strconv.AppendInt(buf, int64(len(f.Str)), 10)
		buf = append(buf, '\r', '\n')
		buf = append(buf, f.Str...)
		return append(buf, '\r', '\n')
	case ArrayFrame:
		if f.Null {
			return append(buf, '*', '-', '1', '\r', '\n')
		}
		buf = append(buf, '*')
		buf = strconv.AppendInt(buf, int64(len(f.Elems)), 10)
		buf = append(buf, '\r', '\n')
		for _, e := range f.Elems {
			buf = appendFrame(buf, e)
		}
		return buf
	default:
		return buf
	}
}

// EncodeReply renders a command-layer Reply to RESP bytes: OK and the
// two nil sentinels get their own fixed encodings; everything else maps
// onto the same bulk-string/integer/array/error wire shapes as EncodeFrame.
func EncodeReply(r Reply) []byte {
	switch r.Typ {
	case ReplyOK:
		return []byte("+OK\r\n")
	case ReplyNilBulk:
		return []byte("$-1\r\n")
	case ReplyNilArray:
		return []byte("*-1\r\n")
	case ReplyInt:
		return appendFrame(nil, Frame{Typ: IntegerFrame, Int: r.Int})
	case ReplyBulk:
		return appendFrame(nil, Frame{Typ: BulkStringFrame, Str: r.Str})
	case ReplyArray:
		elems := make([]Frame, len(r.Arr))
		for i, s := range r.Arr {
			elems[i] = Frame{Typ: BulkStringFrame, Str: s}
		}
		return appendFrame(nil, Frame{Typ: ArrayFrame, Elems: elems})
	case ReplyError:
		return appendFrame(nil, Frame{Typ: ErrorFrame, Str: r.ErrMsg})
	default:
		return appendFrame(nil, Frame{Typ: ErrorFrame, Str: "ERR internal: unencodable reply"})
	}
}
