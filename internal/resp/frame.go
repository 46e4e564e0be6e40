package resp

// frame.go defines the decoded wire representation of RESP values (Frame)
// and the native reply values the command layer hands back to the
// connection loop (Reply). Both are modeled as explicit tagged unions
// rather than dynamically typed values, since Go has no ad-hoc union type
// to lean on the way the original's runtime type checks did.

// FrameType tags the variant carried by a Frame.
type FrameType int

const (
	SimpleStringFrame FrameType = iota
	ErrorFrame
	IntegerFrame
	BulkStringFrame
	ArrayFrame
)

// Frame is one decoded RESP value, possibly nested.
//
// Only the fields relevant to Typ are meaningful:
//   - SimpleStringFrame / ErrorFrame: Str
//   - IntegerFrame: Int
//   - BulkStringFrame: Str, unless Null is true (the `$-1\r\n` case)
//   - ArrayFrame: Elems, unless Null is true (the `*-1\r\n` case)
type Frame struct {
	Typ   FrameType
	Str   string
	Int   int64
	Elems []Frame
	Null  bool
}

// BulkStringArray reports whether f is a non-null array of non-null bulk strings —
// the only top-level shape the connection loop accepts as a command.
func (f Frame) BulkStringArray() ([]string, bool) {
	if f.Typ != ArrayFrame || f.Null {
		return nil, false
	}
	out := make([]string, 0, len(f.Elems))
	for _, e := range f.Elems {
		if e.Typ != BulkStringFrame || e.Null {
			return nil, false
		}
		out = append(out, e.Str)
	}
	return out, true
}

// ReplyType tags the variant carried by a Reply.
type ReplyType int

const (
	ReplyOK ReplyType = iota
	ReplyNilBulk
	ReplyNilArray
	ReplyInt
	ReplyBulk
	ReplyArray
	ReplyError
)

// Reply is a value the command layer returns to be encoded back onto the
// wire. OK, NilBulk and NilArray are the three sentinel constructors the
// design notes call for, kept distinct from an ordinary bulk string or
// array so the encoder never has to guess which "null" was meant.
type Reply struct {
	Typ   ReplyType
	Int   int64
	Str   string
	Arr   []string
	ErrMsg string
}

func OK() Reply                  { return Reply{Typ: ReplyOK} }
func NilBulk() Reply             { return Reply{Typ: ReplyNilBulk} }
func NilArray() Reply            { return Reply{Typ: ReplyNilArray} }
func Int(n int64) Reply          { return Reply{Typ: ReplyInt, Int: n} }
func Bulk(s string) Reply        { return Reply{Typ: ReplyBulk, Str: s} }
func Array(ss []string) Reply    { return Reply{Typ: ReplyArray, Arr: ss} }
func Err(msg string) Reply       { return Reply{Typ: ReplyError, ErrMsg: msg} }
