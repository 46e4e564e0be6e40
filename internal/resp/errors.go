package resp

import "fmt"

// Wire-level decode errors. These never reach the client directly — per
// the server/client decode-error asymmetry, the connection loop swallows
// them and calls Reset on its Decoder, which clears the buffered bytes.

type FirstByteNotRecognized struct {
	Byte byte
}

func (e *FirstByteNotRecognized) Error() string {
	return fmt.Sprintf("resp: first byte not recognized: %q", e.Byte)
}

type ValueError struct {
	Msg string
}

func (e *ValueError) Error() string { return "resp: " + e.Msg }

type BulkStringWrongSize struct {
	Msg string
}

func (e *BulkStringWrongSize) Error() string { return "resp: " + e.Msg }
