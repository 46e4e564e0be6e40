package resp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDecoderSimpleFrames(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want Frame
	}{
		{"simple string", "+OK\r\n", Frame{Typ: SimpleStringFrame, Str: "OK"}},
		{"error", "-ERR bad\r\n", Frame{Typ: ErrorFrame, Str: "ERR bad"}},
		{"integer", ":42\r\n", Frame{Typ: IntegerFrame, Int: 42}},
		{"negative integer", ":-7\r\n", Frame{Typ: IntegerFrame, Int: -7}},
		{"bulk string", "$5\r\nhello\r\n", Frame{Typ: BulkStringFrame, Str: "hello"}},
		{"empty bulk string", "$0\r\n\r\n", Frame{Typ: BulkStringFrame, Str: ""}},
		{"nil bulk string", "$-1\r\n", Frame{Typ: BulkStringFrame, Null: true}},
		{"nil array", "*-1\r\n", Frame{Typ: ArrayFrame, Null: true}},
		{"empty array", "*0\r\n", Frame{Typ: ArrayFrame, Elems: []Frame{}}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := NewDecoder()
			frames, err := d.Feed([]byte(tc.in))
			require.NoError(t, err)
			require.Len(t, frames, 1)
			require.Equal(t, tc.want, frames[0])
		})
	}
}

func TestDecoderNestedArray(t *testing.T) {
	d := NewDecoder()
	in := "*2\r\n$3\r\nfoo\r\n*2\r\n:1\r\n:2\r\n"
	frames, err := d.Feed([]byte(in))
	require.NoError(t, err)
	require.Len(t, frames, 1)

	want := Frame{
		Typ: ArrayFrame,
		Elems: []Frame{
			{Typ: BulkStringFrame, Str: "foo"},
			{Typ: ArrayFrame, Elems: []Frame{
				{Typ: IntegerFrame, Int: 1},
				{Typ: IntegerFrame, Int: 2},
			}},
		},
	}
	require.Equal(t, want, frames[0])
}

func TestDecoderChunkInvariance(t *testing.T) {
	whole := "*3\r\n$3\r\nSET\r\n$1\r\n1\r\n$3\r\none\r\n*2\r\n$3\r\nGET\r\n$1\r\n1\r\n"

	full := NewDecoder()
	wantFrames, err := full.Feed([]byte(whole))
	require.NoError(t, err)
	require.Len(t, wantFrames, 2)

	splits := [][]int{
		{1, 2, 3},
		{10, 5, 100},
		{len(whole)},
	}

	for _, sizes := range splits {
		d := NewDecoder()
		var got []Frame
		pos := 0
		for _, sz := range sizes {
			end := pos + sz
			if end > len(whole) {
				end = len(whole)
			}
			frames, err := d.Feed([]byte(whole[pos:end]))
			require.NoError(t, err)
			got = append(got, frames...)
			pos = end
		}
		if pos < len(whole) {
			frames, err := d.Feed([]byte(whole[pos:]))
			require.NoError(t, err)
			got = append(got, frames...)
		}
		require.Equal(t, wantFrames, got)
	}
}

func TestDecoderByteAtATime(t *testing.T) {
	whole := []byte("*2\r\n$4\r\nECHO\r\n$11\r\nhello world\r\n")
	d := NewDecoder()
	var got []Frame
	for _, b := range whole {
		frames, err := d.Feed([]byte{b})
		require.NoError(t, err)
		got = append(got, frames...)
	}
	require.Len(t, got, 1)
	arr, ok := got[0].BulkStringArray()
	require.True(t, ok)
	require.Equal(t, []string{"ECHO", "hello world"}, arr)
}

func TestDecoderFirstByteNotRecognized(t *testing.T) {
	d := NewDecoder()
	_, err := d.Feed([]byte("#nope\r\n"))
	require.Error(t, err)
	var target *FirstByteNotRecognized
	require.ErrorAs(t, err, &target)
}

func TestDecoderBulkStringWrongSize(t *testing.T) {
	d := NewDecoder()
	_, err := d.Feed([]byte("$3\r\nabcXY"))
	require.Error(t, err)
	var target *BulkStringWrongSize
	require.ErrorAs(t, err, &target)
}

func TestDecoderValueErrorBadInteger(t *testing.T) {
	d := NewDecoder()
	_, err := d.Feed([]byte(":notanumber\r\n"))
	require.Error(t, err)
	var target *ValueError
	require.ErrorAs(t, err, &target)
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	frames := []Frame{
		{Typ: SimpleStringFrame, Str: "PONG"},
		{Typ: ErrorFrame, Str: "ERR oops"},
		{Typ: IntegerFrame, Int: -123},
		{Typ: BulkStringFrame, Str: "payload"},
		{Typ: BulkStringFrame, Null: true},
		{Typ: ArrayFrame, Null: true},
		{Typ: ArrayFrame, Elems: []Frame{
			{Typ: BulkStringFrame, Str: "a"},
			{Typ: BulkStringFrame, Str: "b"},
		}},
	}

	for _, f := range frames {
		encoded := EncodeFrame(f)
		d := NewDecoder()
		got, err := d.Feed(encoded)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, f, got[0])
	}
}

func TestEncodeReply(t *testing.T) {
	require.Equal(t, "+OK\r\n", string(EncodeReply(OK())))
	require.Equal(t, "$-1\r\n", string(EncodeReply(NilBulk())))
	require.Equal(t, "*-1\r\n", string(EncodeReply(NilArray())))
	require.Equal(t, ":7\r\n", string(EncodeReply(Int(7))))
	require.Equal(t, "$5\r\nhello\r\n", string(EncodeReply(Bulk("hello"))))
	require.Equal(t, "-ERR bad\r\n", string(EncodeReply(Err("ERR bad"))))
	require.Equal(t, "*2\r\n$1\r\na\r\n$1\r\nb\r\n", string(EncodeReply(Array([]string{"a", "b"}))))
}
