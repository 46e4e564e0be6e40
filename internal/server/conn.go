package server

import (
	"net"

	"github.com/akashmaji946/redikv/internal/command"
	"github.com/akashmaji946/redikv/internal/common"
	"github.com/akashmaji946/redikv/internal/resp"
)

// readBufSize is the chunk size used for each conn.Read call; it has no
// bearing on correctness since the decoder is fully incremental, only on
// how many syscalls a large pipeline costs.
const readBufSize = 4096

// handleConnection owns one accepted connection for its entire lifetime,
// grounded on the teacher's handleOneConnection (cmd/main.go): accept,
// register in the connection table, loop reading and dispatching, and
// deregister on exit. Unlike the teacher's ReadArray (which blocks on a
// bufio.Reader for one whole frame per call), bytes are fed through the
// incremental resp.Decoder a read() at a time.
func handleConnection(conn net.Conn, state *AppState, dispatcher *command.Dispatcher, logger *common.Logger) {
	logger.Info("accepted connection from %s", conn.RemoteAddr())
	state.AddConn(conn)
	defer func() {
		state.RemoveConn(conn)
		conn.Close()
		logger.Info("closed connection from %s", conn.RemoteAddr())
	}()

	decoder := resp.NewDecoder()
	buf := make([]byte, readBufSize)

	for {
		n, readErr := conn.Read(buf)
		if n > 0 {
			frames, decErr := decoder.Feed(buf[:n])
			if decErr != nil {
				// Server policy: a decode error resets the decoder but never
				// closes the connection (the asymmetry with the interactive
				// client, which does close on the same error).
				logger.Debug("decode error from %s: %v", conn.RemoteAddr(), decErr)
				decoder.Reset()
			}

			for _, f := range frames {
				reply := dispatchFrame(dispatcher, state, f)
				if _, werr := conn.Write(resp.EncodeReply(reply)); werr != nil {
					return
				}
			}
		}
		if readErr != nil {
			return
		}
	}
}

// dispatchFrame enforces the connection loop's framing contract: only a
// non-null array of non-null bulk strings is accepted as a command; any
// other top-level shape is answered with a syntax-error reply instead of
// being handed to the command layer.
func dispatchFrame(dispatcher *command.Dispatcher, state *AppState, f resp.Frame) resp.Reply {
	args, ok := f.BulkStringArray()
	if !ok || len(args) == 0 {
		return resp.Err("Syntax error: expected an array of bulk strings")
	}
	state.IncrCommandsProcessed()
	return dispatcher.Dispatch(args[0], args[1:])
}
