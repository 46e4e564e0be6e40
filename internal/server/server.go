package server

import (
	"net"
	"sync"

	"github.com/akashmaji946/redikv/internal/command"
	"github.com/akashmaji946/redikv/internal/common"
)

// Server owns the listening socket and the accept loop; the external
// collaborator (cmd/redikv) constructs it around an already-wired
// command.Dispatcher and is responsible for signal handling and the
// final snapshot save, per the spec's split between the core and its
// external collaborators.
type Server struct {
	Addr       string
	State      *AppState
	Dispatcher *command.Dispatcher
	Logger     *common.Logger

	listener net.Listener
	wg       sync.WaitGroup
}

func New(addr string, d *command.Dispatcher, l *common.Logger) *Server {
	return &Server{
		Addr:       addr,
		State:      NewAppState(),
		Dispatcher: d,
		Logger:     l,
	}
}

// ListenAndServe binds the listening socket and accepts connections
// until the listener is closed (by Shutdown). Each accepted connection
// is handled in its own goroutine, grounded on the teacher's per-listener
// accept loop plus sync.WaitGroup in cmd/main.go.
func (s *Server) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	s.listener = ln
	s.Logger.Info("listening on %s", s.Addr)

	for {
		conn, err := ln.Accept()
		if err != nil {
			return nil
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			handleConnection(conn, s.State, s.Dispatcher, s.Logger)
		}()
	}
}

// Shutdown stops accepting new connections, closes every live
// connection, and waits for their handler goroutines to return.
func (s *Server) Shutdown() {
	if s.listener != nil {
		s.listener.Close()
	}
	s.State.CloseAllConnections()
	s.wg.Wait()
}
