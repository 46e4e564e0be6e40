package server

import (
	"net"
	"sync"
	"sync/atomic"
	"time"
)

// AppState is the trimmed equivalent of the teacher's internal/common.
// AppState: the connection registry (AddConn/RemoveConn/
// CloseAllConnections) and basic counters survive, since they are
// exercised directly by the connection loop and graceful shutdown;
// everything tied to dropped features (AOF/RDB scheduling stats, pub/sub
// topics, users/ACL, MONITOR) is left behind.
type AppState struct {
	ServerStartTime time.Time

	numClients int32

	connsMu     sync.Mutex
	activeConns map[net.Conn]struct{}

	totalConnectionsReceived int64
	totalCommandsProcessed   int64
}

func NewAppState() *AppState {
	return &AppState{
		ServerStartTime: time.Now(),
		activeConns:     make(map[net.Conn]struct{}),
	}
}

// AddConn registers conn as active and bumps the connection counters.
func (s *AppState) AddConn(conn net.Conn) {
	s.connsMu.Lock()
	s.activeConns[conn] = struct{}{}
	s.connsMu.Unlock()
	atomic.AddInt32(&s.numClients, 1)
	atomic.AddInt64(&s.totalConnectionsReceived, 1)
}

// RemoveConn unregisters conn.
func (s *AppState) RemoveConn(conn net.Conn) {
	s.connsMu.Lock()
	delete(s.activeConns, conn)
	s.connsMu.Unlock()
	atomic.AddInt32(&s.numClients, -1)
}

// CloseAllConnections closes every currently registered connection; used
// during graceful shutdown after the listeners stop accepting.
func (s *AppState) CloseAllConnections() {
	s.connsMu.Lock()
	defer s.connsMu.Unlock()
	for conn := range s.activeConns {
		conn.Close()
	}
}

func (s *AppState) NumClients() int {
	return int(atomic.LoadInt32(&s.numClients))
}

func (s *AppState) IncrCommandsProcessed() {
	atomic.AddInt64(&s.totalCommandsProcessed, 1)
}

func (s *AppState) Stats() (totalConns, totalCommands int64, numClients int) {
	return atomic.LoadInt64(&s.totalConnectionsReceived),
		atomic.LoadInt64(&s.totalCommandsProcessed),
		s.NumClients()
}
