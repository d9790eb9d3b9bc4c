// Package live implements the answer log kept for one live connection.
//
// A session is OPEN from the moment the connection is accepted. Every text
// frame is appended to the session's private log and the whole log is sent
// back as {"correct": [...]}. The session becomes CLOSED when the transport
// is closed by either side or fails; the log is dropped with it.
package live

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dmitrijs2005/wordsearch/internal/logging"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// ErrUnsupportedFrame ends a session that receives anything but text.
var ErrUnsupportedFrame = errors.New("unsupported frame type")

// Conn is the part of *websocket.Conn a session needs.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteJSON(v interface{}) error
}

type State int

const (
	StateOpen State = iota
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateOpen:
		return "OPEN"
	case StateClosed:
		return "CLOSED"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Reply is sent after every submission.
type Reply struct {
	Correct []string `json:"correct"`
}

// Session is owned by the goroutine that calls Run; it is not safe for
// concurrent use.
type Session struct {
	ID     string
	conn   Conn
	logger logging.Logger
	state  State
	log    []string
}

func NewSession(conn Conn, logger logging.Logger) *Session {
	id := uuid.NewString()
	return &Session{
		ID:     id,
		conn:   conn,
		logger: logger.With("session_id", id),
		state:  StateOpen,
	}
}

func (s *Session) State() State { return s.state }

// Log returns a copy of the submissions received so far.
func (s *Session) Log() []string { return slices.Clone(s.log) }

// Submit records one answer and returns the reply for it.
func (s *Session) Submit(data string) Reply {
	s.log = append(s.log, data)
	return Reply{Correct: slices.Clone(s.log)}
}

// Run reads and answers messages one at a time until the transport goes
// away. A normal close by the peer returns nil; any other transport error
// is returned as is. Either way the session ends CLOSED.
func (s *Session) Run(ctx context.Context) error {
	defer s.close()

	s.logger.Info(ctx, "live session opened")

	for {
		mt, p, err := s.conn.ReadMessage()
		if err != nil {
			if isClosure(err) {
				s.logger.Info(ctx, "live session closed by peer", "submissions", len(s.log))
				return nil
			}
			return fmt.Errorf("read: %w", err)
		}

		if mt != websocket.TextMessage {
			return ErrUnsupportedFrame
		}

		data := string(p)
		s.logger.Debug(ctx, "answer submitted", "length", len(data))

		if err := s.conn.WriteJSON(s.Submit(data)); err != nil {
			return fmt.Errorf("write: %w", err)
		}
	}
}

func (s *Session) close() {
	s.state = StateClosed
	s.log = nil
}

func isClosure(err error) bool {
	return errors.Is(err, io.EOF) ||
		websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived)
}
