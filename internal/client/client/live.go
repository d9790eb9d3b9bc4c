package client

import (
	"context"
	"fmt"

	"github.com/gorilla/websocket"
)

type liveReply struct {
	Correct []string `json:"correct"`
}

type wsLiveChannel struct {
	conn *websocket.Conn
}

// OpenLive dials the live channel. The scheme follows the base URL:
// http becomes ws and https becomes wss.
func (c *HTTPClient) OpenLive(ctx context.Context) (LiveChannel, error) {
	u := *c.baseURL.JoinPath("/ws")
	if u.Scheme == "https" {
		u.Scheme = "wss"
	} else {
		u.Scheme = "ws"
	}

	conn, _, err := c.dialer.DialContext(ctx, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return &wsLiveChannel{conn: conn}, nil
}

func (l *wsLiveChannel) Submit(answer string) ([]string, error) {
	if err := l.conn.WriteMessage(websocket.TextMessage, []byte(answer)); err != nil {
		return nil, err
	}
	var r liveReply
	if err := l.conn.ReadJSON(&r); err != nil {
		return nil, err
	}
	return r.Correct, nil
}

// Close sends a normal closure before dropping the connection.
func (l *wsLiveChannel) Close() error {
	msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	_ = l.conn.WriteMessage(websocket.CloseMessage, msg)
	return l.conn.Close()
}
