package client

import (
	"context"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Register(ctx context.Context, userID string, password []byte) error
	Login(ctx context.Context, userID string, password []byte) error
	Logout()
	CheckAnswer(ctx context.Context, category, answer string) (bool, error)
	Users(ctx context.Context) (map[string]string, error)
	OpenLive(ctx context.Context) (LiveChannel, error)
}

// LiveChannel is one open live connection. Every Submit returns all answers
// sent on this channel so far.
type LiveChannel interface {
	Submit(answer string) ([]string, error)
	Close() error
}
