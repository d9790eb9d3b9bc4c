// Package client talks to the wordsearch server.
//
// # Overview
//
// The Client interface covers account registration and login, answer
// checking with the access token obtained at login, the account listing and
// the live answer channel. HTTPClient implements it over the HTTP API and a
// websocket for the live channel; Ping uses the gRPC health service.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. A 401 maps to ErrUnauthorized and
// a rejected registration to ErrAlreadyExists; other non-2xx responses come
// back as *APIError.
//
// HTTPClient keeps the access token in memory and is not safe for
// concurrent use.
package client
