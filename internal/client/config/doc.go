// Package config loads runtime configuration for the wordsearch CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the server HTTP API
//	-g string   host:port of the server gRPC health endpoint
//	-r int      request timeout (seconds)
//
// # JSON schema
//
//	{
//	  "server_url": "http://localhost:8000",
//	  "health_addr": "localhost:50051",
//	  "request_timeout": "10s"
//	}
package config
