// Package timeouts defines shared timeout constants used by the HTTP
// services and commands.
package timeouts

import "time"

// ReadHeader limits how long an HTTP server waits for request headers.
const ReadHeader = 5 * time.Second

// Write caps the time an HTTP server spends writing one response.
const Write = 10 * time.Second

// Idle limits how long an idle keep-alive connection stays open.
const Idle = 60 * time.Second

// Shutdown limits how long an HTTP server waits for in-flight requests
// during graceful shutdown.
const Shutdown = 5 * time.Second

// Import caps one catalog import run.
const Import = 30 * time.Second
