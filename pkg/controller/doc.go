// Package controller contains the HTTP middlewares and helper handlers used
// by the relay's API server: CORS, per-request access logging with request
// IDs, panic recovery, and a pprof mux for the debug mount.
package controller
