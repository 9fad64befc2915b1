package controller

import (
	"net/http"
	"net/http/pprof"
)

// PprofMux returns a ServeMux with net/http/pprof handlers registered at the
// root, meant to be mounted under a debug path.
func PprofMux() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", pprof.Index)
	mux.HandleFunc("/cmdline", pprof.Cmdline)
	mux.HandleFunc("/profile", pprof.Profile)
	mux.HandleFunc("/symbol", pprof.Symbol)
	mux.HandleFunc("/trace", pprof.Trace)

	// named profiles need explicit routes when the mux is mounted under a
	// stripped prefix
	for _, p := range []string{"allocs", "block", "goroutine", "heap", "mutex", "threadcreate"} {
		mux.Handle("/"+p, pprof.Handler(p))
	}

	return mux
}
