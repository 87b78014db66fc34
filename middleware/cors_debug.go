package middleware

import (
    "log"
    "net/http"
)

// CORSDebugMiddleware logs preflight traffic so origin misconfiguration
// shows up in the server log rather than only in browser consoles.
func CORSDebugMiddleware(next http.Handler) http.Handler {
    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
        if r.Method == http.MethodOptions {
            log.Printf("[CORS] Preflight %s from origin %q, requesting %s",
                r.URL.Path,
                r.Header.Get("Origin"),
                r.Header.Get("Access-Control-Request-Method"),
            )
        }
        next.ServeHTTP(w, r)
    })
}
