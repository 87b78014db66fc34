package handlers

import (
    "encoding/json"
    "net/http"
    "time"

    "github.com/Sanjay16C/rapid/search"
)

const requestTimeout = 5 * time.Second

// engine is wired once at startup from main.
var engine *search.Engine

// Setup injects the search engine the handlers run against.
func Setup(e *search.Engine) {
    engine = e
}

func sendJSON(w http.ResponseWriter, payload interface{}) {
    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(payload)
}

func sendErrorResponse(w http.ResponseWriter, message string, code int) {
    w.Header().Set("Content-Type", "application/json")
    w.WriteHeader(code)
    json.NewEncoder(w).Encode(map[string]interface{}{
        "error": message,
        "code":  code,
    })
}
