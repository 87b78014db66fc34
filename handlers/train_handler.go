package handlers

import (
    "context"
    "log"
    "net/http"
    "time"

    "github.com/Sanjay16C/rapid/models"
)

// SearchTrains answers the itinerary search endpoint: direct results
// when any exist, single-transfer connections otherwise. An empty list
// means no itinerary, which is a normal response, not a fault.
func SearchTrains(w http.ResponseWriter, r *http.Request) {
    source := r.URL.Query().Get("source")
    destination := r.URL.Query().Get("destination")
    if source == "" || destination == "" {
        sendErrorResponse(w, "Query parameters 'source' and 'destination' are required", http.StatusBadRequest)
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
    defer cancel()

    started := time.Now()
    results, err := engine.Search(ctx, source, destination)
    if err != nil {
        log.Printf("Search %s -> %s failed: %v", source, destination, err)
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }
    if results == nil {
        results = []models.Itinerary{}
    }

    log.Printf("Search %s -> %s: %d itineraries in %v", source, destination, len(results), time.Since(started))
    sendJSON(w, map[string]interface{}{"trains": results})
}
