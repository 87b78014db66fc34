package handlers

import (
    "context"
    "net/http"

    "github.com/Sanjay16C/rapid/config"
)

// GetStations returns every known station name for the dropdowns.
func GetStations(w http.ResponseWriter, r *http.Request) {
    cacheKey := config.GetCacheKey("stations")
    if cached, found := config.StationCache.Get(cacheKey); found {
        sendJSON(w, map[string]interface{}{"stations": cached})
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
    defer cancel()

    stations, err := engine.Stations(ctx)
    if err != nil {
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }
    if stations == nil {
        stations = []string{}
    }

    config.StationCache.SetDefault(cacheKey, stations)
    sendJSON(w, map[string]interface{}{"stations": stations})
}

// GetSources returns the distinct origin stations across all trains.
func GetSources(w http.ResponseWriter, r *http.Request) {
    cacheKey := config.GetCacheKey("sources")
    if cached, found := config.StationCache.Get(cacheKey); found {
        sendJSON(w, map[string]interface{}{"sources": cached})
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
    defer cancel()

    sources, err := engine.Sources(ctx)
    if err != nil {
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }
    if sources == nil {
        sources = []string{}
    }

    config.StationCache.SetDefault(cacheKey, sources)
    sendJSON(w, map[string]interface{}{"sources": sources})
}

// GetDestinations returns the stations reachable after the given
// source on any train serving it.
func GetDestinations(w http.ResponseWriter, r *http.Request) {
    source := r.URL.Query().Get("source")
    if source == "" {
        sendErrorResponse(w, "Query parameter 'source' is required", http.StatusBadRequest)
        return
    }

    cacheKey := config.GetCacheKey("destinations", source)
    if cached, found := config.RouteCache.Get(cacheKey); found {
        sendJSON(w, map[string]interface{}{"destinations": cached})
        return
    }

    ctx, cancel := context.WithTimeout(r.Context(), requestTimeout)
    defer cancel()

    destinations, err := engine.Destinations(ctx, source)
    if err != nil {
        sendErrorResponse(w, "Database error", http.StatusInternalServerError)
        return
    }
    if destinations == nil {
        destinations = []string{}
    }

    config.RouteCache.SetDefault(cacheKey, destinations)
    sendJSON(w, map[string]interface{}{"destinations": destinations})
}
