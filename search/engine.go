package search

import (
    "context"
    "sort"

    "github.com/Sanjay16C/rapid/models"
    "github.com/Sanjay16C/rapid/store"
)

// Engine answers itinerary searches over a timetable store snapshot.
// Every call is a self-contained read: the engine holds no per-request
// state and is safe for concurrent use.
type Engine struct {
    Store store.TimetableStore
}

func NewEngine(s store.TimetableStore) *Engine {
    return &Engine{Store: s}
}

// Search returns direct itineraries when any exist, otherwise falls
// back to single-transfer connections. Direct results always win, even
// when a connection would be faster or cheaper.
func (e *Engine) Search(ctx context.Context, source, destination string) ([]models.Itinerary, error) {
    direct, err := e.SearchDirect(ctx, source, destination)
    if err != nil {
        return nil, err
    }
    if len(direct) > 0 {
        out := make([]models.Itinerary, len(direct))
        for i, it := range direct {
            out[i] = it
        }
        return out, nil
    }

    connecting, err := e.SearchConnecting(ctx, source, destination)
    if err != nil {
        return nil, err
    }
    out := make([]models.Itinerary, len(connecting))
    for i, it := range connecting {
        out[i] = it
    }
    return out, nil
}

// SearchDirect finds every train that serves source and destination in
// travel order. The store's containment filter is only a pre-filter;
// order is re-validated by the extractor.
func (e *Engine) SearchDirect(ctx context.Context, source, destination string) ([]models.DirectItinerary, error) {
    candidates, err := e.Store.FindTrainsContainingAll(ctx, []string{source, destination})
    if err != nil {
        return nil, err
    }

    var results []models.DirectItinerary
    for _, train := range candidates {
        sub := ExtractSubRoute(train, source, destination)
        if sub == nil {
            continue
        }
        hours, minutes, price := PriceAndDuration(sub.DistanceKm)
        results = append(results, models.DirectItinerary{
            Type:            "direct",
            TrainName:       train.Name,
            Start:           sub.Start,
            End:             sub.End,
            DistanceKm:      sub.DistanceKm,
            DurationHours:   hours,
            DurationMinutes: minutes,
            Price:           price,
            Route:           sub.Route,
        })
    }
    return results, nil
}

// SearchConnecting enumerates single-transfer itineraries: for every
// train leaving the source, each later stop is a candidate hub, and
// every train carrying on from that hub to the destination completes a
// journey. Leg-2 lookups are memoized per hub within the request since
// outer trains often share hubs.
func (e *Engine) SearchConnecting(ctx context.Context, source, destination string) ([]models.ConnectingItinerary, error) {
    firstLegs, err := e.Store.FindTrainsContaining(ctx, source)
    if err != nil {
        return nil, err
    }

    legTwoByHub := make(map[string][]models.Train)
    var results []models.ConnectingItinerary

    for _, first := range firstLegs {
        srcIdx := first.StopIndex(source)
        if srcIdx < 0 {
            continue
        }

        distToHub := 0
        for hubIdx := srcIdx + 1; hubIdx < len(first.Stops); hubIdx++ {
            distToHub += first.Stops[hubIdx].DistanceKm
            hub := first.Stops[hubIdx].Station

            secondLegs, cached := legTwoByHub[hub]
            if !cached {
                secondLegs, err = e.Store.FindTrainsContainingAll(ctx, []string{hub, destination})
                if err != nil {
                    return nil, err
                }
                legTwoByHub[hub] = secondLegs
            }

            for _, second := range secondLegs {
                // A same-train pair with source before destination
                // would already have matched as a direct itinerary.
                if second.Name == first.Name {
                    continue
                }
                sub := ExtractSubRoute(second, hub, destination)
                if sub == nil {
                    continue
                }

                total := distToHub + sub.DistanceKm
                hours, minutes, price := PriceAndDuration(total)
                results = append(results, models.ConnectingItinerary{
                    Type:            "connecting",
                    FirstTrain:      first.Name,
                    SecondTrain:     second.Name,
                    Hub:             hub,
                    Start:           first.Stops[srcIdx].Departure,
                    HubArrival:      first.Stops[hubIdx].Departure,
                    HubDeparture:    sub.Start,
                    End:             sub.End,
                    DistanceKm:      total,
                    DurationHours:   hours,
                    DurationMinutes: minutes,
                    Price:           price,
                    Route:           [][]string{stationNames(first, srcIdx, hubIdx), sub.Route},
                })
            }
        }
    }
    return results, nil
}

// Stations returns every known station name, sorted.
func (e *Engine) Stations(ctx context.Context) ([]string, error) {
    return e.Store.ListStations(ctx)
}

// Sources returns the distinct origin stations across all trains.
func (e *Engine) Sources(ctx context.Context) ([]string, error) {
    trains, err := e.Store.AllTrains(ctx)
    if err != nil {
        return nil, err
    }

    seen := make(map[string]bool)
    for _, train := range trains {
        if len(train.Stops) > 0 {
            seen[train.Stops[0].Station] = true
        }
    }
    return sortedKeys(seen), nil
}

// Destinations returns every station reachable after the source on any
// train serving it.
func (e *Engine) Destinations(ctx context.Context, source string) ([]string, error) {
    trains, err := e.Store.FindTrainsContaining(ctx, source)
    if err != nil {
        return nil, err
    }

    seen := make(map[string]bool)
    for _, train := range trains {
        srcIdx := train.StopIndex(source)
        if srcIdx < 0 {
            continue
        }
        for _, stop := range train.Stops[srcIdx+1:] {
            seen[stop.Station] = true
        }
    }
    return sortedKeys(seen), nil
}

func stationNames(train models.Train, from, to int) []string {
    names := make([]string, 0, to-from+1)
    for _, stop := range train.Stops[from : to+1] {
        names = append(names, stop.Station)
    }
    return names
}

func sortedKeys(set map[string]bool) []string {
    keys := make([]string, 0, len(set))
    for key := range set {
        keys = append(keys, key)
    }
    sort.Strings(keys)
    return keys
}
