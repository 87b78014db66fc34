package search

import (
    "github.com/Sanjay16C/rapid/models"
)

// SubRoute is the portion of one train's journey between two of its
// stops: cumulative segment distance, the inclusive station list, and
// the departure clocks at both ends.
type SubRoute struct {
    DistanceKm int
    Route      []string
    Start      string
    End        string
}

// ExtractSubRoute locates source and destination in the train's stop
// sequence and derives the sub-route between them. It returns nil when
// either station is missing or the destination does not come strictly
// after the source — the train simply does not serve that leg, which
// is a normal outcome, not an error.
func ExtractSubRoute(train models.Train, source, destination string) *SubRoute {
    srcIdx := train.StopIndex(source)
    dstIdx := train.StopIndex(destination)
    if srcIdx < 0 || dstIdx < 0 || srcIdx >= dstIdx {
        return nil
    }

    distance := 0
    route := make([]string, 0, dstIdx-srcIdx+1)
    for k := srcIdx; k <= dstIdx; k++ {
        if k > srcIdx {
            distance += train.Stops[k].DistanceKm
        }
        route = append(route, train.Stops[k].Station)
    }

    return &SubRoute{
        DistanceKm: distance,
        Route:      route,
        Start:      train.Stops[srcIdx].Departure,
        End:        train.Stops[dstIdx].Departure,
    }
}
