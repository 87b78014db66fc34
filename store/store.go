package store

import (
    "context"

    "github.com/Sanjay16C/rapid/models"
)

// TimetableStore is the query surface the search engine runs against.
// Containment queries are order-agnostic pre-filters; the engine
// re-validates stop order itself. Store failures are the only true
// errors here — an empty result slice is a normal outcome.
type TimetableStore interface {
    // ListStations returns the sorted distinct station names across
    // all persisted trains.
    ListStations(ctx context.Context) ([]string, error)

    // AllTrains returns every persisted train.
    AllTrains(ctx context.Context) ([]models.Train, error)

    // FindTrainsContaining returns trains calling at the station.
    FindTrainsContaining(ctx context.Context, station string) ([]models.Train, error)

    // FindTrainsContainingAll returns trains whose stop set is a
    // superset of the given stations, in any order.
    FindTrainsContainingAll(ctx context.Context, stations []string) ([]models.Train, error)

    // ReplaceAll swaps the full dataset in one shot: existing trains
    // and the derived station list are dropped and rebuilt.
    ReplaceAll(ctx context.Context, trains []models.Train) error
}

// RunRecorder is implemented by stores that keep an audit trail of
// generation runs.
type RunRecorder interface {
    RecordRun(ctx context.Context, run *models.GenerationRun) error
}
