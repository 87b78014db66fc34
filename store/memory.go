package store

import (
    "context"
    "sync"

    "github.com/Sanjay16C/rapid/models"
)

// MemoryStore keeps the timetable in process memory behind an explicit
// station → train adjacency index built at load time, so containment
// queries never scan the full train list. Reads are concurrent; the
// snapshot only changes through ReplaceAll.
type MemoryStore struct {
    mu        sync.RWMutex
    trains    []models.Train
    stations  []string
    byStation map[string][]int
    runs      []models.GenerationRun
}

func NewMemoryStore(trains ...models.Train) *MemoryStore {
    s := &MemoryStore{}
    s.load(trains)
    return s
}

func (s *MemoryStore) load(trains []models.Train) {
    byStation := make(map[string][]int)
    for i, train := range trains {
        for _, stop := range train.Stops {
            byStation[stop.Station] = append(byStation[stop.Station], i)
        }
    }
    s.trains = trains
    s.stations = deriveStations(trains)
    s.byStation = byStation
}

func (s *MemoryStore) ListStations(ctx context.Context) ([]string, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]string, len(s.stations))
    copy(out, s.stations)
    return out, nil
}

func (s *MemoryStore) AllTrains(ctx context.Context) ([]models.Train, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]models.Train, len(s.trains))
    copy(out, s.trains)
    return out, nil
}

func (s *MemoryStore) FindTrainsContaining(ctx context.Context, station string) ([]models.Train, error) {
    s.mu.RLock()
    defer s.mu.RUnlock()

    matches := make([]models.Train, 0, len(s.byStation[station]))
    for _, idx := range s.byStation[station] {
        matches = append(matches, s.trains[idx])
    }
    return matches, nil
}

func (s *MemoryStore) FindTrainsContainingAll(ctx context.Context, stations []string) ([]models.Train, error) {
    if len(stations) == 0 {
        return s.AllTrains(ctx)
    }

    s.mu.RLock()
    defer s.mu.RUnlock()

    // Walk the index entries for the first station and verify the rest
    // per candidate.
    var matches []models.Train
    for _, idx := range s.byStation[stations[0]] {
        if s.trains[idx].ServesAll(stations[1:]) {
            matches = append(matches, s.trains[idx])
        }
    }
    return matches, nil
}

func (s *MemoryStore) ReplaceAll(ctx context.Context, trains []models.Train) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.load(trains)
    return nil
}

func (s *MemoryStore) RecordRun(ctx context.Context, run *models.GenerationRun) error {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.runs = append(s.runs, *run)
    return nil
}

// Runs returns the recorded generation runs, newest last.
func (s *MemoryStore) Runs() []models.GenerationRun {
    s.mu.RLock()
    defer s.mu.RUnlock()
    out := make([]models.GenerationRun, len(s.runs))
    copy(out, s.runs)
    return out
}
