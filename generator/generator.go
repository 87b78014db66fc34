package generator

import (
    "context"
    "fmt"
    "log"
    "math/rand"
    "sort"
    "time"

    "github.com/google/uuid"

    "github.com/Sanjay16C/rapid/models"
    "github.com/Sanjay16C/rapid/store"
    "github.com/Sanjay16C/rapid/utils"
)

const (
    DefaultTrains = 1000
    DefaultSeed   = 42

    corridorProbability = 0.75
    minStops            = 4
    maxStops            = 8

    minSegmentKm      = 50
    maxSegmentKm      = 300
    minSegmentMinutes = 60
    maxSegmentMinutes = 240

    // First departures land between 05:00 and 18:00 on a 10-minute
    // mark, so most routes finish the same day.
    startHourMin = 5
    startHourMax = 18
)

var startMinuteChoices = []int{0, 10, 20, 30, 40, 50}

// Config controls one generation run.
type Config struct {
    Trains int
    Seed   int64
}

// Run builds a synthetic timetable and swaps it into the store as one
// batch. The random source is seeded here and threaded through every
// build step, so a given seed reproduces the same dataset; no global
// RNG state is touched.
func Run(ctx context.Context, st store.TimetableStore, cfg Config) (*models.GenerationRun, error) {
    if cfg.Trains <= 0 {
        cfg.Trains = DefaultTrains
    }

    rng := rand.New(rand.NewSource(cfg.Seed))
    trains := Build(rng, cfg.Trains)

    if err := st.ReplaceAll(ctx, trains); err != nil {
        return nil, fmt.Errorf("error loading generated trains: %v", err)
    }

    stations, err := st.ListStations(ctx)
    if err != nil {
        return nil, fmt.Errorf("error counting stations after reseed: %v", err)
    }

    run := &models.GenerationRun{
        RunID:     uuid.NewString(),
        Seed:      cfg.Seed,
        Trains:    len(trains),
        Stations:  len(stations),
        CreatedAt: time.Now().UTC(),
    }
    if recorder, ok := st.(store.RunRecorder); ok {
        if err := recorder.RecordRun(ctx, run); err != nil {
            log.Printf("Warning: failed to record generation run %s: %v", run.RunID, err)
        }
    }

    log.Printf("Generation run %s: %d trains, %d stations (seed %d)",
        run.RunID, run.Trains, run.Stations, run.Seed)
    return run, nil
}

// Build produces n trains from the given random source.
func Build(rng *rand.Rand, n int) []models.Train {
    usedNames := make(map[string]bool)
    trains := make([]models.Train, 0, n)

    for i := 0; i < n; i++ {
        var route []string
        if rng.Float64() < corridorProbability {
            route = corridorRoute(rng)
        } else {
            route = randomRoute(rng)
        }
        route = topUpRoute(rng, dedupeRoute(route))

        trains = append(trains, models.Train{
            Name:  nextTrainName(rng, usedNames),
            Stops: buildStops(rng, route),
        })
    }
    return trains
}

// corridorRoute slices a random window out of a random corridor.
func corridorRoute(rng *rand.Rand) []string {
    corridor := corridors[rng.Intn(len(corridors))]
    if len(corridor) < minStops {
        return append([]string(nil), corridor...)
    }

    length := minStops + rng.Intn(min(maxStops, len(corridor))-minStops+1)
    start := rng.Intn(len(corridor) - length + 1)
    return append([]string(nil), corridor[start:start+length]...)
}

// randomRoute samples stations off-corridor and orders them
// alphabetically so the direction of travel is still well defined.
func randomRoute(rng *rand.Rand) []string {
    length := minStops + rng.Intn(min(maxStops, len(stationRoster))-minStops+1)
    perm := rng.Perm(len(stationRoster))

    route := make([]string, length)
    for i := 0; i < length; i++ {
        route[i] = stationRoster[perm[i]]
    }
    sort.Strings(route)
    return route
}

// dedupeRoute drops repeated stations while preserving order; a train
// never visits the same station twice.
func dedupeRoute(route []string) []string {
    seen := make(map[string]bool, len(route))
    out := route[:0]
    for _, station := range route {
        if !seen[station] {
            seen[station] = true
            out = append(out, station)
        }
    }
    return out
}

// topUpRoute extends a too-short route with shuffled roster stations
// not already on it.
func topUpRoute(rng *rand.Rand, route []string) []string {
    if len(route) >= minStops {
        return route
    }

    onRoute := make(map[string]bool, len(route))
    for _, station := range route {
        onRoute[station] = true
    }

    var candidates []string
    for _, station := range stationRoster {
        if !onRoute[station] {
            candidates = append(candidates, station)
        }
    }
    rng.Shuffle(len(candidates), func(i, j int) {
        candidates[i], candidates[j] = candidates[j], candidates[i]
    })

    needed := minStops - len(route)
    return append(route, candidates[:needed]...)
}

// buildStops walks the route assigning segment distances and advancing
// a wall clock between departures. The clock may wrap past midnight on
// long routes; only the time of day is stored.
func buildStops(rng *rand.Rand, route []string) []models.Stop {
    hour := startHourMin + rng.Intn(startHourMax-startHourMin+1)
    minute := startMinuteChoices[rng.Intn(len(startMinuteChoices))]
    current := time.Date(2000, 1, 1, hour, minute, 0, 0, time.UTC)

    stops := make([]models.Stop, len(route))
    for i, station := range route {
        distance := 0
        if i > 0 {
            distance = minSegmentKm + rng.Intn(maxSegmentKm-minSegmentKm+1)
        }
        stops[i] = models.Stop{
            Station:    station,
            DistanceKm: distance,
            Departure:  utils.FormatClock(current),
        }
        current = current.Add(time.Duration(minSegmentMinutes+rng.Intn(maxSegmentMinutes-minSegmentMinutes+1)) * time.Minute)
    }
    return stops
}

// nextTrainName draws adjective+noun pairs until an unused name turns
// up, falling back to a numeric suffix after a few collisions.
func nextTrainName(rng *rand.Rand, used map[string]bool) string {
    for attempt := 0; ; attempt++ {
        name := nameAdjectives[rng.Intn(len(nameAdjectives))] + " " + nameNouns[rng.Intn(len(nameNouns))]
        if !used[name] {
            used[name] = true
            return name
        }
        if attempt >= 5 {
            numbered := fmt.Sprintf("%s %d", name, 2+rng.Intn(998))
            if !used[numbered] {
                used[numbered] = true
                return numbered
            }
        }
    }
}

func min(a, b int) int {
    if a < b {
        return a
    }
    return b
}
