package search

import (
    "context"
    "errors"
    "reflect"
    "testing"

    "github.com/Sanjay16C/rapid/models"
    "github.com/Sanjay16C/rapid/store"
)

func train(name string, stops ...models.Stop) models.Train {
    return models.Train{Name: name, Stops: stops}
}

func stop(station string, distanceKm int, departure string) models.Stop {
    return models.Stop{Station: station, DistanceKm: distanceKm, Departure: departure}
}

func TestSearchDirect(t *testing.T) {
    engine := NewEngine(store.NewMemoryStore(
        train("Crimson Mail",
            stop("Delhi", 0, "06:00"),
            stop("Agra", 200, "09:00"),
            stop("Lucknow", 300, "13:00"),
        ),
        train("Silver Link",
            stop("Lucknow", 0, "07:00"),
            stop("Agra", 250, "11:00"),
            stop("Delhi", 180, "14:00"),
        ),
    ))

    results, err := engine.SearchDirect(context.Background(), "Delhi", "Lucknow")
    if err != nil {
        t.Fatal(err)
    }
    // Silver Link serves both stations but in the opposite direction;
    // only Crimson Mail qualifies.
    if len(results) != 1 {
        t.Fatalf("got %d direct itineraries, want 1", len(results))
    }

    got := results[0]
    if got.TrainName != "Crimson Mail" || got.Type != "direct" {
        t.Errorf("unexpected result %+v", got)
    }
    if got.DistanceKm != 500 {
        t.Errorf("distance = %d, want 500", got.DistanceKm)
    }
    if got.DurationHours != 10 || got.DurationMinutes != 0 {
        t.Errorf("duration = %dh%dm, want 10h0m", got.DurationHours, got.DurationMinutes)
    }
    if got.Price != 625 {
        t.Errorf("price = %v, want 625", got.Price)
    }
    if want := []string{"Delhi", "Agra", "Lucknow"}; !reflect.DeepEqual(got.Route, want) {
        t.Errorf("route = %v, want %v", got.Route, want)
    }
}

func TestSearchPrefersDirectOverConnecting(t *testing.T) {
    // Both a direct train and a viable connection exist; the direct
    // result must be the only thing returned.
    engine := NewEngine(store.NewMemoryStore(
        train("Royal Express",
            stop("Delhi", 0, "06:00"),
            stop("Bhopal", 700, "14:00"),
            stop("Chennai", 900, "23:00"),
        ),
        train("Amber Link",
            stop("Delhi", 0, "05:30"),
            stop("Nagpur", 800, "15:00"),
        ),
        train("Pearl Mail",
            stop("Nagpur", 0, "17:00"),
            stop("Chennai", 850, "02:00"),
        ),
    ))

    results, err := engine.Search(context.Background(), "Delhi", "Chennai")
    if err != nil {
        t.Fatal(err)
    }
    if len(results) != 1 {
        t.Fatalf("got %d itineraries, want 1", len(results))
    }
    if results[0].Kind() != "direct" {
        t.Errorf("kind = %s, want direct", results[0].Kind())
    }
}

func TestSearchConnectingEnumeratesEveryHub(t *testing.T) {
    // First leg calls at two possible hubs; a different second-leg
    // train continues from each, so both must be found.
    engine := NewEngine(store.NewMemoryStore(
        train("Indigo Express",
            stop("Delhi", 0, "06:00"),
            stop("Bhopal", 600, "13:00"),
            stop("Nagpur", 300, "17:00"),
        ),
        train("Coral Superfast",
            stop("Bhopal", 0, "15:00"),
            stop("Hyderabad", 650, "23:00"),
        ),
        train("Ruby Intercity",
            stop("Nagpur", 0, "18:30"),
            stop("Hyderabad", 500, "23:30"),
        ),
    ))

    results, err := engine.SearchConnecting(context.Background(), "Delhi", "Hyderabad")
    if err != nil {
        t.Fatal(err)
    }
    if len(results) != 2 {
        t.Fatalf("got %d connecting itineraries, want 2", len(results))
    }

    hubs := map[string]models.ConnectingItinerary{}
    for _, result := range results {
        hubs[result.Hub] = result
    }
    if _, ok := hubs["Bhopal"]; !ok {
        t.Error("missing connection via Bhopal")
    }
    if _, ok := hubs["Nagpur"]; !ok {
        t.Error("missing connection via Nagpur")
    }

    viaNagpur := hubs["Nagpur"]
    if viaNagpur.FirstTrain != "Indigo Express" || viaNagpur.SecondTrain != "Ruby Intercity" {
        t.Errorf("unexpected trains %s / %s", viaNagpur.FirstTrain, viaNagpur.SecondTrain)
    }
    // Leg 1 covers Delhi -> Nagpur (900), leg 2 Nagpur -> Hyderabad (500).
    if viaNagpur.DistanceKm != 1400 {
        t.Errorf("distance via Nagpur = %d, want 1400", viaNagpur.DistanceKm)
    }
    if viaNagpur.Start != "06:00" || viaNagpur.HubArrival != "17:00" ||
        viaNagpur.HubDeparture != "18:30" || viaNagpur.End != "23:30" {
        t.Errorf("unexpected timestamps %+v", viaNagpur)
    }
    wantRoute := [][]string{{"Delhi", "Bhopal", "Nagpur"}, {"Nagpur", "Hyderabad"}}
    if !reflect.DeepEqual(viaNagpur.Route, wantRoute) {
        t.Errorf("route = %v, want %v", viaNagpur.Route, wantRoute)
    }
}

func TestSearchConnectingRequiresOrderOnSecondLeg(t *testing.T) {
    // The second train passes the hub only after the destination, so
    // no connection exists.
    engine := NewEngine(store.NewMemoryStore(
        train("Emerald Mail",
            stop("Delhi", 0, "06:00"),
            stop("Bhopal", 600, "13:00"),
        ),
        train("Titan Express",
            stop("Hyderabad", 0, "08:00"),
            stop("Bhopal", 650, "16:00"),
        ),
    ))

    results, err := engine.SearchConnecting(context.Background(), "Delhi", "Hyderabad")
    if err != nil {
        t.Fatal(err)
    }
    if len(results) != 0 {
        t.Fatalf("got %d itineraries, want none", len(results))
    }
}

func TestSearchEmptyWhenDisconnected(t *testing.T) {
    engine := NewEngine(store.NewMemoryStore(
        train("Western Express",
            stop("Mumbai", 0, "07:00"),
            stop("Surat", 260, "10:00"),
        ),
        train("Eastern Mail",
            stop("Kolkata", 0, "09:00"),
            stop("Patna", 500, "16:00"),
        ),
    ))

    results, err := engine.Search(context.Background(), "Mumbai", "Patna")
    if err != nil {
        t.Fatal(err)
    }
    if len(results) != 0 {
        t.Fatalf("got %d itineraries for disconnected pair, want none", len(results))
    }
}

func TestSourcesAndDestinations(t *testing.T) {
    engine := NewEngine(store.NewMemoryStore(
        train("Scarlet Express",
            stop("Delhi", 0, "06:00"),
            stop("Agra", 200, "09:00"),
            stop("Lucknow", 300, "13:00"),
        ),
        train("Ivory Link",
            stop("Agra", 0, "08:00"),
            stop("Bhopal", 400, "14:00"),
        ),
    ))
    ctx := context.Background()

    sources, err := engine.Sources(ctx)
    if err != nil {
        t.Fatal(err)
    }
    if want := []string{"Agra", "Delhi"}; !reflect.DeepEqual(sources, want) {
        t.Errorf("sources = %v, want %v", sources, want)
    }

    // Agra is mid-route on one train and the origin of another; its
    // reachable set spans both.
    destinations, err := engine.Destinations(ctx, "Agra")
    if err != nil {
        t.Fatal(err)
    }
    if want := []string{"Bhopal", "Lucknow"}; !reflect.DeepEqual(destinations, want) {
        t.Errorf("destinations = %v, want %v", destinations, want)
    }

    // The last stop of every train reaches nothing.
    destinations, err = engine.Destinations(ctx, "Bhopal")
    if err != nil {
        t.Fatal(err)
    }
    if len(destinations) != 0 {
        t.Errorf("destinations from a terminus = %v, want none", destinations)
    }
}

// failingStore simulates a store outage.
type failingStore struct {
    store.TimetableStore
}

func (failingStore) FindTrainsContainingAll(ctx context.Context, stations []string) ([]models.Train, error) {
    return nil, errors.New("connection reset")
}

func TestSearchPropagatesStoreErrors(t *testing.T) {
    engine := NewEngine(failingStore{store.NewMemoryStore()})

    if _, err := engine.Search(context.Background(), "Delhi", "Mumbai"); err == nil {
        t.Fatal("expected store failure to surface")
    }
}
