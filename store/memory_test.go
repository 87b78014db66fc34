package store

import (
    "context"
    "reflect"
    "testing"

    "github.com/Sanjay16C/rapid/models"
)

func fixtureTrains() []models.Train {
    return []models.Train{
        {
            Name: "Sapphire Express",
            Stops: []models.Stop{
                {Station: "Delhi", DistanceKm: 0, Departure: "06:00"},
                {Station: "Agra", DistanceKm: 200, Departure: "09:00"},
                {Station: "Bhopal", DistanceKm: 500, Departure: "15:00"},
            },
        },
        {
            Name: "Northern Mail",
            Stops: []models.Stop{
                {Station: "Agra", DistanceKm: 0, Departure: "07:00"},
                {Station: "Lucknow", DistanceKm: 330, Departure: "12:00"},
            },
        },
    }
}

func TestMemoryStoreListStations(t *testing.T) {
    s := NewMemoryStore(fixtureTrains()...)

    stations, err := s.ListStations(context.Background())
    if err != nil {
        t.Fatal(err)
    }

    // Every station referenced by any stop must be discoverable,
    // alphabetically sorted.
    want := []string{"Agra", "Bhopal", "Delhi", "Lucknow"}
    if !reflect.DeepEqual(stations, want) {
        t.Errorf("stations = %v, want %v", stations, want)
    }
}

func TestMemoryStoreContainmentQueries(t *testing.T) {
    s := NewMemoryStore(fixtureTrains()...)
    ctx := context.Background()

    trains, err := s.FindTrainsContaining(ctx, "Agra")
    if err != nil {
        t.Fatal(err)
    }
    if len(trains) != 2 {
        t.Errorf("trains containing Agra = %d, want 2", len(trains))
    }

    trains, err = s.FindTrainsContainingAll(ctx, []string{"Agra", "Bhopal"})
    if err != nil {
        t.Fatal(err)
    }
    if len(trains) != 1 || trains[0].Name != "Sapphire Express" {
        t.Errorf("trains containing Agra+Bhopal = %v, want only Sapphire Express", trains)
    }

    // The filter is order-agnostic; order is the search engine's job.
    trains, err = s.FindTrainsContainingAll(ctx, []string{"Bhopal", "Agra"})
    if err != nil {
        t.Fatal(err)
    }
    if len(trains) != 1 {
        t.Errorf("reversed filter matched %d trains, want 1", len(trains))
    }

    trains, err = s.FindTrainsContaining(ctx, "Chennai")
    if err != nil {
        t.Fatal(err)
    }
    if len(trains) != 0 {
        t.Errorf("unknown station matched %d trains, want 0", len(trains))
    }
}

func TestMemoryStoreReplaceAll(t *testing.T) {
    s := NewMemoryStore(fixtureTrains()...)
    ctx := context.Background()

    replacement := []models.Train{
        {
            Name: "Southern Link",
            Stops: []models.Stop{
                {Station: "Chennai", DistanceKm: 0, Departure: "05:00"},
                {Station: "Madurai", DistanceKm: 450, Departure: "11:30"},
            },
        },
    }
    if err := s.ReplaceAll(ctx, replacement); err != nil {
        t.Fatal(err)
    }

    stations, err := s.ListStations(ctx)
    if err != nil {
        t.Fatal(err)
    }
    if want := []string{"Chennai", "Madurai"}; !reflect.DeepEqual(stations, want) {
        t.Errorf("stations after replace = %v, want %v", stations, want)
    }

    trains, err := s.FindTrainsContaining(ctx, "Delhi")
    if err != nil {
        t.Fatal(err)
    }
    if len(trains) != 0 {
        t.Errorf("old snapshot still visible: %v", trains)
    }
}

func TestMemoryStoreRecordRun(t *testing.T) {
    s := NewMemoryStore()
    run := &models.GenerationRun{RunID: "run-1", Seed: 42, Trains: 10, Stations: 5}

    if err := s.RecordRun(context.Background(), run); err != nil {
        t.Fatal(err)
    }
    runs := s.Runs()
    if len(runs) != 1 || runs[0].RunID != "run-1" {
        t.Errorf("runs = %v, want the recorded run", runs)
    }
}
