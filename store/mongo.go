package store

import (
    "context"
    "fmt"
    "sort"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"

    "github.com/Sanjay16C/rapid/models"
)

const (
    trainsCollection   = "trains"
    stationsCollection = "stations"
    runsCollection     = "generation_runs"
)

// MongoStore backs the timetable with MongoDB. The trains collection
// carries a stops.station index and a unique train_name index, so the
// containment filters below resolve without collection scans.
type MongoStore struct {
    db *mongo.Database
}

func NewMongoStore(db *mongo.Database) *MongoStore {
    return &MongoStore{db: db}
}

func (s *MongoStore) ListStations(ctx context.Context) ([]string, error) {
    opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
    cursor, err := s.db.Collection(stationsCollection).Find(ctx, bson.M{}, opts)
    if err != nil {
        return nil, fmt.Errorf("error listing stations: %v", err)
    }
    defer cursor.Close(ctx)

    var docs []models.Station
    if err := cursor.All(ctx, &docs); err != nil {
        return nil, fmt.Errorf("error decoding stations: %v", err)
    }

    names := make([]string, len(docs))
    for i, doc := range docs {
        names[i] = doc.Name
    }
    return names, nil
}

func (s *MongoStore) AllTrains(ctx context.Context) ([]models.Train, error) {
    return s.findTrains(ctx, bson.M{})
}

func (s *MongoStore) FindTrainsContaining(ctx context.Context, station string) ([]models.Train, error) {
    return s.findTrains(ctx, bson.M{"stops.station": station})
}

func (s *MongoStore) FindTrainsContainingAll(ctx context.Context, stations []string) ([]models.Train, error) {
    return s.findTrains(ctx, bson.M{"stops.station": bson.M{"$all": stations}})
}

func (s *MongoStore) findTrains(ctx context.Context, filter bson.M) ([]models.Train, error) {
    cursor, err := s.db.Collection(trainsCollection).Find(ctx, filter)
    if err != nil {
        return nil, fmt.Errorf("error querying trains: %v", err)
    }
    defer cursor.Close(ctx)

    var trains []models.Train
    if err := cursor.All(ctx, &trains); err != nil {
        return nil, fmt.Errorf("error decoding trains: %v", err)
    }
    return trains, nil
}

// ReplaceAll wipes both collections and loads the new snapshot. The
// station list is derived from the stop sequences so every referenced
// station is discoverable afterwards.
func (s *MongoStore) ReplaceAll(ctx context.Context, trains []models.Train) error {
    trainsCol := s.db.Collection(trainsCollection)
    stationsCol := s.db.Collection(stationsCollection)

    if _, err := trainsCol.DeleteMany(ctx, bson.M{}); err != nil {
        return fmt.Errorf("error clearing trains: %v", err)
    }
    if _, err := stationsCol.DeleteMany(ctx, bson.M{}); err != nil {
        return fmt.Errorf("error clearing stations: %v", err)
    }

    if len(trains) == 0 {
        return nil
    }

    docs := make([]interface{}, len(trains))
    for i, train := range trains {
        docs[i] = train
    }
    if _, err := trainsCol.InsertMany(ctx, docs); err != nil {
        return fmt.Errorf("error inserting trains: %v", err)
    }

    stationDocs := make([]interface{}, 0)
    for _, name := range deriveStations(trains) {
        stationDocs = append(stationDocs, models.Station{Name: name})
    }
    if _, err := stationsCol.InsertMany(ctx, stationDocs); err != nil {
        return fmt.Errorf("error inserting stations: %v", err)
    }

    return nil
}

func (s *MongoStore) RecordRun(ctx context.Context, run *models.GenerationRun) error {
    if _, err := s.db.Collection(runsCollection).InsertOne(ctx, run); err != nil {
        return fmt.Errorf("error recording generation run: %v", err)
    }
    return nil
}

// deriveStations collects the unique station names across all stop
// sequences, alphabetically sorted.
func deriveStations(trains []models.Train) []string {
    seen := make(map[string]bool)
    for _, train := range trains {
        for _, stop := range train.Stops {
            seen[stop.Station] = true
        }
    }

    names := make([]string, 0, len(seen))
    for name := range seen {
        names = append(names, name)
    }
    sort.Strings(names)
    return names
}
