package config

import (
    "bufio"
    "context"
    "fmt"
    "log"
    "os"
    "strings"
    "time"

    "go.mongodb.org/mongo-driver/bson"
    "go.mongodb.org/mongo-driver/mongo"
    "go.mongodb.org/mongo-driver/mongo/options"
    "go.mongodb.org/mongo-driver/mongo/readpref"
)

var (
    MongoDB     *mongo.Database
    MongoClient *mongo.Client
)

const retryDelay = 5 * time.Second

// LoadEnv loads environment variables from a .env file if one exists
// nearby. Already-set variables win over file values being absent.
func LoadEnv() error {
    possiblePaths := []string{
        ".env",
        "../.env",
        os.Getenv("RAPID_ENV"),
    }

    var loadedFile string
    for _, path := range possiblePaths {
        if path == "" {
            continue
        }
        if _, err := os.Stat(path); err == nil {
            loadedFile = path
            break
        }
    }

    if loadedFile == "" {
        // No .env is fine when MONGO_URI is already in the environment
        // or the localhost default applies.
        return nil
    }

    file, err := os.Open(loadedFile)
    if err != nil {
        return fmt.Errorf("error opening .env file: %v", err)
    }
    defer file.Close()

    log.Printf("Loading environment variables from %s", loadedFile)
    scanner := bufio.NewScanner(file)
    for scanner.Scan() {
        line := scanner.Text()
        if strings.TrimSpace(line) == "" || strings.HasPrefix(line, "#") {
            continue
        }
        parts := strings.SplitN(line, "=", 2)
        if len(parts) != 2 {
            continue
        }
        key := strings.TrimSpace(parts[0])
        value := strings.Trim(strings.TrimSpace(parts[1]), `"'`)
        os.Setenv(key, value)
    }
    return scanner.Err()
}

// ConnectWithRetry attempts to connect to MongoDB with retries.
func ConnectWithRetry(maxRetries int) error {
    var err error
    for i := 0; i < maxRetries; i++ {
        err = connectMongo(getMongoURI())
        if err == nil {
            return nil
        }
        log.Printf("Failed to connect to MongoDB (attempt %d/%d): %v", i+1, maxRetries, err)
        time.Sleep(retryDelay)
    }
    return fmt.Errorf("failed to connect after %d attempts: %v", maxRetries, err)
}

func connectMongo(uri string) error {
    clientOptions := options.Client().ApplyURI(uri).
        SetMaxPoolSize(100).
        SetMinPoolSize(10).
        SetConnectTimeout(10 * time.Second).
        SetServerSelectionTimeout(10 * time.Second).
        SetRetryReads(true).
        SetReadPreference(readpref.Primary())

    ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
    defer cancel()

    var err error
    MongoClient, err = mongo.Connect(ctx, clientOptions)
    if err != nil {
        return fmt.Errorf("error connecting to MongoDB: %v", err)
    }

    if err = MongoClient.Ping(ctx, nil); err != nil {
        return fmt.Errorf("error pinging MongoDB: %v", err)
    }

    MongoDB = MongoClient.Database(getMongoDBName())
    log.Printf("Successfully connected to MongoDB database: %s", MongoDB.Name())

    if err := createIndexes(ctx); err != nil {
        return fmt.Errorf("error creating indexes: %v", err)
    }
    return nil
}

func createIndexes(ctx context.Context) error {
    trainCollection := MongoDB.Collection("trains")
    trainIndexes := []mongo.IndexModel{
        {
            Keys:    bson.D{{Key: "train_name", Value: 1}},
            Options: options.Index().SetUnique(true).SetName("train_name_idx"),
        },
        {
            Keys:    bson.D{{Key: "stops.station", Value: 1}},
            Options: options.Index().SetName("station_stops_idx"),
        },
    }
    if _, err := trainCollection.Indexes().CreateMany(ctx, trainIndexes); err != nil {
        return fmt.Errorf("error creating train indexes: %v", err)
    }

    stationCollection := MongoDB.Collection("stations")
    stationIndex := mongo.IndexModel{
        Keys:    bson.D{{Key: "name", Value: 1}},
        Options: options.Index().SetUnique(true).SetName("station_name_idx"),
    }
    if _, err := stationCollection.Indexes().CreateOne(ctx, stationIndex); err != nil {
        return fmt.Errorf("error creating station index: %v", err)
    }

    return nil
}

// CheckMongoHealth pings the server within a short deadline.
func CheckMongoHealth() error {
    ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
    defer cancel()

    if err := MongoClient.Ping(ctx, nil); err != nil {
        return fmt.Errorf("MongoDB health check failed: %v", err)
    }
    return nil
}

// CloseDB disconnects the Mongo client on shutdown.
func CloseDB() {
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if MongoClient != nil {
        if err := MongoClient.Disconnect(ctx); err != nil {
            log.Printf("Error closing MongoDB connection: %v", err)
        }
    }
}
