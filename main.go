package main

import (
    "context"
    "encoding/json"
    "flag"
    "fmt"
    "log"
    "net/http"
    "os"
    "os/signal"
    "syscall"
    "time"

    gorillahandlers "github.com/gorilla/handlers"
    "github.com/gorilla/mux"
    "github.com/rs/cors"
    "go.mongodb.org/mongo-driver/bson"

    "github.com/Sanjay16C/rapid/config"
    "github.com/Sanjay16C/rapid/generator"
    "github.com/Sanjay16C/rapid/handlers"
    "github.com/Sanjay16C/rapid/middleware"
    "github.com/Sanjay16C/rapid/search"
    "github.com/Sanjay16C/rapid/store"
)

type HealthResponse struct {
    Status    string `json:"status"`
    DBStatus  string `json:"db_status"`
    DBDetails struct {
        Database string `json:"database"`
        Trains   int64  `json:"trains"`
        Stations int64  `json:"stations"`
    } `json:"db_details"`
    Error string `json:"error,omitempty"`
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
    response := HealthResponse{Status: "ok"}

    if config.MongoDB == nil {
        response.Status = "error"
        response.DBStatus = "not_initialized"
        response.Error = "Database connection not initialized"
    } else if err := config.CheckMongoHealth(); err != nil {
        response.Status = "error"
        response.DBStatus = "connection_error"
        response.Error = err.Error()
    } else {
        response.DBStatus = "connected"
        response.DBDetails.Database = config.MongoDB.Name()

        ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
        defer cancel()
        if n, err := config.MongoDB.Collection("trains").CountDocuments(ctx, bson.M{}); err == nil {
            response.DBDetails.Trains = n
        }
        if n, err := config.MongoDB.Collection("stations").CountDocuments(ctx, bson.M{}); err == nil {
            response.DBDetails.Stations = n
        }
    }

    w.Header().Set("Content-Type", "application/json")
    json.NewEncoder(w).Encode(response)
}

func main() {
    seedMode := flag.Bool("seed", false, "regenerate the synthetic timetable and exit")
    seedTrains := flag.Int("trains", generator.DefaultTrains, "number of trains to generate in -seed mode")
    randSeed := flag.Int64("rand-seed", generator.DefaultSeed, "random seed for -seed mode")
    flag.Parse()

    log.Printf("Starting at %s", time.Now().Format(time.RFC3339))

    if err := config.LoadEnv(); err != nil {
        log.Printf("Warning: Error loading .env file: %v", err)
    }

    log.Println("Connecting to MongoDB...")
    if err := config.ConnectWithRetry(5); err != nil {
        log.Fatalf("Failed to initialize MongoDB: %v", err)
    }
    defer config.CloseDB()

    timetable := store.NewMongoStore(config.MongoDB)

    if *seedMode {
        runGenerator(timetable, *seedTrains, *randSeed)
        return
    }

    config.InitCache()
    handlers.Setup(search.NewEngine(timetable))

    port := config.GetEnvWithDefault("PORT", "8080")

    r := mux.NewRouter()

    corsHandler := cors.New(cors.Options{
        AllowedOrigins: []string{
            "http://localhost:3000",
            "http://localhost:5173",
            "http://127.0.0.1:3000",
            "https://rapid-rail.vercel.app",
        },
        AllowedMethods: []string{"GET", "OPTIONS"},
        AllowedHeaders: []string{
            "Accept",
            "Content-Type",
            "X-Requested-With",
            "Origin",
        },
        MaxAge: 86400,
    })

    r.Use(middleware.CORSDebugMiddleware)
    r.Use(corsHandler.Handler)
    r.Use(middleware.RecoveryMiddleware)
    r.Use(middleware.LoggingMiddleware)
    r.Use(gorillahandlers.CompressHandler)

    api := r.PathPrefix("/api/v1").Subrouter()
    registerRoutes(api)
    api.HandleFunc("/health/detailed", healthCheck).Methods("GET")

    srv := &http.Server{
        Handler:           r,
        Addr:              ":" + port,
        WriteTimeout:      15 * time.Second,
        ReadTimeout:       15 * time.Second,
        IdleTimeout:       60 * time.Second,
        ReadHeaderTimeout: 5 * time.Second,
        MaxHeaderBytes:    1 << 20,
    }

    serverErrors := make(chan error, 1)
    go func() {
        log.Printf("Starting server on port %s...", port)
        if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
            serverErrors <- err
        }
    }()

    stop := make(chan os.Signal, 1)
    signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

    select {
    case <-stop:
        log.Println("Shutdown signal received")
    case err := <-serverErrors:
        log.Printf("Server error: %v", err)
    }

    log.Println("Shutting down server...")
    ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
    defer cancel()

    if err := srv.Shutdown(ctx); err != nil {
        log.Printf("Error during server shutdown: %v", err)
    } else {
        log.Println("Server shutdown completed")
    }
}

// runGenerator performs a one-shot reseed of the timetable store. It
// fully replaces existing data before any search traffic is served.
func runGenerator(timetable store.TimetableStore, trains int, seed int64) {
    ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
    defer cancel()

    run, err := generator.Run(ctx, timetable, generator.Config{Trains: trains, Seed: seed})
    if err != nil {
        log.Fatalf("Generation failed: %v", err)
    }

    config.ClearAllCaches()
    fmt.Printf("Inserted %d trains and %d stations (run %s)\n", run.Trains, run.Stations, run.RunID)
}

func registerRoutes(api *mux.Router) {
    api.HandleFunc("/stations", handlers.GetStations).Methods("GET", "OPTIONS")
    api.HandleFunc("/sources", handlers.GetSources).Methods("GET", "OPTIONS")
    api.HandleFunc("/destinations", handlers.GetDestinations).Methods("GET", "OPTIONS")
    api.HandleFunc("/trains", handlers.SearchTrains).Methods("GET", "OPTIONS")

    api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
        w.WriteHeader(http.StatusOK)
        w.Write([]byte("OK"))
    }).Methods("GET")
}
