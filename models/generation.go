package models

import "time"

// GenerationRun records one reseed of the timetable store.
type GenerationRun struct {
    RunID     string    `bson:"run_id" json:"run_id"`
    Seed      int64     `bson:"seed" json:"seed"`
    Trains    int       `bson:"trains" json:"trains"`
    Stations  int       `bson:"stations" json:"stations"`
    CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
