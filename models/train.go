package models

import (
    "go.mongodb.org/mongo-driver/bson/primitive"
)

// Train is one timetabled service: an ordered stop sequence in the
// direction of travel. A station appears at most once per train.
type Train struct {
    ID    primitive.ObjectID `bson:"_id,omitempty" json:"-"`
    Name  string             `bson:"train_name" json:"train_name"`
    Stops []Stop             `bson:"stops" json:"stops"`
}

// Stop holds the segment distance from the previous stop (0 for the
// origin) and a wall-clock departure time with no date component.
type Stop struct {
    Station    string `bson:"station" json:"station"`
    DistanceKm int    `bson:"distance" json:"distance"`
    Departure  string `bson:"departure" json:"departure"`
}

// StopIndex returns the index of the first stop at the given station,
// or -1 when the train does not call there.
func (t Train) StopIndex(station string) int {
    for i, stop := range t.Stops {
        if stop.Station == station {
            return i
        }
    }
    return -1
}

// ServesAll reports whether every named station appears somewhere in
// the stop sequence, in any order.
func (t Train) ServesAll(stations []string) bool {
    for _, station := range stations {
        if t.StopIndex(station) < 0 {
            return false
        }
    }
    return true
}
