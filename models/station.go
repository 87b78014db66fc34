package models

// Station is a dropdown entry derived from the stop sequences at seed
// time. Every station referenced by any train has a document here.
type Station struct {
    Name string `bson:"name" json:"name"`
}
