package models

// Itinerary is one search result. Results are computed per request and
// never persisted; the two concrete kinds share the JSON envelope the
// frontend consumes under the "trains" key.
type Itinerary interface {
    Kind() string
}

// DirectItinerary is a single-train journey from source to destination.
type DirectItinerary struct {
    Type            string   `json:"type"`
    TrainName       string   `json:"trainName"`
    Start           string   `json:"start"`
    End             string   `json:"end"`
    DistanceKm      int      `json:"distance"`
    DurationHours   int      `json:"durationHours"`
    DurationMinutes int      `json:"durationMinutes"`
    Price           float64  `json:"price"`
    Route           []string `json:"route"`
}

func (DirectItinerary) Kind() string { return "direct" }

// ConnectingItinerary is a two-train journey with one change at a hub
// station. Route carries both legs' station lists in travel order.
type ConnectingItinerary struct {
    Type            string     `json:"type"`
    FirstTrain      string     `json:"firstTrain"`
    SecondTrain     string     `json:"secondTrain"`
    Hub             string     `json:"hub"`
    Start           string     `json:"start"`
    HubArrival      string     `json:"hub_arrival"`
    HubDeparture    string     `json:"hub_departure"`
    End             string     `json:"end"`
    DistanceKm      int        `json:"distance"`
    DurationHours   int        `json:"durationHours"`
    DurationMinutes int        `json:"durationMinutes"`
    Price           float64    `json:"price"`
    Route           [][]string `json:"route"`
}

func (ConnectingItinerary) Kind() string { return "connecting" }
