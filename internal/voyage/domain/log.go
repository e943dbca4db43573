package domain

// Status is the user-declared lifecycle label of a voyage log. It is
// independent of the in-transit signal (departure set, arrival empty):
// completed conventionally implies an arrival time, draft means the log was
// saved without pressing submit.
type Status string

const (
	StatusDraft     Status = "draft"
	StatusCompleted Status = "completed"
)

// VoyageLog is one record of a single ferry trip, or its in-progress state.
// Captain/engineer/crew names are denormalized display snapshots resolved
// from the user collection at save time; the ids are the source of truth.
type VoyageLog struct {
	ID                string   `json:"id" gorm:"primaryKey"`
	ShipName          string   `json:"shipName" gorm:"not null"`
	CaptainID         string   `json:"captainId"`
	CaptainName       string   `json:"captainName"`
	EngineerID        string   `json:"engineerId"`
	EngineerName      string   `json:"engineerName"`
	CrewIDs           []string `json:"crewIds" gorm:"serializer:json"`
	CrewNames         []string `json:"crewNames" gorm:"serializer:json"`
	DepartureTime     string   `json:"departureTime"` // ISO local, e.g. 2024-05-01T09:00
	ArrivalTime       string   `json:"arrivalTime"`   // empty while in transit
	DepartureLocation string   `json:"departureLocation"`
	ArrivalLocation   string   `json:"arrivalLocation"`
	PassengerCount    int      `json:"passengerCount"`
	FuelLevel         int      `json:"fuelLevel"` // 0-100 percent
	Memo              string   `json:"memo"`
	Status            Status   `json:"status"`
	CreatedAt         string   `json:"createdAt"` // immutable after create
}

// InTransit reports whether the log describes a voyage that has departed but
// not yet arrived.
func (l VoyageLog) InTransit() bool {
	return l.DepartureTime != "" && l.ArrivalTime == ""
}

// RouteCode is the departure/arrival pair used to classify traffic direction.
func (l VoyageLog) RouteCode() string {
	return l.DepartureLocation + "->" + l.ArrivalLocation
}
