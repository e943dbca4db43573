package dto

import voyagedomain "ferrylog-backend/internal/voyage/domain"

// LogForm is the save payload for a voyage log. Every field is recomputed
// from current form state on save (replace, not merge). ID is empty for a
// create and carries the existing id for an update.
type LogForm struct {
	ID                string              `json:"id"`
	ShipName          string              `json:"shipName"`
	CaptainID         string              `json:"captainId"`
	EngineerID        string              `json:"engineerId"`
	CrewIDs           []string            `json:"crewIds"`
	DepartureTime     string              `json:"departureTime"`
	ArrivalTime       string              `json:"arrivalTime"`
	DepartureLocation string              `json:"departureLocation"`
	ArrivalLocation   string              `json:"arrivalLocation"`
	PassengerCount    int                 `json:"passengerCount"`
	FuelLevel         int                 `json:"fuelLevel"`
	Memo              string              `json:"memo"`
	Status            voyagedomain.Status `json:"status"`
}
