// Package usecase derives read-only dashboard statistics from the voyage log
// collection. All functions here are pure and total: they are recomputed on
// every request, never mutate their input and never fail on empty or
// malformed collections.
package usecase

import (
	"fmt"
	"sort"
	"strings"

	fleetdomain "ferrylog-backend/internal/fleet/domain"
	voyagedomain "ferrylog-backend/internal/voyage/domain"
)

// Fixed route codes separating the two scheduled directions from everything
// else on the hourly traffic table.
const (
	RouteAB = "A->B"
	RouteBA = "B->A"
)

// Canonical chart hour range. The chart x-axis stays stable across days
// regardless of which hours have data.
const (
	ChartFirstHour = 7
	ChartLastHour  = 20
)

// RouteTotals is one hour bucket of the route traffic table.
type RouteTotals struct {
	AB     int `json:"ab"`
	BA     int `json:"ba"`
	Others int `json:"others"`
	Total  int `json:"total"`
}

// HourlyRow pairs an hour label with its totals for tabular display.
type HourlyRow struct {
	Hour   string      `json:"hour"`
	Totals RouteTotals `json:"totals"`
}

// InTransit returns the logs that have departed but not arrived, in input
// order.
func InTransit(logs []voyagedomain.VoyageLog) []voyagedomain.VoyageLog {
	var out []voyagedomain.VoyageLog
	for _, l := range logs {
		if l.InTransit() {
			out = append(out, l)
		}
	}
	return out
}

// CompletedToday returns the logs whose arrival time falls on today
// (YYYY-MM-DD, caller's local date).
func CompletedToday(logs []voyagedomain.VoyageLog, today string) []voyagedomain.VoyageLog {
	var out []voyagedomain.VoyageLog
	for _, l := range logs {
		if l.ArrivalTime != "" && strings.HasPrefix(l.ArrivalTime, today) {
			out = append(out, l)
		}
	}
	return out
}

// TotalPassengersToday sums passenger counts over today's completed voyages.
func TotalPassengersToday(logs []voyagedomain.VoyageLog, today string) int {
	sum := 0
	for _, l := range CompletedToday(logs, today) {
		sum += l.PassengerCount
	}
	return sum
}

// HourlyRouteStats aggregates today's departures into HH:00 buckets split by
// route direction. The hour comes from the departure time, not the arrival.
func HourlyRouteStats(logs []voyagedomain.VoyageLog, today string) map[string]RouteTotals {
	stats := make(map[string]RouteTotals)
	for _, l := range logs {
		if l.DepartureTime == "" || !strings.HasPrefix(l.DepartureTime, today) {
			continue
		}
		hour := hourLabel(l.DepartureTime)
		totals := stats[hour]
		switch l.RouteCode() {
		case RouteAB:
			totals.AB += l.PassengerCount
		case RouteBA:
			totals.BA += l.PassengerCount
		default:
			totals.Others += l.PassengerCount
		}
		totals.Total += l.PassengerCount
		stats[hour] = totals
	}
	return stats
}

// HourlyTable renders the stats as rows sorted by hour descending (most
// recent hour first), the order the traffic table displays.
func HourlyTable(logs []voyagedomain.VoyageLog, today string) []HourlyRow {
	stats := HourlyRouteStats(logs, today)
	rows := make([]HourlyRow, 0, len(stats))
	for hour, totals := range stats {
		rows = append(rows, HourlyRow{Hour: hour, Totals: totals})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Hour > rows[j].Hour })
	return rows
}

// HourlyChartSeries renders the stats over the canonical 07:00-20:00 hour
// range in ascending order, zero-filling hours without data.
func HourlyChartSeries(logs []voyagedomain.VoyageLog, today string) []HourlyRow {
	stats := HourlyRouteStats(logs, today)
	rows := make([]HourlyRow, 0, ChartLastHour-ChartFirstHour+1)
	for h := ChartFirstHour; h <= ChartLastHour; h++ {
		hour := fmt.Sprintf("%02d:00", h)
		rows = append(rows, HourlyRow{Hour: hour, Totals: stats[hour]})
	}
	return rows
}

// CapacityRatio returns the load of the ship's current voyage as a percent
// of capacity. Only the first in-transit log naming the ship counts; further
// matches are ignored. Returns 0 when the ship is idle or capacity is not a
// positive number.
func CapacityRatio(ship fleetdomain.Ship, inTransit []voyagedomain.VoyageLog) float64 {
	if ship.Capacity <= 0 {
		return 0
	}
	for _, l := range inTransit {
		if l.ShipName == ship.Name {
			return float64(l.PassengerCount) / float64(ship.Capacity) * 100
		}
	}
	return 0
}

// hourLabel extracts the zero-padded HH:00 bucket from an ISO local
// timestamp. Timestamps without a parsable hour land in the 00:00 bucket so
// the hourly totals still sum to the day's passenger total.
func hourLabel(departureTime string) string {
	if len(departureTime) >= 13 && departureTime[10] == 'T' {
		return departureTime[11:13] + ":00"
	}
	return "00:00"
}
