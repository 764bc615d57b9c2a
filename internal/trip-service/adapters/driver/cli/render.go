package cli

import (
	"fmt"
	"io"
	"strings"

	"driver-trip/internal/trip-service/core/domain/models"
	"driver-trip/internal/trip-service/core/services"
)

// ANSI color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Gray   = "\033[90m"
)

// statusColor maps a trip status to a terminal color through the closed
// status table; unknown statuses render gray.
func statusColor(status string) string {
	info, known := models.StatusInfoFor(status)
	if !known {
		return Gray
	}
	switch info.Color {
	case "#4CAF50":
		return Green
	case "#F44336":
		return Red
	case "#00437a":
		return Cyan
	default:
		return Blue
	}
}

func renderTripRow(w io.Writer, trip models.Trip) {
	fmt.Fprintf(w, "%s#%d%s  %s%-10s%s  %s -> %s  %s\n",
		Gray, trip.ID, Reset,
		statusColor(trip.TripStatus), strings.ToUpper(trip.TripStatus), Reset,
		trip.TripStartLocation, trip.TripEndLocation,
		trip.Customer,
	)
}

func renderTripDetail(w io.Writer, trip models.Trip) {
	fmt.Fprintf(w, "Trip #%d  %s%s%s\n", trip.ID, statusColor(trip.TripStatus), strings.ToUpper(trip.TripStatus), Reset)
	fmt.Fprintf(w, "  Customer:   %s\n", orNA(trip.Customer))
	fmt.Fprintf(w, "  Dispatcher: %s\n", orNA(trip.Dispatcher))
	fmt.Fprintf(w, "  Vehicle:    %s\n", orNA(trip.Vehicle))
	fmt.Fprintf(w, "  Trailer:    %s\n", orNA(trip.Trailer))
	fmt.Fprintf(w, "  Route:      %s -> %s\n", trip.TripStartLocation, trip.TripEndLocation)
	if trip.CustomerContact != nil && *trip.CustomerContact != "" {
		fmt.Fprintf(w, "  Contact:    %s\n", *trip.CustomerContact)
	}
}

func renderStop(w io.Writer, stop models.RouteStop, next services.CheckInAction, hasNext bool) {
	marker := " "
	if hasNext && next.Stop.ID == stop.ID {
		marker = ">"
	}

	var state string
	switch stop.State() {
	case models.StopDeparted:
		state = Green + "done     " + Reset
	case models.StopArrived:
		state = Yellow + "at stop  " + Reset
	case models.StopInvalid:
		state = Red + "invalid  " + Reset
	default:
		state = Gray + "pending  " + Reset
	}

	fmt.Fprintf(w, " %s %2d. %-9s %s  %s, %s %s\n",
		marker, stop.No, stop.Activity, state, stop.BusinessName, stop.City, stop.StateCode)
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
