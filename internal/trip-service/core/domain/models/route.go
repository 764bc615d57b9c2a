package models

import "sort"

// Activity kinds a route stop can carry. The field is an open string on the
// wire; anything outside this set gets generic treatment.
const (
	ActivityPickup   = "Pickup"
	ActivityTripStop = "Trip Stop"
	ActivityDelivery = "Delivery"
	ActivityReturn   = "Return"
)

// RouteStop is one stop of a trip's route, returned by TripRouteDetail.
// No defines the check-in order; IsArrive and IsDepart are the two sub-steps
// completed strictly in that order.
type RouteStop struct {
	ID             int     `json:"id"`
	LoadID         int     `json:"loadId"`
	Activity       string  `json:"activity"`
	ActivityID     int     `json:"activityId"`
	StartedDate    string  `json:"startedDate"`
	EndDate        *string `json:"endDate"`
	Address        string  `json:"address"`
	TripID         string  `json:"tripID"`
	Type           int     `json:"type"`
	No             int     `json:"no"`
	BusinessName   string  `json:"businessName"`
	City           string  `json:"city"`
	StateCode      string  `json:"state"`
	HandlingTime   string  `json:"handlingTime"`
	Arrive         *string `json:"arrive"`
	ArriveStatus   string  `json:"arriveStatus"`
	TimeAtLocation string  `json:"timeAtLocation"`
	Depart         *string `json:"depart"`
	DepartStatus   string  `json:"departStatus"`
	Check          int     `json:"check"`
	IsArrive       bool    `json:"isArrive"`
	IsDepart       bool    `json:"isDepart"`
	Notes          *string `json:"notes"`
	DriverAssist   bool    `json:"driverAssist"`
	Reference      *string `json:"reference"`
}

// StopState is the explicit per-stop progress state derived from the two
// wire booleans.
type StopState int

const (
	StopPending StopState = iota
	StopArrived
	StopDeparted
	// StopInvalid marks the isDepart-without-isArrive pair, which a healthy
	// server never produces.
	StopInvalid
)

func (s StopState) String() string {
	switch s {
	case StopPending:
		return "pending"
	case StopArrived:
		return "arrived"
	case StopDeparted:
		return "departed"
	default:
		return "invalid"
	}
}

// StopStateOf maps the (isArrive, isDepart) flag pair to a StopState.
func StopStateOf(isArrive, isDepart bool) StopState {
	switch {
	case isArrive && isDepart:
		return StopDeparted
	case isArrive:
		return StopArrived
	case isDepart:
		return StopInvalid
	default:
		return StopPending
	}
}

// State returns the stop's derived progress state.
func (r RouteStop) State() StopState {
	return StopStateOf(r.IsArrive, r.IsDepart)
}

// SortStops orders stops ascending by sequence number, in place. Every
// consumer of a route works on a No-sorted slice.
func SortStops(stops []RouteStop) {
	sort.Slice(stops, func(i, j int) bool {
		return stops[i].No < stops[j].No
	})
}
