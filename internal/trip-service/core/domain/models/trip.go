package models

import "strings"

// Trip is the wire shape returned by Trip_ListByDriver. The server owns every
// field; the client never mutates a Trip, it re-fetches the whole list after
// any stop update.
type Trip struct {
	ID                    int     `json:"id"`
	TripID                string  `json:"tripID"`
	TripStatus            string  `json:"tripStatus"`
	Driver                string  `json:"driver"`
	DriverID              string  `json:"driverId"`
	Revenue               string  `json:"revenue"`
	Dispatcher            string  `json:"dispatcher"`
	DispatcherID          *string `json:"dispatcherId"`
	Vehicle               string  `json:"vehicle"`
	VehicleID             int     `json:"vehicleId"`
	Trailer               string  `json:"trailer"`
	TrailerID             int     `json:"trailerId"`
	Chassis               *string `json:"chassis"`
	Container             string  `json:"container"`
	Legs                  int     `json:"legs"`
	TripStartLocation     string  `json:"tripStartLocation"`
	TripEndLocation       string  `json:"tripEndLocation"`
	TripNameStartLocation string  `json:"tripNameStartLocation"`
	TripNameEndLocation   string  `json:"tripNameEndLocation"`
	TripStart             string  `json:"tripStart"`
	TripEnd               string  `json:"tripEnd"`
	LoadID                int     `json:"loadID"`
	ManifestID            string  `json:"manifestID"`
	Customer              string  `json:"customer"`
	CustomerAddress       string  `json:"customerAddress"`
	CustomerContact       *string `json:"customerContact"`
	Reference             string  `json:"reference"`
	SettlementStatus      string  `json:"settlementStatus"`
	SettlementAmount      string  `json:"settlementAmount"`
	TripMiles             float64 `json:"tripMiles"`
	EmptyMiles            float64 `json:"emptyMiles"`
	DispatcherTerminal    *string `json:"dispatcherTerminal"`
	CreatedDatetime       string  `json:"createdDatetime"`
	Delay                 bool    `json:"delay"`
	DispatcherNotes       *string `json:"dispatcherNotes"`
	Seal                  string  `json:"seal"`
	RequiredEquipmentType string  `json:"requiredEquipmentType"`
	CommondityType        string  `json:"commondityType"`
	PickupStatus          *string `json:"pickupStatus"`
	DeliveryStatus        *string `json:"deliveryStatus"`
	PickUpNameLocation    string  `json:"pickUpNameLocation"`
	PickUpAddress         string  `json:"pickUpAddress"`
	DropOffNameLocation   string  `json:"dropOffNameLocation"`
	DropOffAddress        string  `json:"dropOffAddress"`
	TrailerStatus         *string `json:"trailerStatus"`
	PickUpAppointment     string  `json:"pickUpAppointment"`
	DeliveryAppointment   *string `json:"deliveryAppointment"`
	ReturnAppointment     string  `json:"returnAppointment"`
	BookingAppointment    *string `json:"bookingAppointment"`
	No                    int     `json:"no"`
}

// StatusKey returns the lowercased status used for bucket and table lookups.
func (t Trip) StatusKey() string {
	return strings.ToLower(t.TripStatus)
}

// IsAssigned reports whether the trip is still only assigned. Assigned trips
// are not openable and their check-in control stays hidden.
func (t Trip) IsAssigned() bool {
	return t.StatusKey() == "assigned"
}

// IsCompleted reports the trip-level completion signal. This is independent
// from the per-stop flags; the two can disagree and both are kept observable.
func (t Trip) IsCompleted() bool {
	return t.StatusKey() == "completed"
}
