package models

import "strings"

// Bucket is the coarse dashboard grouping of a trip status.
type Bucket string

const (
	BucketAll        Bucket = "all"
	BucketPending    Bucket = "pending"
	BucketInProgress Bucket = "in-progress"
)

// StatusInfo describes how one canonical trip status is presented.
// Color carries the mobile palette hex value; front ends map it to whatever
// their medium supports.
type StatusInfo struct {
	Label  string
	Bucket Bucket
	Color  string
}

// StatusUnknown is returned for any status string outside the canonical set.
// Unrecognized statuses stay visibly "unknown" instead of borrowing another
// status's treatment.
var StatusUnknown = StatusInfo{Label: "Unknown", Bucket: BucketInProgress, Color: "#9CA3AF"}

// statusTable is the closed mapping from canonical lowercase status strings.
// Buckets here drive card rendering; the dashboard filter applies its own
// historical predicate (see TripService), where "in-progress" means anything
// not assigned.
var statusTable = map[string]StatusInfo{
	"planned":   {Label: "Planned", Bucket: BucketPending, Color: "#042f40"},
	"assigned":  {Label: "Assigned", Bucket: BucketPending, Color: "#042f40"},
	"enroute":   {Label: "Enroute", Bucket: BucketInProgress, Color: "#00437a"},
	"arrived":   {Label: "Arrived", Bucket: BucketInProgress, Color: "#00437a"},
	"delivered": {Label: "Delivered", Bucket: BucketInProgress, Color: "#4CAF50"},
	"completed": {Label: "Completed", Bucket: BucketInProgress, Color: "#4CAF50"},
	"cancelled": {Label: "Cancelled", Bucket: BucketInProgress, Color: "#F44336"},
}

// StatusInfoFor looks up the presentation entry for a raw status string,
// case-insensitively. The second return is false for unrecognized statuses,
// which map to StatusUnknown.
func StatusInfoFor(status string) (StatusInfo, bool) {
	info, ok := statusTable[strings.ToLower(strings.TrimSpace(status))]
	if !ok {
		return StatusUnknown, false
	}
	return info, true
}
