package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusInfoForCanonicalSet(t *testing.T) {
	tests := []struct {
		status     string
		wantLabel  string
		wantBucket Bucket
	}{
		{"planned", "Planned", BucketPending},
		{"Assigned", "Assigned", BucketPending},
		{"ENROUTE", "Enroute", BucketInProgress},
		{"arrived", "Arrived", BucketInProgress},
		{"Delivered", "Delivered", BucketInProgress},
		{"Completed", "Completed", BucketInProgress},
		{"cancelled", "Cancelled", BucketInProgress},
		{" completed ", "Completed", BucketInProgress},
	}

	for _, tt := range tests {
		info, known := StatusInfoFor(tt.status)
		assert.True(t, known, tt.status)
		assert.Equal(t, tt.wantLabel, info.Label)
		assert.Equal(t, tt.wantBucket, info.Bucket)
	}
}

func TestStatusInfoForUnknown(t *testing.T) {
	for _, status := range []string{"", "teleporting", "completed-ish"} {
		info, known := StatusInfoFor(status)
		assert.False(t, known, status)
		assert.Equal(t, StatusUnknown, info)
	}
}
