package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReportStatus_IsValid(t *testing.T) {
	for _, s := range []ReportStatus{ReportStatusPending, ReportStatusProcessing, ReportStatusCompleted, ReportStatusRejected} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, ReportStatus("Pending").IsValid(), "statuses are case-sensitive")
	assert.False(t, ReportStatus("").IsValid())
}

func TestOnGoingStatus_IsActive(t *testing.T) {
	assert.True(t, OnGoingStatusOnTheWay.IsActive())
	assert.True(t, OnGoingStatusArrived.IsActive())
	assert.False(t, OnGoingStatusLeft.IsActive())
	assert.False(t, OnGoingStatusCancelled.IsActive())
	assert.False(t, OnGoingStatus("on the way").IsValid())
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("0912345678"))
	assert.False(t, IsValidPhone("912345678"))
	assert.False(t, IsValidPhone("09123456789"))
	assert.False(t, IsValidPhone("0212345678"))
	assert.False(t, IsValidPhone("09-1234-5678"))
}

func TestLocation(t *testing.T) {
	assert.True(t, Location{Latitude: 23.97, Longitude: 121.6}.IsValid())
	assert.False(t, Location{Latitude: 91, Longitude: 0}.IsValid())
	assert.False(t, Location{Latitude: 0, Longitude: -181}.IsValid())

	lat, lon := 23.97, 121.6
	r := &Report{Latitude: &lat}
	assert.Nil(t, r.Location())
	r.Longitude = &lon
	assert.Equal(t, &Location{Latitude: lat, Longitude: lon}, r.Location())
}

func TestReportUpdate_IsEmpty(t *testing.T) {
	assert.True(t, ReportUpdate{}.IsEmpty())
	status := ReportStatusCompleted
	assert.False(t, ReportUpdate{Status: &status}.IsEmpty())
}
