package service

import (
	"testing"

	"github.com/shenikar/help_hualien/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectOnGoing_WithoutUser(t *testing.T) {
	view := ProjectOnGoing(&models.OnGoingWithRelations{OnGoing: models.OnGoing{ID: 1}})

	assert.Equal(t, int64(1), view.ID)
	assert.Empty(t, view.UserName)
	assert.Empty(t, view.UserPhone)
	assert.Nil(t, view.Report)
}

func TestProjectReport_Counts(t *testing.T) {
	children := []*models.OnGoingWithRelations{
		{OnGoing: models.OnGoing{Status: models.OnGoingStatusOnTheWay}},
		{OnGoing: models.OnGoing{Status: models.OnGoingStatusOnTheWay}},
		{OnGoing: models.OnGoing{Status: models.OnGoingStatusArrived}},
		{OnGoing: models.OnGoing{Status: models.OnGoingStatusLeft}},
		{OnGoing: models.OnGoing{Status: models.OnGoingStatusCancelled}},
	}

	view := ProjectReport(&models.Report{ID: 3}, children, nil)

	assert.Equal(t, 2, view.OnGoingCount)
	assert.Equal(t, 1, view.ArrivedCount)
	assert.Equal(t, 1, view.LeftCount)
	assert.Len(t, view.OnGoings, 5, "cancelled records are listed but not counted")
	assert.Nil(t, view.Distance)
}

func TestProjectReport_Distance(t *testing.T) {
	report := &models.Report{Latitude: floatPtr(25.0330), Longitude: floatPtr(121.5654)}
	viewer := &models.Location{Latitude: 23.9769, Longitude: 121.6044}

	view := ProjectReport(report, nil, viewer)

	require.NotNil(t, view.Distance)
	assert.InDelta(t, 117.5, *view.Distance, 1.5)
	assert.Empty(t, view.OnGoings)
}
