package service

import (
	"context"
	"testing"

	"github.com/shenikar/help_hualien/internal/models"
	"github.com/shenikar/help_hualien/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type onGoingTestDeps struct {
	repo     *mocks.MockOnGoingRepository
	reports  *mocks.MockReportRepository
	profiles *mocks.MockProfileLookup
}

// newTestOnGoingService создает сервис поездок с моками зависимостей
func newTestOnGoingService(t *testing.T) (*onGoingService, onGoingTestDeps) {
	ctrl := gomock.NewController(t)
	deps := onGoingTestDeps{
		repo:     mocks.NewMockOnGoingRepository(ctrl),
		reports:  mocks.NewMockReportRepository(ctrl),
		profiles: mocks.NewMockProfileLookup(ctrl),
	}

	service := NewOnGoingService(deps.repo, deps.reports, deps.profiles, newTestLogger())
	return service.(*onGoingService), deps
}

func intPtr(v int) *int { return &v }

func TestCreateOnGoing_Success(t *testing.T) {
	// Подготовка
	service, deps := newTestOnGoingService(t)
	ctx := context.Background()
	volunteer := &models.User{ID: "v-1", Name: "Chen", Phone: "0911111111"}

	// Ожидания
	deps.reports.EXPECT().GetByID(ctx, int64(5)).Return(&models.Report{ID: 5}, nil).Times(1)
	deps.profiles.EXPECT().GetProfile(ctx, "v-1").Return(volunteer, nil).Times(1)
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, o *models.OnGoing) error {
			assert.Equal(t, models.OnGoingStatusOnTheWay, o.Status)
			assert.Equal(t, "v-1", o.UserID)
			assert.Equal(t, int64(5), o.ReportID)
			o.ID = 100
			return nil
		}).
		Times(1)

	// Действие
	view, err := service.CreateOnGoing(ctx, "v-1", 5, 30)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(100), view.ID)
	assert.Equal(t, 30, view.Minutes)
	assert.Equal(t, "Chen", view.UserName)
	assert.Equal(t, "0911111111", view.UserPhone)
}

func TestCreateOnGoing_SecondActiveTripRejected(t *testing.T) {
	// Подготовка: первая поездка к заявке 5 создана, вторая к заявке 9 упирается в индекс
	service, deps := newTestOnGoingService(t)
	ctx := context.Background()
	volunteer := &models.User{ID: "v-1", Name: "Chen", Phone: "0911111111"}

	// Ожидания
	deps.reports.EXPECT().GetByID(ctx, gomock.Any()).Return(&models.Report{}, nil).Times(2)
	deps.profiles.EXPECT().GetProfile(ctx, "v-1").Return(volunteer, nil).Times(2)
	gomock.InOrder(
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil),
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(ErrActiveTrip),
	)

	// Действие
	first, err := service.CreateOnGoing(ctx, "v-1", 5, 10)
	require.NoError(t, err)
	require.NotNil(t, first)

	second, err := service.CreateOnGoing(ctx, "v-1", 9, 10)

	// Проверки
	assert.Nil(t, second)
	assert.ErrorIs(t, err, ErrConflict)
	assert.ErrorContains(t, err, "Please report leaving your current trip first")
}

func TestCreateOnGoing_AfterCancelSucceeds(t *testing.T) {
	// Подготовка
	service, deps := newTestOnGoingService(t)
	ctx := context.Background()
	volunteer := &models.User{ID: "v-1", Name: "Chen", Phone: "0911111111"}

	// Ожидания
	deps.repo.EXPECT().Delete(ctx, int64(100), "v-1").Return(nil).Times(1)
	deps.reports.EXPECT().GetByID(ctx, int64(9)).Return(&models.Report{ID: 9}, nil).Times(1)
	deps.profiles.EXPECT().GetProfile(ctx, "v-1").Return(volunteer, nil).Times(1)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	require.NoError(t, service.RemoveOnGoing(ctx, "v-1", 100))
	view, err := service.CreateOnGoing(ctx, "v-1", 9, 0)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(9), view.ReportID)
}

func TestCreateOnGoing_Failures(t *testing.T) {
	t.Run("Negative minutes", func(t *testing.T) {
		service, _ := newTestOnGoingService(t)

		view, err := service.CreateOnGoing(context.Background(), "v-1", 5, -1)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, ErrNegativeMinutes)
	})

	t.Run("Missing report", func(t *testing.T) {
		service, deps := newTestOnGoingService(t)
		ctx := context.Background()

		deps.reports.EXPECT().GetByID(ctx, int64(404)).Return(nil, ErrReportNotFound).Times(1)

		view, err := service.CreateOnGoing(ctx, "v-1", 404, 10)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorContains(t, err, "Report not found")
	})

	t.Run("Missing profile", func(t *testing.T) {
		service, deps := newTestOnGoingService(t)
		ctx := context.Background()

		deps.reports.EXPECT().GetByID(ctx, int64(5)).Return(&models.Report{ID: 5}, nil).Times(1)
		deps.profiles.EXPECT().GetProfile(ctx, "v-1").Return(nil, ErrProfileNotFound).Times(1)

		view, err := service.CreateOnGoing(ctx, "v-1", 5, 10)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}

func TestUpdateOnGoingStatus_Success(t *testing.T) {
	// Подготовка
	service, deps := newTestOnGoingService(t)
	ctx := context.Background()
	volunteer := &models.User{ID: "v-1", Name: "Chen", Phone: "0911111111"}
	updated := &models.OnGoing{ID: 100, ReportID: 5, UserID: "v-1", Status: models.OnGoingStatusArrived, Minutes: 15}

	// Ожидания
	deps.repo.EXPECT().
		UpdateStatus(ctx, int64(100), "v-1", models.OnGoingStatusArrived, intPtr(15)).
		Return(updated, nil).
		Times(1)
	deps.profiles.EXPECT().GetProfile(ctx, "v-1").Return(volunteer, nil).Times(1)

	// Действие
	view, err := service.UpdateOnGoingStatus(ctx, "v-1", 100, models.OnGoingStatusArrived, intPtr(15))

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.OnGoingStatusArrived, view.Status)
	assert.Equal(t, 15, view.Minutes)
	assert.Equal(t, "Chen", view.UserName)
}

func TestUpdateOnGoingStatus_AnyTransitionAccepted(t *testing.T) {
	// Граф переходов не проверяется: left -> on_the_way проходит как есть
	service, deps := newTestOnGoingService(t)
	ctx := context.Background()
	updated := &models.OnGoing{ID: 100, UserID: "v-1", Status: models.OnGoingStatusOnTheWay}

	deps.repo.EXPECT().
		UpdateStatus(ctx, int64(100), "v-1", models.OnGoingStatusOnTheWay, nil).
		Return(updated, nil).
		Times(1)
	deps.profiles.EXPECT().GetProfile(ctx, "v-1").Return(nil, ErrProfileNotFound).Times(1)

	view, err := service.UpdateOnGoingStatus(ctx, "v-1", 100, models.OnGoingStatusOnTheWay, nil)

	require.NoError(t, err)
	assert.Equal(t, models.OnGoingStatusOnTheWay, view.Status)
	assert.Empty(t, view.UserName, "profile lookup failure only drops contact fields")
}

func TestUpdateOnGoingStatus_Failures(t *testing.T) {
	t.Run("Unknown status", func(t *testing.T) {
		service, _ := newTestOnGoingService(t)

		view, err := service.UpdateOnGoingStatus(context.Background(), "v-1", 100, "flying", nil)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, ErrInvalidTripStatus)
	})

	t.Run("Negative minutes", func(t *testing.T) {
		service, _ := newTestOnGoingService(t)

		view, err := service.UpdateOnGoingStatus(context.Background(), "v-1", 100, models.OnGoingStatusArrived, intPtr(-5))

		assert.Nil(t, view)
		assert.ErrorIs(t, err, ErrNegativeMinutes)
	})

	t.Run("Foreign record", func(t *testing.T) {
		service, deps := newTestOnGoingService(t)
		ctx := context.Background()

		deps.repo.EXPECT().
			UpdateStatus(ctx, int64(100), "intruder", models.OnGoingStatusLeft, nil).
			Return(nil, ErrOnGoingNotFound).
			Times(1)

		view, err := service.UpdateOnGoingStatus(ctx, "intruder", 100, models.OnGoingStatusLeft, nil)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Reactivation conflicts with another trip", func(t *testing.T) {
		service, deps := newTestOnGoingService(t)
		ctx := context.Background()

		deps.repo.EXPECT().
			UpdateStatus(ctx, int64(100), "v-1", models.OnGoingStatusArrived, nil).
			Return(nil, ErrActiveTrip).
			Times(1)

		view, err := service.UpdateOnGoingStatus(ctx, "v-1", 100, models.OnGoingStatusArrived, nil)

		assert.Nil(t, view)
		assert.ErrorIs(t, err, ErrConflict)
	})
}

func TestListOnGoingByReport(t *testing.T) {
	// Подготовка
	service, deps := newTestOnGoingService(t)
	ctx := context.Background()
	rels := []*models.OnGoingWithRelations{
		{OnGoing: models.OnGoing{ID: 2, ReportID: 5}, User: &models.User{Name: "A", Phone: "0911111111"}},
		{OnGoing: models.OnGoing{ID: 1, ReportID: 5}, User: &models.User{Name: "B", Phone: "0922222222"}},
	}

	// Ожидания
	deps.repo.EXPECT().ListByReport(ctx, int64(5)).Return(rels, nil).Times(1)

	// Действие
	views, err := service.ListOnGoingByReport(ctx, 5)

	// Проверки
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "A", views[0].UserName)
	assert.Equal(t, "0922222222", views[1].UserPhone)
}

func TestListMyOnGoing_IncludesReport(t *testing.T) {
	// Подготовка
	service, deps := newTestOnGoingService(t)
	ctx := context.Background()
	report := &models.Report{ID: 5, Address: "光復鄉"}
	rels := []*models.OnGoingWithRelations{
		{OnGoing: models.OnGoing{ID: 1, ReportID: 5, UserID: "v-1"}, User: &models.User{Name: "Chen"}, Report: report},
	}

	// Ожидания
	deps.repo.EXPECT().ListByUser(ctx, "v-1").Return(rels, nil).Times(1)

	// Действие
	views, err := service.ListMyOnGoing(ctx, "v-1")

	// Проверки
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, report, views[0].Report)
}

func TestRemoveOnGoing_NotFound(t *testing.T) {
	service, deps := newTestOnGoingService(t)
	ctx := context.Background()

	deps.repo.EXPECT().Delete(ctx, int64(100), "intruder").Return(ErrOnGoingNotFound).Times(1)

	err := service.RemoveOnGoing(ctx, "intruder", 100)

	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "could not remove ongoing")
}
