package service

import (
	"context"
	"errors"
	"testing"

	"github.com/shenikar/help_hualien/internal/models"
	"github.com/shenikar/help_hualien/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reportTestDeps struct {
	repo     *mocks.MockReportRepository
	onGoings *mocks.MockOnGoingRepository
	profiles *mocks.MockProfileLookup
}

// newTestReportService создает сервис заявок с моками зависимостей
func newTestReportService(t *testing.T) (*reportService, reportTestDeps) {
	ctrl := gomock.NewController(t)
	deps := reportTestDeps{
		repo:     mocks.NewMockReportRepository(ctrl),
		onGoings: mocks.NewMockOnGoingRepository(ctrl),
		profiles: mocks.NewMockProfileLookup(ctrl),
	}

	service := NewReportService(deps.repo, deps.onGoings, deps.profiles, newTestLogger())
	return service.(*reportService), deps
}

func floatPtr(v float64) *float64 { return &v }

func TestCreateReport_Success(t *testing.T) {
	// Подготовка
	service, deps := newTestReportService(t)
	ctx := context.Background()
	profile := &models.User{ID: "uid-1", Name: "王小明", Phone: "0912345678"}
	input := models.NewReport{
		Address:     "花蓮縣光復鄉中正路一段",
		Description: "需要清淤人力",
		Location:    &models.Location{Latitude: 23.6687, Longitude: 121.4219},
	}

	// Ожидания
	deps.profiles.EXPECT().GetProfile(ctx, "uid-1").Return(profile, nil).Times(1)
	deps.repo.EXPECT().
		Create(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, r *models.Report) error {
			r.ID = 42
			return nil
		}).
		Times(1)

	// Действие
	report, err := service.CreateReport(ctx, "uid-1", input)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, int64(42), report.ID)
	assert.Equal(t, "uid-1", report.UserID)
	assert.Equal(t, "王小明", report.Name)
	assert.Equal(t, "0912345678", report.Phone)
	assert.Equal(t, models.ReportStatusPending, report.Status)
	require.NotNil(t, report.Location())
	assert.Equal(t, *input.Location, *report.Location())
}

func TestCreateReport_WithoutLocation(t *testing.T) {
	// Подготовка
	service, deps := newTestReportService(t)
	ctx := context.Background()
	profile := &models.User{ID: "uid-1", Name: "Lin", Phone: "0987654321"}

	// Ожидания
	deps.profiles.EXPECT().GetProfile(ctx, "uid-1").Return(profile, nil).Times(1)
	deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil).Times(1)

	// Действие
	report, err := service.CreateReport(ctx, "uid-1", models.NewReport{Address: "a", Description: "b"})

	// Проверки
	require.NoError(t, err)
	assert.Nil(t, report.Latitude)
	assert.Nil(t, report.Longitude)
}

func TestCreateReport_ProfileMissing(t *testing.T) {
	// Подготовка
	service, deps := newTestReportService(t)
	ctx := context.Background()

	// Ожидания: до репозитория дело не доходит
	deps.profiles.EXPECT().GetProfile(ctx, "uid-1").Return(nil, ErrProfileNotFound).Times(1)

	// Действие
	report, err := service.CreateReport(ctx, "uid-1", models.NewReport{Address: "a", Description: "b"})

	// Проверки
	require.Error(t, err)
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "User not found")
}

func TestCreateReport_ValidationErrors(t *testing.T) {
	testCases := []struct {
		name        string
		input       models.NewReport
		expectedErr error
	}{
		{
			name:        "Empty address",
			input:       models.NewReport{Address: "  ", Description: "b"},
			expectedErr: ErrEmptyField,
		},
		{
			name:        "Empty description",
			input:       models.NewReport{Address: "a", Description: ""},
			expectedErr: ErrEmptyField,
		},
		{
			name: "Latitude out of range",
			input: models.NewReport{
				Address: "a", Description: "b",
				Location: &models.Location{Latitude: 91, Longitude: 121},
			},
			expectedErr: ErrInvalidLocation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			service, _ := newTestReportService(t)

			report, err := service.CreateReport(context.Background(), "uid-1", tc.input)

			require.Error(t, err)
			assert.Nil(t, report)
			assert.ErrorIs(t, err, tc.expectedErr)
		})
	}
}

func TestListReports_CountsAndDistance(t *testing.T) {
	// Подготовка
	service, deps := newTestReportService(t)
	ctx := context.Background()
	withLocation := &models.Report{ID: 2, Latitude: floatPtr(23.9769), Longitude: floatPtr(121.6044)}
	withoutLocation := &models.Report{ID: 1}
	volunteer := &models.User{ID: "v-1", Name: "Chen", Phone: "0911111111"}
	children := []*models.OnGoingWithRelations{
		{OnGoing: models.OnGoing{ID: 10, ReportID: 2, Status: models.OnGoingStatusOnTheWay}, User: volunteer},
		{OnGoing: models.OnGoing{ID: 11, ReportID: 2, Status: models.OnGoingStatusLeft}, User: volunteer},
	}
	viewer := &models.Location{Latitude: 23.9769, Longitude: 121.6044}

	// Ожидания
	deps.repo.EXPECT().
		List(ctx, models.ReportFilter{}).
		Return([]*models.Report{withLocation, withoutLocation}, nil).
		Times(1)
	deps.onGoings.EXPECT().
		ListByReports(ctx, []int64{2, 1}).
		Return(children, nil).
		Times(1)

	// Действие
	views, err := service.ListReports(ctx, viewer)

	// Проверки
	require.NoError(t, err)
	require.Len(t, views, 2)

	assert.Equal(t, int64(2), views[0].ID, "order from repository must be preserved")
	assert.Equal(t, 1, views[0].OnGoingCount)
	assert.Equal(t, 0, views[0].ArrivedCount)
	assert.Equal(t, 1, views[0].LeftCount)
	require.Len(t, views[0].OnGoings, 2)
	assert.Equal(t, "Chen", views[0].OnGoings[0].UserName)
	require.NotNil(t, views[0].Distance)
	assert.InDelta(t, 0, *views[0].Distance, 1e-9)

	assert.Empty(t, views[1].OnGoings)
	assert.Nil(t, views[1].Distance, "report without coordinates has no distance")
}

func TestListReports_Empty(t *testing.T) {
	// Подготовка
	service, deps := newTestReportService(t)
	ctx := context.Background()

	// Ожидания: при пустом списке дочерние записи не запрашиваются
	deps.repo.EXPECT().List(ctx, models.ReportFilter{}).Return(nil, nil).Times(1)

	// Действие
	views, err := service.ListReports(ctx, nil)

	// Проверки
	require.NoError(t, err)
	assert.Empty(t, views)
}

func TestListReports_InvalidViewer(t *testing.T) {
	service, _ := newTestReportService(t)

	views, err := service.ListReports(context.Background(), &models.Location{Latitude: 0, Longitude: 200})

	assert.Nil(t, views)
	assert.ErrorIs(t, err, ErrInvalidLocation)
}

func TestListMyReports_FiltersByCaller(t *testing.T) {
	// Подготовка
	service, deps := newTestReportService(t)
	ctx := context.Background()
	mine := &models.Report{ID: 7, UserID: "uid-1"}

	// Ожидания
	deps.repo.EXPECT().List(ctx, models.ReportFilter{UserID: "uid-1"}).Return([]*models.Report{mine}, nil).Times(1)
	deps.onGoings.EXPECT().ListByReports(ctx, []int64{7}).Return(nil, nil).Times(1)

	// Действие
	views, err := service.ListMyReports(ctx, "uid-1", nil)

	// Проверки
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "uid-1", views[0].UserID)
	assert.Nil(t, views[0].Distance)
}

func TestListReports_RepositoryError(t *testing.T) {
	service, deps := newTestReportService(t)
	ctx := context.Background()

	deps.repo.EXPECT().List(ctx, models.ReportFilter{}).Return(nil, errors.New("connection reset")).Times(1)

	views, err := service.ListReports(ctx, nil)

	assert.Nil(t, views)
	assert.ErrorContains(t, err, "could not list reports")
}

func TestUpdateReport_Partial(t *testing.T) {
	// Подготовка
	service, deps := newTestReportService(t)
	ctx := context.Background()
	status := models.ReportStatusProcessing
	update := models.ReportUpdate{Status: &status}
	updated := &models.Report{ID: 5, UserID: "uid-1", Address: "old", Description: "old", Status: status}

	// Ожидания
	deps.repo.EXPECT().Update(ctx, int64(5), "uid-1", update).Return(updated, nil).Times(1)

	// Действие
	report, err := service.UpdateReport(ctx, "uid-1", 5, update)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusProcessing, report.Status)
	assert.Equal(t, "old", report.Address)
}

func TestUpdateReport_AnyStatusAccepted(t *testing.T) {
	// Переходы не ограничены: completed -> pending тоже допустим
	service, deps := newTestReportService(t)
	ctx := context.Background()
	status := models.ReportStatusPending
	update := models.ReportUpdate{Status: &status}

	deps.repo.EXPECT().
		Update(ctx, int64(5), "uid-1", update).
		Return(&models.Report{ID: 5, Status: status}, nil).
		Times(1)

	report, err := service.UpdateReport(ctx, "uid-1", 5, update)

	require.NoError(t, err)
	assert.Equal(t, models.ReportStatusPending, report.Status)
}

func TestUpdateReport_InvalidStatus(t *testing.T) {
	service, _ := newTestReportService(t)
	status := models.ReportStatus("done")

	report, err := service.UpdateReport(context.Background(), "uid-1", 5, models.ReportUpdate{Status: &status})

	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrInvalidReportStatus)
}

func TestUpdateReport_NotOwned(t *testing.T) {
	// Подготовка
	service, deps := newTestReportService(t)
	ctx := context.Background()
	address := "new"
	update := models.ReportUpdate{Address: &address}

	// Ожидания
	deps.repo.EXPECT().Update(ctx, int64(5), "intruder", update).Return(nil, ErrOwnedReportNotFound).Times(1)

	// Действие
	report, err := service.UpdateReport(ctx, "intruder", 5, update)

	// Проверки
	assert.Nil(t, report)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorContains(t, err, "not owned by user")
}
