package service

import (
	"github.com/shenikar/help_hualien/internal/models"
	"github.com/shenikar/help_hualien/pkg/geo"
)

// ProjectOnGoing превращает запись со связями в представление с полями профиля волонтера
func ProjectOnGoing(rel *models.OnGoingWithRelations) *models.OnGoingView {
	view := &models.OnGoingView{
		OnGoing: rel.OnGoing,
		Report:  rel.Report,
	}
	if rel.User != nil {
		view.UserName = rel.User.Name
		view.UserPhone = rel.User.Phone
	}
	return view
}

// ProjectOnGoings применяет ProjectOnGoing к списку
func ProjectOnGoings(rels []*models.OnGoingWithRelations) []*models.OnGoingView {
	views := make([]*models.OnGoingView, len(rels))
	for i, rel := range rels {
		views[i] = ProjectOnGoing(rel)
	}
	return views
}

// ProjectReport собирает представление заявки: дочерние записи, счетчики по статусам
// и расстояние до точки просмотра (если известны обе точки)
func ProjectReport(report *models.Report, children []*models.OnGoingWithRelations, viewer *models.Location) *models.ReportView {
	view := &models.ReportView{
		Report:   *report,
		OnGoings: ProjectOnGoings(children),
	}

	for _, child := range children {
		switch child.Status {
		case models.OnGoingStatusOnTheWay:
			view.OnGoingCount++
		case models.OnGoingStatusArrived:
			view.ArrivedCount++
		case models.OnGoingStatusLeft:
			view.LeftCount++
		}
	}

	if loc := report.Location(); viewer != nil && loc != nil {
		d := geo.DistanceKm(viewer.Latitude, viewer.Longitude, loc.Latitude, loc.Longitude)
		view.Distance = &d
	}
	return view
}
