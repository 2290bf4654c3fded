package v1

import "github.com/shenikar/help_hualien/internal/models"

// DTOToNewReport преобразует DTO создания в входные данные сервиса
func DTOToNewReport(dto CreateReportRequest) models.NewReport {
	input := models.NewReport{
		Address:     dto.Address,
		Description: dto.Description,
	}
	if dto.Latitude != nil && dto.Longitude != nil {
		input.Location = &models.Location{Latitude: *dto.Latitude, Longitude: *dto.Longitude}
	}
	return input
}

// DTOToReportUpdate преобразует DTO обновления, сохраняя "не задано" как nil
func DTOToReportUpdate(dto UpdateReportRequest) models.ReportUpdate {
	update := models.ReportUpdate{
		Address:     dto.Address,
		Description: dto.Description,
	}
	if dto.Status != nil {
		status := models.ReportStatus(*dto.Status)
		update.Status = &status
	}
	return update
}

// ViewerToLocation возвращает точку просмотра или nil, если она не передана
func ViewerToLocation(q ViewerQuery) *models.Location {
	if q.Latitude == nil || q.Longitude == nil {
		return nil
	}
	return &models.Location{Latitude: *q.Latitude, Longitude: *q.Longitude}
}

// ModelToReportResponse преобразует доменную модель в DTO для ответа
func ModelToReportResponse(model *models.Report) *ReportResponse {
	return &ReportResponse{
		ID:          model.ID,
		UserID:      model.UserID,
		Name:        model.Name,
		Phone:       model.Phone,
		Address:     model.Address,
		Description: model.Description,
		Latitude:    model.Latitude,
		Longitude:   model.Longitude,
		Status:      string(model.Status),
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func ViewToReportResponse(view *models.ReportView) *ReportViewResponse {
	return &ReportViewResponse{
		ReportResponse: *ModelToReportResponse(&view.Report),
		Distance:       view.Distance,
		OnGoings:       ViewsToOnGoingResponses(view.OnGoings),
		OnGoingCount:   view.OnGoingCount,
		ArrivedCount:   view.ArrivedCount,
		LeftCount:      view.LeftCount,
	}
}

// ViewsToReportResponses преобразует слайс представлений в слайс DTO
func ViewsToReportResponses(views []*models.ReportView) []*ReportViewResponse {
	responses := make([]*ReportViewResponse, len(views))
	for i, view := range views {
		responses[i] = ViewToReportResponse(view)
	}
	return responses
}

func ViewToOnGoingResponse(view *models.OnGoingView) *OnGoingResponse {
	resp := &OnGoingResponse{
		ID:        view.ID,
		ReportID:  view.ReportID,
		UserID:    view.UserID,
		Status:    string(view.Status),
		Minutes:   view.Minutes,
		UserName:  view.UserName,
		UserPhone: view.UserPhone,
		CreatedAt: view.CreatedAt,
		UpdatedAt: view.UpdatedAt,
	}
	if view.Report != nil {
		resp.Report = ModelToReportResponse(view.Report)
	}
	return resp
}

func ViewsToOnGoingResponses(views []*models.OnGoingView) []*OnGoingResponse {
	responses := make([]*OnGoingResponse, len(views))
	for i, view := range views {
		responses[i] = ViewToOnGoingResponse(view)
	}
	return responses
}

func ModelToUserResponse(model *models.User) *UserResponse {
	return &UserResponse{
		ID:        model.ID,
		Name:      model.Name,
		Phone:     model.Phone,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
