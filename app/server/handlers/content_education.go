package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-cms/app/server/constants"
	"portfolio-cms/app/server/models"
)

type educationCreateRequest struct {
	Degree       string   `json:"degree" validate:"required"`
	Institution  string   `json:"institution" validate:"required"`
	FieldOfStudy string   `json:"field_of_study"`
	Location     string   `json:"location"`
	Period       string   `json:"period" validate:"required"`
	Description  string   `json:"description"`
	Highlights   []string `json:"highlights"`
	Order        int      `json:"order"`
}

type educationUpdateRequest struct {
	Degree       *string   `json:"degree" validate:"omitempty,min=1"`
	Institution  *string   `json:"institution" validate:"omitempty,min=1"`
	FieldOfStudy *string   `json:"field_of_study"`
	Location     *string   `json:"location"`
	Period       *string   `json:"period" validate:"omitempty,min=1"`
	Description  *string   `json:"description"`
	Highlights   *[]string `json:"highlights"`
	Order        *int      `json:"order"`
}

func (a *App) educationMapFields(req *educationUpdateRequest, edu *models.Education) {
	if req.Degree != nil {
		edu.Degree = *req.Degree
	}
	if req.Institution != nil {
		edu.Institution = *req.Institution
	}
	if req.FieldOfStudy != nil {
		edu.FieldOfStudy = *req.FieldOfStudy
	}
	if req.Location != nil {
		edu.Location = *req.Location
	}
	if req.Period != nil {
		edu.Period = *req.Period
	}
	if req.Description != nil {
		edu.Description = *req.Description
	}

	if req.Highlights != nil {
		edu.Highlights = *req.Highlights
	}

	if req.Order != nil {
		edu.Order = *req.Order
	}
}

func (a *App) EducationList(c echo.Context) error {
	return listOrdered[models.Education](a, c, constants.CacheKeyEducation)
}

func (a *App) EducationCreate(c echo.Context) error {
	var req educationCreateRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid education", zap.Error(err))
		return a.er(c, statusCode)
	}

	if req.Highlights == nil {
		req.Highlights = []string{}
	}

	return saveOrdered(a, c, &models.Education{
		Degree:       req.Degree,
		Institution:  req.Institution,
		FieldOfStudy: req.FieldOfStudy,
		Location:     req.Location,
		Period:       req.Period,
		Description:  req.Description,
		Highlights:   req.Highlights,
		Order:        req.Order,
	}, http.StatusCreated, constants.CacheKeyEducation)
}

func (a *App) EducationUpdate(c echo.Context) error {
	edu, err := findForUpdate[models.Education](a, c)
	if edu == nil {
		return err
	}

	var req educationUpdateRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid education", zap.Error(err))
		return a.er(c, statusCode)
	}

	a.educationMapFields(&req, edu)

	return saveOrdered(a, c, edu, http.StatusOK, constants.CacheKeyEducation)
}

func (a *App) EducationDelete(c echo.Context) error {
	return deleteOrdered[models.Education](a, c, constants.CacheKeyEducation)
}
