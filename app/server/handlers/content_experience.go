package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-cms/app/server/constants"
	"portfolio-cms/app/server/models"
)

type experienceCreateRequest struct {
	Title            string   `json:"title" validate:"required"`
	Company          string   `json:"company" validate:"required"`
	Location         string   `json:"location"`
	Period           string   `json:"period" validate:"required"`
	Responsibilities []string `json:"responsibilities"`
	Order            int      `json:"order"`
}

type experienceUpdateRequest struct {
	Title            *string   `json:"title" validate:"omitempty,min=1"`
	Company          *string   `json:"company" validate:"omitempty,min=1"`
	Location         *string   `json:"location"`
	Period           *string   `json:"period" validate:"omitempty,min=1"`
	Responsibilities *[]string `json:"responsibilities"`
	Order            *int      `json:"order"`
}

func (a *App) experienceMapFields(req *experienceUpdateRequest, exp *models.Experience) {
	if req.Title != nil {
		exp.Title = *req.Title
	}
	if req.Company != nil {
		exp.Company = *req.Company
	}
	if req.Location != nil {
		exp.Location = *req.Location
	}
	if req.Period != nil {
		exp.Period = *req.Period
	}

	if req.Responsibilities != nil {
		exp.Responsibilities = *req.Responsibilities
	}

	if req.Order != nil {
		exp.Order = *req.Order
	}
}

func (a *App) ExperienceList(c echo.Context) error {
	return listOrdered[models.Experience](a, c, constants.CacheKeyExperience)
}

func (a *App) ExperienceCreate(c echo.Context) error {
	var req experienceCreateRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid experience", zap.Error(err))
		return a.er(c, statusCode)
	}

	if req.Responsibilities == nil {
		req.Responsibilities = []string{}
	}

	return saveOrdered(a, c, &models.Experience{
		Title:            req.Title,
		Company:          req.Company,
		Location:         req.Location,
		Period:           req.Period,
		Responsibilities: req.Responsibilities,
		Order:            req.Order,
	}, http.StatusCreated, constants.CacheKeyExperience)
}

func (a *App) ExperienceUpdate(c echo.Context) error {
	exp, err := findForUpdate[models.Experience](a, c)
	if exp == nil {
		return err
	}

	var req experienceUpdateRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid experience", zap.Error(err))
		return a.er(c, statusCode)
	}

	a.experienceMapFields(&req, exp)

	return saveOrdered(a, c, exp, http.StatusOK, constants.CacheKeyExperience)
}

func (a *App) ExperienceDelete(c echo.Context) error {
	return deleteOrdered[models.Experience](a, c, constants.CacheKeyExperience)
}
