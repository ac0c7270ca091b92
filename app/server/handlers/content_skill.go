package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-cms/app/server/constants"
	"portfolio-cms/app/server/models"
)

type skillCreateRequest struct {
	Name     string `json:"name" validate:"required"`
	Category string `json:"category" validate:"required"`
	Order    int    `json:"order"`
}

type skillUpdateRequest struct {
	Name     *string `json:"name" validate:"omitempty,min=1"`
	Category *string `json:"category" validate:"omitempty,min=1"`
	Order    *int    `json:"order"`
}

func (a *App) SkillList(c echo.Context) error {
	return listOrdered[models.Skill](a, c, constants.CacheKeySkills)
}

func (a *App) SkillCreate(c echo.Context) error {
	var req skillCreateRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid skill", zap.Error(err))
		return a.er(c, statusCode)
	}

	return saveOrdered(a, c, &models.Skill{
		Name:     req.Name,
		Category: req.Category,
		Order:    req.Order,
	}, http.StatusCreated, constants.CacheKeySkills)
}

func (a *App) SkillUpdate(c echo.Context) error {
	skill, err := findForUpdate[models.Skill](a, c)
	if skill == nil {
		return err
	}

	var req skillUpdateRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid skill", zap.Error(err))
		return a.er(c, statusCode)
	}

	if req.Name != nil {
		skill.Name = *req.Name
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Order != nil {
		skill.Order = *req.Order
	}

	return saveOrdered(a, c, skill, http.StatusOK, constants.CacheKeySkills)
}

func (a *App) SkillDelete(c echo.Context) error {
	return deleteOrdered[models.Skill](a, c, constants.CacheKeySkills)
}
