package handlers

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-cms/app/server/constants"
	"portfolio-cms/app/server/models"
)

type certificationCreateRequest struct {
	Name                string `json:"name" validate:"required"`
	IssuingOrganization string `json:"issuing_organization"`
	Year                string `json:"year" validate:"required"`
	CertificateURL      string `json:"certificate_url" validate:"omitempty,url"`
	Order               int    `json:"order"`
}

type certificationUpdateRequest struct {
	Name                *string `json:"name" validate:"omitempty,min=1"`
	IssuingOrganization *string `json:"issuing_organization"`
	Year                *string `json:"year" validate:"omitempty,min=1"`
	CertificateURL      *string `json:"certificate_url" validate:"omitempty,url"`
	Order               *int    `json:"order"`
}

func (a *App) CertificationList(c echo.Context) error {
	return listOrdered[models.Certification](a, c, constants.CacheKeyCertifications)
}

func (a *App) CertificationCreate(c echo.Context) error {
	var req certificationCreateRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid certification", zap.Error(err))
		return a.er(c, statusCode)
	}

	return saveOrdered(a, c, &models.Certification{
		Name:                req.Name,
		IssuingOrganization: req.IssuingOrganization,
		Year:                req.Year,
		CertificateURL:      req.CertificateURL,
		Order:               req.Order,
	}, http.StatusCreated, constants.CacheKeyCertifications)
}

func (a *App) CertificationUpdate(c echo.Context) error {
	cert, err := findForUpdate[models.Certification](a, c)
	if cert == nil {
		return err
	}

	var req certificationUpdateRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid certification", zap.Error(err))
		return a.er(c, statusCode)
	}

	if req.Name != nil {
		cert.Name = *req.Name
	}
	if req.IssuingOrganization != nil {
		cert.IssuingOrganization = *req.IssuingOrganization
	}
	if req.Year != nil {
		cert.Year = *req.Year
	}
	if req.CertificateURL != nil {
		cert.CertificateURL = *req.CertificateURL
	}
	if req.Order != nil {
		cert.Order = *req.Order
	}

	return saveOrdered(a, c, cert, http.StatusOK, constants.CacheKeyCertifications)
}

func (a *App) CertificationDelete(c echo.Context) error {
	return deleteOrdered[models.Certification](a, c, constants.CacheKeyCertifications)
}
