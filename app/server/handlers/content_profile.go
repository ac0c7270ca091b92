package handlers

import (
	"errors"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"portfolio-cms/app/server/constants"
	"portfolio-cms/app/server/models"
	"portfolio-cms/app/server/types"
	"portfolio-cms/app/server/uploads"
)

type profileUpdateRequest struct {
	Name     *string `json:"name"`
	Title    *string `json:"title"`
	Headline *string `json:"headline"`
	About    *string `json:"about"`
	Email    *string `json:"email" validate:"omitempty,email"`
	Phone    *string `json:"phone"`
	Location *string `json:"location"`
	LinkedIn *string `json:"linkedin"`
	GitHub   *string `json:"github"`
}

func (a *App) profileMapFields(req *profileUpdateRequest, profile *models.Profile) {
	if req.Name != nil {
		profile.Name = *req.Name
	}
	if req.Title != nil {
		profile.Title = *req.Title
	}
	if req.Headline != nil {
		profile.Headline = *req.Headline
	}
	if req.About != nil {
		profile.About = *req.About
	}

	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Location != nil {
		profile.Location = *req.Location
	}

	if req.LinkedIn != nil {
		profile.LinkedIn = *req.LinkedIn
	}
	if req.GitHub != nil {
		profile.GitHub = *req.GitHub
	}
}

// loadProfile 找不到时返回一个空的新记录，Save 时会被创建
func (a *App) loadProfile(c echo.Context) (*models.Profile, error) {
	var profile models.Profile
	if err := a.db.WithContext(c.Request().Context()).Order("id ASC").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.Profile{}, nil
		}
		return nil, err
	}
	return &profile, nil
}

func (a *App) ProfileGet(c echo.Context) error {
	rctx := c.Request().Context()

	var profile models.Profile
	if a.cacheGet(rctx, constants.CacheKeyProfile, &profile) {
		return c.JSON(http.StatusOK, &profile)
	}

	if err := a.db.WithContext(rctx).Order("id ASC").First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return a.erm(c, http.StatusNotFound, "Profile not found")
		}

		a.l.Error("failed to get profile", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.cacheSet(rctx, constants.CacheKeyProfile, &profile)

	return c.JSON(http.StatusOK, &profile)
}

func (a *App) ProfileUpdate(c echo.Context) error {
	rctx := c.Request().Context()

	var req profileUpdateRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid profile", zap.Error(err))
		return a.er(c, statusCode)
	}

	profile, err := a.loadProfile(c)
	if err != nil {
		a.l.Error("failed to get profile", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.profileMapFields(&req, profile)

	if err = a.db.WithContext(rctx).Save(profile).Error; err != nil {
		a.l.Error("failed to save profile", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.cacheClear(rctx, constants.CacheKeyProfile)

	return c.JSON(http.StatusOK, profile)
}

// profileUpload 替换头像或简历，旧文件在新文件保存成功之后删除
func (a *App) profileUpload(c echo.Context, kind uploads.Kind, field func(*models.Profile) *string, message string) error {
	rctx := c.Request().Context()

	fh, err := c.FormFile("file")
	if err != nil {
		a.l.Debug("missing upload file", zap.Error(err))
		return a.erm(c, http.StatusBadRequest, "File is required")
	}

	profile, err := a.loadProfile(c)
	if err != nil {
		a.l.Error("failed to get profile", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	url, err := a.uploads.Save(fh, kind)
	if err != nil {
		return a.uploadError(c, err)
	}

	target := field(profile)
	previous := *target
	*target = url

	if err = a.db.WithContext(rctx).Save(profile).Error; err != nil {
		a.l.Error("failed to save profile", zap.Error(err))
		a.removeUpload(url)
		return a.er(c, http.StatusInternalServerError)
	}

	a.removeUpload(previous)
	a.cacheClear(rctx, constants.CacheKeyProfile)

	return c.JSON(http.StatusOK, &types.UploadResult{
		Message: message,
		URL:     url,
	})
}

func (a *App) ProfilePhotoUpload(c echo.Context) error {
	return a.profileUpload(c, uploads.KindImage, func(p *models.Profile) *string {
		return &p.ProfilePhoto
	}, "Profile photo uploaded")
}

func (a *App) ProfileResumeUpload(c echo.Context) error {
	return a.profileUpload(c, uploads.KindDocument, func(p *models.Profile) *string {
		return &p.ResumeURL
	}, "Resume uploaded")
}
