package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"net/http"
	"portfolio-cms/app/server/constants"
	"portfolio-cms/app/server/models"
	"portfolio-cms/app/server/uploads"
	"strconv"
	"strings"
)

type projectCreateRequest struct {
	Title            string   `json:"title" validate:"required"`
	ProblemStatement string   `json:"problem_statement"`
	Description      string   `json:"description" validate:"required"`
	Technologies     []string `json:"technologies"`
	Role             string   `json:"role"`
	Outcome          string   `json:"outcome"`
	ImageURL         string   `json:"image_url"`
	ProjectURL       string   `json:"project_url" validate:"omitempty,url"`
	GitHubURL        string   `json:"github_url" validate:"omitempty,url"`
	Status           string   `json:"status"`
	Visible          *bool    `json:"visible"`
	Order            int      `json:"order"`
}

type projectUpdateRequest struct {
	Title            *string   `json:"title" validate:"omitempty,min=1"`
	ProblemStatement *string   `json:"problem_statement"`
	Description      *string   `json:"description" validate:"omitempty,min=1"`
	Technologies     *[]string `json:"technologies"`
	Role             *string   `json:"role"`
	Outcome          *string   `json:"outcome"`
	ImageURL         *string   `json:"image_url"`
	ProjectURL       *string   `json:"project_url" validate:"omitempty,url"`
	GitHubURL        *string   `json:"github_url" validate:"omitempty,url"`
	Status           *string   `json:"status"`
	Visible          *bool     `json:"visible"`
	Order            *int      `json:"order"`
}

type projectVisibilityRequest struct {
	Visible *bool `json:"visible" validate:"required"`
}

func (a *App) projectMapFields(req *projectUpdateRequest, project *models.Project) {
	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.ProblemStatement != nil {
		project.ProblemStatement = *req.ProblemStatement
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.Technologies != nil {
		project.Technologies = *req.Technologies
	}
	if req.Role != nil {
		project.Role = *req.Role
	}
	if req.Outcome != nil {
		project.Outcome = *req.Outcome
	}

	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.ProjectURL != nil {
		project.ProjectURL = *req.ProjectURL
	}
	if req.GitHubURL != nil {
		project.GitHubURL = *req.GitHubURL
	}

	if req.Status != nil {
		project.Status = *req.Status
	}
	if req.Visible != nil {
		project.Visible = *req.Visible
	}
	if req.Order != nil {
		project.Order = *req.Order
	}
}

// bindProjectForm 读取 multipart 表单，technologies 是 JSON 数组字符串
func bindProjectForm(c echo.Context, req *projectCreateRequest) error {
	req.Title = c.FormValue("title")
	req.ProblemStatement = c.FormValue("problem_statement")
	req.Description = c.FormValue("description")
	req.Role = c.FormValue("role")
	req.Outcome = c.FormValue("outcome")
	req.ImageURL = c.FormValue("image_url")
	req.ProjectURL = c.FormValue("project_url")
	req.GitHubURL = c.FormValue("github_url")
	req.Status = c.FormValue("status")

	if technologies := c.FormValue("technologies"); technologies != "" {
		if err := json.Unmarshal([]byte(technologies), &req.Technologies); err != nil {
			return fmt.Errorf("parse technologies: %w", err)
		}
	}

	if visible := c.FormValue("visible"); visible != "" {
		v, err := strconv.ParseBool(visible)
		if err != nil {
			return fmt.Errorf("parse visible: %w", err)
		}
		req.Visible = &v
	}

	if order := c.FormValue("order"); order != "" {
		v, err := strconv.Atoi(order)
		if err != nil {
			return fmt.Errorf("parse order: %w", err)
		}
		req.Order = v
	}

	return nil
}

func isFormRequest(c echo.Context) bool {
	ctype := c.Request().Header.Get(echo.HeaderContentType)
	return strings.HasPrefix(ctype, echo.MIMEMultipartForm) || strings.HasPrefix(ctype, echo.MIMEApplicationForm)
}

func (a *App) ProjectList(c echo.Context) error {
	rctx := c.Request().Context()

	// 只有 visible=true 时过滤，其他值都返回全部
	visibleOnly, _ := strconv.ParseBool(c.QueryParam("visible"))

	scope := "all"
	if visibleOnly {
		scope = "visible"
	}
	cacheKey := fmt.Sprintf(constants.CacheKeyProjects, scope)

	projects := []models.Project{}
	if a.cacheGet(rctx, cacheKey, &projects) {
		return c.JSON(http.StatusOK, projects)
	}

	query := a.db.WithContext(rctx).Order("sort_order ASC, id ASC")
	if visibleOnly {
		query = query.Where("visible = ?", true)
	}
	if err := query.Find(&projects).Error; err != nil {
		a.l.Error("failed to list projects", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.cacheSet(rctx, cacheKey, projects)

	return c.JSON(http.StatusOK, projects)
}

func (a *App) projectFind(c echo.Context) (*models.Project, error) {
	id, err := parseID(c)
	if err != nil {
		return nil, a.er(c, http.StatusBadRequest)
	}

	var project models.Project
	if err = a.db.WithContext(c.Request().Context()).First(&project, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, a.erm(c, http.StatusNotFound, "Project not found")
		}

		a.l.Error("failed to get project", zap.Uint("id", id), zap.Error(err))
		return nil, a.er(c, http.StatusInternalServerError)
	}

	return &project, nil
}

func (a *App) ProjectGet(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	var project models.Project
	cacheKey := fmt.Sprintf(constants.CacheKeyProject, id)
	if a.cacheGet(rctx, cacheKey, &project) {
		return c.JSON(http.StatusOK, &project)
	}

	found, err := a.projectFind(c)
	if found == nil {
		return err
	}

	a.cacheSet(rctx, cacheKey, found)

	return c.JSON(http.StatusOK, found)
}

func (a *App) ProjectCreate(c echo.Context) error {
	rctx := c.Request().Context()

	var req projectCreateRequest
	if isFormRequest(c) {
		if err := bindProjectForm(c, &req); err != nil {
			a.l.Debug("invalid project form", zap.Error(err))
			return a.erm(c, http.StatusBadRequest, err.Error())
		}
		if err := c.Validate(&req); err != nil {
			a.l.Debug("invalid project", zap.Error(err))
			return a.er(c, http.StatusBadRequest)
		}
	} else if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid project", zap.Error(err))
		return a.er(c, statusCode)
	}

	project := models.Project{
		Title:            req.Title,
		ProblemStatement: req.ProblemStatement,
		Description:      req.Description,
		Technologies:     req.Technologies,
		Role:             req.Role,
		Outcome:          req.Outcome,
		ImageURL:         req.ImageURL,
		ProjectURL:       req.ProjectURL,
		GitHubURL:        req.GitHubURL,
		Status:           req.Status,
		Visible:          true,
		Order:            req.Order,
	}
	if project.Technologies == nil {
		project.Technologies = []string{}
	}
	if project.Status == "" {
		project.Status = models.ProjectStatusCompleted
	}
	if req.Visible != nil {
		project.Visible = *req.Visible
	}

	// 上传的图片优先于 image_url
	if isFormRequest(c) {
		if fh, err := c.FormFile("image"); err == nil {
			url, err := a.uploads.Save(fh, uploads.KindImage)
			if err != nil {
				return a.uploadError(c, err)
			}
			project.ImageURL = url
		} else if !errors.Is(err, http.ErrMissingFile) {
			a.l.Debug("failed to read image", zap.Error(err))
			return a.er(c, http.StatusBadRequest)
		}
	}

	if err := a.db.WithContext(rctx).Create(&project).Error; err != nil {
		a.l.Error("failed to create project", zap.Error(err))
		if project.ImageURL != req.ImageURL {
			a.removeUpload(project.ImageURL)
		}
		return a.er(c, http.StatusInternalServerError)
	}

	a.cacheClear(rctx, projectCacheKeys(project.ID)...)

	return c.JSON(http.StatusCreated, &project)
}

func (a *App) ProjectUpdate(c echo.Context) error {
	rctx := c.Request().Context()

	project, err := a.projectFind(c)
	if project == nil {
		return err
	}

	var req projectUpdateRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid project", zap.Error(err))
		return a.er(c, statusCode)
	}

	previousImage := project.ImageURL
	a.projectMapFields(&req, project)

	if err = a.db.WithContext(rctx).Save(project).Error; err != nil {
		a.l.Error("failed to update project", zap.Uint("id", project.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	if project.ImageURL != previousImage {
		a.removeUpload(previousImage)
	}
	a.cacheClear(rctx, projectCacheKeys(project.ID)...)

	return c.JSON(http.StatusOK, project)
}

func (a *App) ProjectVisibilityUpdate(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	// 可以放在 query 里，也可以放在 JSON body 里
	var req projectVisibilityRequest
	if v := c.QueryParam("visible"); v != "" {
		visible, err := strconv.ParseBool(v)
		if err != nil {
			return a.er(c, http.StatusBadRequest)
		}
		req.Visible = &visible
	} else if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid visibility", zap.Error(err))
		return a.er(c, statusCode)
	}

	res := a.db.WithContext(rctx).Model(&models.Project{}).Where("id = ?", id).Update("visible", *req.Visible)
	if res.Error != nil {
		a.l.Error("failed to update visibility", zap.Uint("id", id), zap.Error(res.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if res.RowsAffected == 0 {
		return a.erm(c, http.StatusNotFound, "Project not found")
	}

	a.cacheClear(rctx, projectCacheKeys(id)...)

	return a.ok(c, "Visibility updated successfully")
}

func (a *App) ProjectDelete(c echo.Context) error {
	rctx := c.Request().Context()

	project, err := a.projectFind(c)
	if project == nil {
		return err
	}

	if err = a.db.WithContext(rctx).Delete(project).Error; err != nil {
		a.l.Error("failed to delete project", zap.Uint("id", project.ID), zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	a.removeUpload(project.ImageURL)
	a.cacheClear(rctx, projectCacheKeys(project.ID)...)

	return a.ok(c, "Project deleted successfully")
}
