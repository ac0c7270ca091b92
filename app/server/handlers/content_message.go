package handlers

import (
	"context"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"net/http"
	"portfolio-cms/app/server/models"
	"portfolio-cms/app/server/types"
	"time"
)

type messageCreateRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Email   string `json:"email" validate:"required,email"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (a *App) MessageList(c echo.Context) error {
	rctx := c.Request().Context()

	query := a.db.WithContext(rctx).Order("created_at DESC, id DESC")
	if status := c.QueryParam("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	messages := []models.Message{}
	if err := query.Find(&messages).Error; err != nil {
		a.l.Error("failed to list messages", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	return c.JSON(http.StatusOK, messages)
}

func (a *App) MessageCreate(c echo.Context) error {
	rctx := c.Request().Context()

	var req messageCreateRequest
	if err, statusCode := a.bindAndValidate(c, &req); err != nil {
		a.l.Debug("invalid message", zap.Error(err))
		return a.er(c, statusCode)
	}

	msg := models.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
		Status:  models.MessageStatusUnread,
	}
	if err := a.db.WithContext(rctx).Create(&msg).Error; err != nil {
		a.l.Error("failed to create message", zap.Error(err))
		return a.er(c, http.StatusInternalServerError)
	}

	// 通知在后台发送，不影响响应
	if a.mailer != nil {
		go a.notifyContact(msg)
	}

	return c.JSON(http.StatusCreated, &types.CreatedID{
		Message: "Message sent successfully",
		ID:      msg.ID,
	})
}

func (a *App) notifyContact(msg models.Message) {
	to := a.adminEmail
	if to == "" {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		var admin models.Admin
		if err := a.db.WithContext(ctx).Order("id ASC").First(&admin).Error; err != nil {
			a.l.Error("failed to find notification recipient", zap.Error(err))
			return
		}
		to = admin.Email
	}

	a.mailer.ContactMessage(to, &msg)
}

func (a *App) messageSetStatus(c echo.Context, status string, readAt *time.Time, message string) error {
	rctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	res := a.db.WithContext(rctx).Model(&models.Message{}).Where("id = ?", id).Updates(map[string]any{
		"status":  status,
		"read_at": readAt,
	})
	if res.Error != nil {
		a.l.Error("failed to update message", zap.Uint("id", id), zap.Error(res.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if res.RowsAffected == 0 {
		return a.erm(c, http.StatusNotFound, "Message not found")
	}

	return a.ok(c, message)
}

func (a *App) MessageMarkRead(c echo.Context) error {
	now := time.Now()
	return a.messageSetStatus(c, models.MessageStatusRead, &now, "Marked as read")
}

func (a *App) MessageMarkUnread(c echo.Context) error {
	return a.messageSetStatus(c, models.MessageStatusUnread, nil, "Marked as unread")
}

func (a *App) MessageDelete(c echo.Context) error {
	rctx := c.Request().Context()

	id, err := parseID(c)
	if err != nil {
		return a.er(c, http.StatusBadRequest)
	}

	res := a.db.WithContext(rctx).Delete(&models.Message{}, id)
	if res.Error != nil {
		a.l.Error("failed to delete message", zap.Uint("id", id), zap.Error(res.Error))
		return a.er(c, http.StatusInternalServerError)
	}
	if res.RowsAffected == 0 {
		return a.erm(c, http.StatusNotFound, "Message not found")
	}

	return a.ok(c, "Message deleted successfully")
}
