package controllers

import (
	"ice-cream-shop/models"

	"github.com/gin-gonic/gin"
)

func respondOK(c *gin.Context, message string, data interface{}, note *models.Notification) {
	c.JSON(200, models.Response{
		Success:      true,
		Message:      message,
		Data:         data,
		Notification: note,
	})
}

func respondError(c *gin.Context, status int, message string, err error, note *models.Notification) {
	resp := models.ErrorResponse{
		Success:      false,
		Message:      message,
		Notification: note,
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(status, resp)
}

func notify(title, description string) *models.Notification {
	return &models.Notification{Title: title, Description: description}
}

func warn(title, description string) *models.Notification {
	return &models.Notification{Title: title, Description: description, Variant: models.VariantDestructive}
}
