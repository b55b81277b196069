package controllers

import (
	"errors"

	"ice-cream-shop/models"
	"ice-cream-shop/services"

	"github.com/gin-gonic/gin"
)

type ContactController struct {
	contact *services.ContactService
}

func NewContactController(contact *services.ContactService) *ContactController {
	return &ContactController{contact: contact}
}

// @Summary Send contact message
// @Description Mock contact form; name, email and message are required
// @Tags Contact
// @Accept json
// @Produce json
// @Param request body models.ContactRequest true "Message"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /contact [post]
func (ctrl *ContactController) Submit(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, 400, "Invalid request", err, nil)
		return
	}

	if err := ctrl.contact.Submit(req); err != nil {
		if errors.Is(err, services.ErrMissingFields) {
			respondError(c, 400, "Missing information", err, warn(
				"Missing Information",
				"Please fill in all required fields.",
			))
			return
		}
		respondError(c, 500, "Failed to send message", err, nil)
		return
	}

	respondOK(c, "Message sent", nil, notify(
		"Message Sent Successfully! 📧",
		"Thank you for contacting us. We'll get back to you within 24 hours!",
	))
}
