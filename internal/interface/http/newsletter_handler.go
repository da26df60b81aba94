package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/makemate/agency-backend/internal/application"
	"github.com/makemate/agency-backend/pkg/helpers"
	"github.com/makemate/agency-backend/pkg/response"
	"github.com/makemate/agency-backend/pkg/validation"
)

type NewsletterHandler struct {
	Svc    *application.NewsletterService
	Logger logrus.FieldLogger
}

func NewNewsletterHandler(svc *application.NewsletterService, logger logrus.FieldLogger) *NewsletterHandler {
	return &NewsletterHandler{Svc: svc, Logger: logger}
}

type newsletterRequest struct {
	Email string `json:"email" binding:"required,mailbox"`
}

// Subscribe handles POST /api/newsletter. A repeated email answers 200 instead of 201.
func (h *NewsletterHandler) Subscribe(c *gin.Context) {
	var req newsletterRequest
	if errs := validation.BindJSON(c, &req); errs != nil {
		h.Logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"fields":     errs.Error(),
		}).Debug("newsletter payload rejected")
		response.ValidationFailed(c, errs)
		return
	}

	_, created, err := h.Svc.Subscribe(c.Request.Context(), req.Email)
	if err != nil {
		helpers.LogError(h.Logger, "newsletter subscription failed", err, logrus.Fields{"request_id": c.GetString("request_id")})
		response.Error(c, http.StatusInternalServerError, "Failed to subscribe to newsletter")
		return
	}
	if !created {
		response.Success(c, http.StatusOK, "Already subscribed to newsletter")
		return
	}
	response.Success(c, http.StatusCreated, "Successfully subscribed to newsletter")
}
