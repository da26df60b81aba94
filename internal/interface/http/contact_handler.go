package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/makemate/agency-backend/internal/application"
	"github.com/makemate/agency-backend/internal/domain/entity"
	"github.com/makemate/agency-backend/pkg/helpers"
	"github.com/makemate/agency-backend/pkg/response"
	"github.com/makemate/agency-backend/pkg/validation"
)

type ContactHandler struct {
	Svc    *application.ContactService
	Logger logrus.FieldLogger
}

func NewContactHandler(svc *application.ContactService, logger logrus.FieldLogger) *ContactHandler {
	return &ContactHandler{Svc: svc, Logger: logger}
}

type contactRequest struct {
	Name      string `json:"name" binding:"required,min=2"`
	Email     string `json:"email" binding:"required,mailbox"`
	Company   string `json:"company"`
	Subject   string `json:"subject" binding:"required,min=2"`
	Message   string `json:"message" binding:"required,min=10"`
	Agreement bool   `json:"agreement" binding:"accepted"`
}

func (r contactRequest) toEntity() entity.NewContact {
	return entity.NewContact{
		Name:    r.Name,
		Email:   r.Email,
		Company: strings.TrimSpace(r.Company),
		Subject: r.Subject,
		Message: r.Message,
	}
}

// Submit handles POST /api/contact.
func (h *ContactHandler) Submit(c *gin.Context) {
	var req contactRequest
	if errs := validation.BindJSON(c, &req); errs != nil {
		h.Logger.WithFields(logrus.Fields{
			"request_id": c.GetString("request_id"),
			"fields":     errs.Error(),
		}).Debug("contact payload rejected")
		response.ValidationFailed(c, errs)
		return
	}

	contact, err := h.Svc.Submit(c.Request.Context(), req.toEntity(), originOf(c))
	if err != nil {
		fields := logrus.Fields{"request_id": c.GetString("request_id")}
		if contact != nil {
			fields["contact_id"] = contact.ID
		}
		helpers.LogError(h.Logger, "contact submission failed", err, fields)
		response.Error(c, http.StatusInternalServerError, "Failed to submit contact form")
		return
	}
	response.Success(c, http.StatusCreated, "Contact form submitted successfully")
}

// originOf collects the request context that is attached to notifications.
func originOf(c *gin.Context) application.Origin {
	ip := c.GetString("real_ip")
	if ip == "" {
		ip = c.ClientIP()
	}
	return application.Origin{
		RequestID: c.GetString("request_id"),
		IP:        ip,
		UserAgent: c.Request.UserAgent(),
	}
}
