package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/makemate/agency-backend/internal/interface/http"
)

// ContactModule wires the public contact form endpoint.
// Public: POST /api/contact
type ContactModule struct {
	Handler *handlers.ContactHandler
}

func NewContactModule(h *handlers.ContactHandler) *ContactModule {
	return &ContactModule{Handler: h}
}

func (m *ContactModule) Register(rg *gin.RouterGroup) {
	rg.POST("/contact", m.Handler.Submit)
}
