package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/makemate/agency-backend/internal/interface/http"
)

// NewsletterModule wires the public newsletter signup endpoint.
// Public: POST /api/newsletter
type NewsletterModule struct {
	Handler *handlers.NewsletterHandler
}

func NewNewsletterModule(h *handlers.NewsletterHandler) *NewsletterModule {
	return &NewsletterModule{Handler: h}
}

func (m *NewsletterModule) Register(rg *gin.RouterGroup) {
	rg.POST("/newsletter", m.Handler.Subscribe)
}
