package router

import (
	"github.com/makemate/agency-backend/internal/container"
	handlers "github.com/makemate/agency-backend/internal/interface/http"
	"github.com/makemate/agency-backend/internal/router/modules"
)

// InitModules builds the handlers from the container and registers their modules.
// Call once during startup, before RegisterAll.
func InitModules(r *Registry, c *container.Container) {
	r.Add(modules.NewContactModule(handlers.NewContactHandler(c.Contacts, c.Logger)))
	r.Add(modules.NewNewsletterModule(handlers.NewNewsletterHandler(c.Newsletters, c.Logger)))
	if c.Config.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule(c.Store))
	}
}
