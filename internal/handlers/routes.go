package handlers

import (
	"github.com/dynamolab/dl-course-site/internal/basepath"
	"github.com/go-chi/chi/v5"
)

// RouteRegistrar is implemented by every handler of the site
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// MountSite registers the handlers at the root and, when a base path is configured, again under it.
// Exported pages carry base-prefixed links, so both forms resolve behind a proxy that does or doesn't strip the prefix.
func MountSite(r chi.Router, base basepath.BasePath, registrars ...RouteRegistrar) {
	mount := func(r chi.Router) {
		for _, registrar := range registrars {
			registrar.RegisterRoutes(r)
		}
	}

	if base.String() != "" {
		r.Route(base.String(), mount)
	}
	mount(r)
}
