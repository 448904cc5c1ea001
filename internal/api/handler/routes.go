package handler

import (
	"net/http"

	"github.com/betenlace/partners-cpa-api/internal/api/handler/router"
	"github.com/betenlace/partners-cpa-api/internal/usecases/authenticating"
	"github.com/betenlace/partners-cpa-api/internal/usecases/clicking"
	"github.com/betenlace/partners-cpa-api/internal/usecases/cpaposting"
	"github.com/betenlace/partners-cpa-api/internal/usecases/linking"
	"github.com/betenlace/partners-cpa-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:        "/v1/me",
			Method:      http.MethodGet,
			Handler:     GetMe(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Cpas(service cpaposting.Poster) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cpas",
			Method:      http.MethodPut,
			Handler:     UpdateCpas(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOrAdviser()},
		},
	}
}

func Clicks(service clicking.Lister) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/links/:id/clicks",
			Method:      http.MethodGet,
			Handler:     GetLinkClicks(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func Links(service linking.Manager) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/links",
			Method:      http.MethodPost,
			Handler:     CreateLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/links/:id/assign",
			Method:      http.MethodPost,
			Handler:     AssignLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/links/:id/detach",
			Method:      http.MethodPost,
			Handler:     DetachLink(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/campaigns/:id/status",
			Method:      http.MethodPut,
			Handler:     SetCampaignStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/:type/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
