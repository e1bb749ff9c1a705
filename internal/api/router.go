package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/samandr77/microservices/mro/docs" //nolint:revive,nolintlint
	"github.com/samandr77/microservices/mro/internal/entity"
)

func NewRouter(h *Handler, mw *Middleware) http.Handler {
	router := chi.NewRouter()

	router.Use(mw.Log, mw.Recover, mw.Cors, mw.WithIP, mw.Metrics)

	router.Handle("/metrics", promhttp.Handler())

	router.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Get("/health", h.Health)
			r.Get("/swagger/*", httpSwagger.WrapHandler)
			r.Post("/auth/login", h.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(mw.Auth)

			r.Get("/me", h.Me)
			r.Get("/users", h.CompanyUsers)
			r.Get("/permissions/me", h.MyPermissions)
			r.Get("/users/{id}/permissions", h.UserPermissions)
			r.Put("/users/{id}/permissions", h.UpdateUserPermissions)

			r.Route("/flight-records", func(r chi.Router) {
				r.Get("/", h.ListFlightRecords)
				r.Post("/", h.CreateFlightRecord)
				r.Get("/{id}", h.GetFlightRecord)
				r.Put("/{id}", h.UpdateFlightRecord)
				r.Delete("/{id}", h.DeleteFlightRecord)
				r.Get("/{id}/attachments", h.ListAttachments(entity.ResourceFlightRecord))
			})

			r.Route("/technical-publications", func(r chi.Router) {
				r.Get("/", h.ListTechPublications)
				r.Post("/", h.CreateTechPublication)
				r.Get("/{id}", h.GetTechPublication)
				r.Put("/{id}", h.UpdateTechPublication)
				r.Delete("/{id}", h.DeleteTechPublication)
				r.Get("/{id}/revisions", h.ListRevisions)
				r.Get("/{id}/attachments", h.ListAttachments(entity.ResourceTechPublication))
			})

			r.Route("/sms-reports", func(r chi.Router) {
				r.Get("/", h.ListSMSReports)
				r.Post("/", h.CreateSMSReport)
				r.Get("/{id}", h.GetSMSReport)
				r.Put("/{id}", h.UpdateSMSReport)
				r.Delete("/{id}", h.DeleteSMSReport)
				r.Get("/{id}/attachments", h.ListAttachments(entity.ResourceSMSReport))
			})

			r.Route("/audits", func(r chi.Router) {
				r.Get("/", h.ListAudits)
				r.Post("/", h.CreateAudit)
				r.Get("/{id}", h.GetAudit)
				r.Put("/{id}", h.UpdateAudit)
				r.Delete("/{id}", h.DeleteAudit)
			})

			r.Route("/findings", func(r chi.Router) {
				r.Get("/", h.ListFindings)
				r.Post("/", h.CreateFinding)
				r.Get("/{id}", h.GetFinding)
				r.Put("/{id}", h.UpdateFinding)
				r.Delete("/{id}", h.DeleteFinding)
			})

			r.Route("/corrective-actions", func(r chi.Router) {
				r.Get("/", h.ListCorrectiveActions)
				r.Post("/", h.CreateCorrectiveAction)
				r.Get("/{id}", h.GetCorrectiveAction)
				r.Put("/{id}", h.UpdateCorrectiveAction)
				r.Delete("/{id}", h.DeleteCorrectiveAction)
				r.Get("/{id}/attachments", h.ListAttachments(entity.ResourceCorrectiveAction))
			})

			r.Route("/stock", func(r chi.Router) {
				r.Get("/", h.ListStockItems)
				r.Post("/", h.CreateStockItem)
				r.Get("/{id}", h.GetStockItem)
				r.Put("/{id}", h.UpdateStockItem)
				r.Delete("/{id}", h.DeleteStockItem)
			})

			r.Get("/attachments/{id}/download", h.DownloadAttachment)

			r.Get("/analytics/dashboard", h.Dashboard)
			r.Get("/analytics/corrective-actions", h.CorrectiveActionAnalytics)
			r.Get("/reports/{kind}", h.ExportReport)
			r.Get("/activity", h.ListActivity)
			r.Get("/weather", h.CurrentWeather)
		})
	})

	return router
}
