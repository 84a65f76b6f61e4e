package api

import (
	"net/http"
	"strconv"
	"time"

	"airsentry/internal/metrics"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"
)

const basePath = "/airsentry/api/v1"

func (a *API) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(instrument)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route(basePath, func(r chi.Router) {
		r.Post("/readings", a.IngestReading)
		r.Get("/readings", a.ListReadings)
		r.Get("/readings/averages/{device_id}", a.GetDailyAverages)
		r.Get("/readings/{device_id}", a.GetLatestReading)

		r.Get("/notifications", a.ListNotifications)
		r.Post("/notifications", a.CreateNotification)
		r.Get("/notifications/{device_id}", a.GetNotificationsToday)

		r.Get("/devices", a.ListDevices)
		r.Post("/devices", a.CreateDevice)
		r.Get("/devices/{device_id}", a.GetDevice)
		r.Put("/devices/{device_id}", a.UpdateDevice)
		r.Delete("/devices/{device_id}", a.DeleteDevice)
	})

	return cors.AllowAll().Handler(r)
}

func instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		metrics.RequestDuration.WithLabelValues(r.Method, r.URL.Path).Observe(time.Since(start).Seconds())
		metrics.HTTPRequestsTotal.WithLabelValues(r.Method, r.URL.Path, strconv.Itoa(ww.Status())).Inc()
	})
}
