package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"airsentry/internal/db"
	"airsentry/internal/telemetry"

	"github.com/go-chi/chi/v5"
)

// pipeline is the core telemetry surface consumed by the handlers.
type pipeline interface {
	Ingest(ctx context.Context, in telemetry.ReadingInput) (telemetry.IngestResult, error)
	Latest(ctx context.Context, deviceID string) (db.Reading, error)
	NotificationsToday(ctx context.Context, deviceID string) ([]db.Notification, error)
	DailyWindow(ctx context.Context, deviceID string) ([]telemetry.WindowEntry, error)
}

// repository covers the pass-through CRUD the core does not evaluate.
type repository interface {
	ListReadings(ctx context.Context) ([]db.Reading, error)
	ListNotifications(ctx context.Context) ([]db.Notification, error)
	InsertNotification(ctx context.Context, n db.Notification) (int64, error)
	InsertDevice(ctx context.Context, d db.Device) (int64, error)
	GetDevice(ctx context.Context, deviceID string) (db.Device, error)
	ListDevices(ctx context.Context) ([]db.Device, error)
	UpdateDevice(ctx context.Context, d db.Device) error
	DeleteDevice(ctx context.Context, deviceID string) error
}

type API struct {
	Core pipeline
	DB   repository
	Loc  *time.Location
}

type Config struct {
	Core pipeline
	DB   repository
	Loc  *time.Location
}

func New(cfg Config) *API {
	loc := cfg.Loc
	if loc == nil {
		loc = time.UTC
	}
	return &API{Core: cfg.Core, DB: cfg.DB, Loc: loc}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, telemetry.ErrValidation):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, telemetry.ErrNotFound), errors.Is(err, db.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func (a *API) IngestReading(w http.ResponseWriter, r *http.Request) {
	var req IngestReadingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	result, err := a.Core.Ingest(r.Context(), telemetry.ReadingInput{
		DeviceID:    req.DeviceID,
		Air:         req.Air,
		Temperature: req.Temperature,
		Humidity:    req.Humidity,
		CO:          req.CO,
		Timestamp:   req.Timestamp,
	})
	if err != nil {
		writeError(w, err)
		return
	}

	resp := IngestReadingResponse{
		ReadingID:     strconv.FormatInt(result.ReadingID, 10),
		Notifications: result.Alerts.Emitted,
	}
	for _, f := range result.Alerts.Failed {
		resp.FailedNotifications = append(resp.FailedNotifications, f.Condition)
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (a *API) GetLatestReading(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")

	reading, err := a.Core.Latest(r.Context(), deviceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.toReadingResponse(reading))
}

func (a *API) ListReadings(w http.ResponseWriter, r *http.Request) {
	readings, err := a.DB.ListReadings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := ListReadingsResponse{Readings: make([]ReadingResponse, 0, len(readings))}
	for _, reading := range readings {
		resp.Readings = append(resp.Readings, a.toReadingResponse(reading))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) GetDailyAverages(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")

	entries, err := a.Core.DailyWindow(r.Context(), deviceID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := make([]DailyAverageEntry, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, DailyAverageEntry{
			Day:         e.Day,
			Air:         e.Air,
			Temperature: e.Temperature,
			Humidity:    e.Humidity,
			CO:          e.CO,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) GetNotificationsToday(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")

	notifications, err := a.Core.NotificationsToday(r.Context(), deviceID)
	if err != nil {
		writeError(w, err)
		return
	}

	resp := ListNotificationsResponse{Notifications: make([]NotificationResponse, 0, len(notifications))}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, a.toNotificationResponse(n))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) ListNotifications(w http.ResponseWriter, r *http.Request) {
	notifications, err := a.DB.ListNotifications(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := ListNotificationsResponse{Notifications: make([]NotificationResponse, 0, len(notifications))}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, a.toNotificationResponse(n))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) CreateNotification(w http.ResponseWriter, r *http.Request) {
	var req CreateNotificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	ts, err := time.ParseInLocation(telemetry.TimestampLayout, req.Timestamp, a.Loc)
	if err != nil {
		http.Error(w, "invalid notification timestamp", http.StatusBadRequest)
		return
	}

	id, err := a.DB.InsertNotification(r.Context(), db.Notification{
		Condition: req.Condition,
		DeviceID:  req.DeviceID,
		Timestamp: ts,
		Message:   req.Message,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateNotificationResponse{
		NotificationID: strconv.FormatInt(id, 10),
	})
}

func (a *API) CreateDevice(w http.ResponseWriter, r *http.Request) {
	var req DeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.DeviceID == "" {
		http.Error(w, "missing device_id", http.StatusBadRequest)
		return
	}

	if _, err := a.DB.InsertDevice(r.Context(), db.Device{
		DeviceID: req.DeviceID,
		Name:     req.Name,
		Location: req.Location,
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, CreateDeviceResponse{DeviceID: req.DeviceID})
}

func (a *API) GetDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")

	device, err := a.DB.GetDevice(r.Context(), deviceID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, DeviceResponse{
		ID:       strconv.FormatInt(device.ID, 10),
		DeviceID: device.DeviceID,
		Name:     device.Name,
		Location: device.Location,
	})
}

func (a *API) ListDevices(w http.ResponseWriter, r *http.Request) {
	devices, err := a.DB.ListDevices(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	resp := ListDevicesResponse{Devices: make([]DeviceResponse, 0, len(devices))}
	for _, d := range devices {
		resp.Devices = append(resp.Devices, DeviceResponse{
			ID:       strconv.FormatInt(d.ID, 10),
			DeviceID: d.DeviceID,
			Name:     d.Name,
			Location: d.Location,
		})
	}
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) UpdateDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")

	var req DeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := a.DB.UpdateDevice(r.Context(), db.Device{
		DeviceID: deviceID,
		Name:     req.Name,
		Location: req.Location,
	}); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Device updated successfully"})
}

func (a *API) DeleteDevice(w http.ResponseWriter, r *http.Request) {
	deviceID := chi.URLParam(r, "device_id")

	if err := a.DB.DeleteDevice(r.Context(), deviceID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Device deleted successfully"})
}

func (a *API) toReadingResponse(r db.Reading) ReadingResponse {
	return ReadingResponse{
		ID:          strconv.FormatInt(r.ID, 10),
		DeviceID:    r.DeviceID,
		Air:         r.Air,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		CO:          r.CO,
		Timestamp:   r.Timestamp.In(a.Loc).Format(telemetry.TimestampLayout),
	}
}

func (a *API) toNotificationResponse(n db.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        strconv.FormatInt(n.ID, 10),
		Condition: n.Condition,
		DeviceID:  n.DeviceID,
		Timestamp: n.Timestamp.In(a.Loc).Format(telemetry.TimestampLayout),
		Message:   n.Message,
	}
}
