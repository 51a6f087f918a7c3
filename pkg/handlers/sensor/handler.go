package sensor

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/aq-tools/air-atlas/pkg/models/api"
	"github.com/aq-tools/air-atlas/pkg/services/sensor"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

const (
	defaultMetric = "pm2_5_atm"
	defaultHours  = 24
)

type Handler struct {
	sensors sensor.ManagementService
}

func NewHandler(sensors sensor.ManagementService) *Handler {
	return &Handler{sensors: sensors}
}

func (h *Handler) ListSensors(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	profiles, err := h.sensors.ListSensors(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to list sensors")
		writeError(w, http.StatusInternalServerError, "failed to list sensors")
		return
	}

	response := make([]api.Sensor, 0, len(profiles))
	for _, p := range profiles {
		response = append(response, api.FromDomainProfile(p))
	}
	writeJSON(ctx, w, response)
}

func (h *Handler) GetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "sensor")
	metric, hours, err := queryParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	report, err := h.sensors.GetReport(ctx, name, metric, hours)
	if err != nil {
		logger.Error().Err(err).Str("sensor", name).Msg("failed to build report")
		writeError(w, http.StatusInternalServerError, "failed to build report")
		return
	}

	writeJSON(ctx, w, api.FromDomainReport(report))
}

func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "sensor")
	metric, hours, err := queryParams(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	events, err := h.sensors.GetEvents(ctx, name, metric, hours)
	if err != nil {
		logger.Error().Err(err).Str("sensor", name).Msg("failed to detect events")
		writeError(w, http.StatusInternalServerError, "failed to detect events")
		return
	}

	writeJSON(ctx, w, api.FromDomainEvents(events))
}

func (h *Handler) GetAlerts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)
	name := chi.URLParam(r, "sensor")
	metric := r.URL.Query().Get("metric")
	if metric == "" {
		metric = defaultMetric
	}

	alerts, err := h.sensors.GetAlerts(ctx, name, metric)
	if err != nil {
		logger.Error().Err(err).Str("sensor", name).Msg("failed to check alerts")
		writeError(w, http.StatusInternalServerError, "failed to check alerts")
		return
	}

	writeJSON(ctx, w, api.FromDomainAlerts(alerts))
}

func queryParams(r *http.Request) (metric string, hours int, err error) {
	metric = r.URL.Query().Get("metric")
	if metric == "" {
		metric = defaultMetric
	}
	hours = defaultHours
	if raw := r.URL.Query().Get("hours"); raw != "" {
		hours, err = strconv.Atoi(raw)
		if err != nil || hours < 0 {
			return "", 0, fmt.Errorf("invalid value %q for hours", raw)
		}
	}
	return metric, hours, nil
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// The response is already committed; nothing left but to log.
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
