// Package handler публикует инструменты и глобальные правила по HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"sync"

	"github.com/cloud-ru/mcp-wealth-go/internal/metrics"
	"github.com/cloud-ru/mcp-wealth-go/internal/models"
	"github.com/cloud-ru/mcp-wealth-go/internal/rules"
	"github.com/cloud-ru/mcp-wealth-go/internal/store"
	"github.com/cloud-ru/mcp-wealth-go/internal/tools"
	"github.com/cloud-ru/mcp-wealth-go/internal/validators"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

// maxBodyBytes ограничивает размер тела запроса
const maxBodyBytes = 1 << 20

type Handler struct {
	tools   map[string]tools.ToolHandler
	rules   *rules.Store
	backend store.Backend
	log     *logrus.Logger

	// persistMu сериализует изменение правил вместе с их записью в хранилище
	persistMu sync.Mutex
}

func NewHandler(registry map[string]tools.ToolHandler, rs *rules.Store, backend store.Backend, log *logrus.Logger) *Handler {
	return &Handler{tools: registry, rules: rs, backend: backend, log: log}
}

// Router регистрирует все маршруты сервера
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/healthz", h.Health).Methods("GET")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")

	r.HandleFunc("/tools", h.ListTools).Methods("GET")
	r.HandleFunc("/tools/{name}", h.CallTool).Methods("POST")

	r.HandleFunc("/rules", h.ListRules).Methods("GET")
	r.HandleFunc("/rules", h.UpsertRule).Methods("POST")
	r.HandleFunc("/rules/{id}", h.DeleteRule).Methods("DELETE")
	r.HandleFunc("/rules/{id}/active", h.SetRuleActive).Methods("PUT")
	return r
}

// Health сообщает, что сервер запущен
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ListTools возвращает имена доступных инструментов
func (h *Handler) ListTools(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{"tools": tools.Names(h.tools)})
}

// CallTool выполняет инструмент с параметрами из JSON тела
func (h *Handler) CallTool(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	tool, ok := h.tools[name]
	if !ok {
		h.fail(w, "unknown", http.StatusNotFound, errors.New("unknown tool "+name))
		return
	}

	params := map[string]interface{}{}
	if err := decodeBody(r, &params); err != nil {
		h.fail(w, name, http.StatusBadRequest, err)
		return
	}

	result, err := tool(r.Context(), params)
	if err != nil {
		h.fail(w, name, statusFor(err), err)
		return
	}

	metrics.HTTPRequests.WithLabelValues(name, strconv.Itoa(http.StatusOK)).Inc()
	writeJSON(w, http.StatusOK, map[string]interface{}{"result": result})
}

// ListRules возвращает глобальные правила в порядке добавления
func (h *Handler) ListRules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"rules": h.rules.List(),
		"rates": h.rules.Snapshot(),
	})
}

// UpsertRule добавляет или заменяет правило
func (h *Handler) UpsertRule(w http.ResponseWriter, r *http.Request) {
	var rule models.GlobalRule
	if err := decodeBody(r, &rule); err != nil {
		h.fail(w, "rules", http.StatusBadRequest, err)
		return
	}

	var saved models.GlobalRule
	err := h.mutateRules(r.Context(), func() (err error) {
		saved, err = h.rules.Upsert(rule)
		return err
	})
	if err != nil {
		h.fail(w, "rules", statusFor(err), err)
		return
	}

	h.log.WithFields(logrus.Fields{"rule": saved.ID, "type": saved.Kind, "value": saved.Value}).Info("rule saved")
	writeJSON(w, http.StatusOK, saved)
}

// DeleteRule удаляет правило
func (h *Handler) DeleteRule(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	err := h.mutateRules(r.Context(), func() error {
		if !h.rules.Delete(id) {
			return rules.ErrRuleNotFound
		}
		return nil
	})
	if err != nil {
		h.fail(w, "rules", statusFor(err), err)
		return
	}

	h.log.WithField("rule", id).Info("rule deleted")
	w.WriteHeader(http.StatusNoContent)
}

// SetRuleActive включает или выключает правило
func (h *Handler) SetRuleActive(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var body struct {
		Active *bool `json:"active"`
	}
	if err := decodeBody(r, &body); err != nil {
		h.fail(w, "rules", http.StatusBadRequest, err)
		return
	}
	if body.Active == nil {
		err := &validators.InvalidInputError{Field: "active", Reason: "обязательное поле"}
		h.fail(w, "rules", statusFor(err), err)
		return
	}

	err := h.mutateRules(r.Context(), func() error {
		return h.rules.SetActive(id, *body.Active)
	})
	if err != nil {
		h.fail(w, "rules", statusFor(err), err)
		return
	}

	rule, _ := h.rules.Get(id)
	writeJSON(w, http.StatusOK, rule)
}

// mutateRules применяет изменение и записывает правила в хранилище.
// Если запись не удалась, набор правил в памяти возвращается к прежнему.
func (h *Handler) mutateRules(ctx context.Context, mutate func() error) error {
	h.persistMu.Lock()
	defer h.persistMu.Unlock()

	prev := h.rules.List()
	if err := mutate(); err != nil {
		return err
	}
	if err := h.persistRules(ctx); err != nil {
		h.rules.Replace(prev)
		return fmt.Errorf("persist rules: %w", err)
	}
	return nil
}

// persistRules записывает текущие правила в хранилище, не трогая остальные данные
func (h *Handler) persistRules(ctx context.Context) error {
	snap, err := h.backend.Load(ctx)
	if err != nil {
		return err
	}
	snap.Rules = h.rules.List()
	return h.backend.Save(ctx, snap)
}

func (h *Handler) fail(w http.ResponseWriter, name string, status int, err error) {
	metrics.HTTPRequests.WithLabelValues(name, strconv.Itoa(status)).Inc()

	entry := h.log.WithError(err).WithFields(logrus.Fields{"tool": name, "status": status})
	if status >= http.StatusInternalServerError {
		entry.Error("request failed")
	} else {
		entry.Debug("request rejected")
	}
	writeJSON(w, status, map[string]string{"error": err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, validators.ErrInvalidInput):
		return http.StatusBadRequest
	case errors.Is(err, rules.ErrRuleNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

func decodeBody(r *http.Request, v interface{}) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes)).Decode(v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
