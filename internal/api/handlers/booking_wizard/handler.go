package booking_wizard

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/sandboxtechnology/starliner-booking-portal/internal/api/handlers"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/domain"
	"github.com/sandboxtechnology/starliner-booking-portal/internal/wizard"
)

const (
	msgInvalidBody     = "invalid request body"
	msgMissingSlug     = "tour slug is required"
	msgTourNotFound    = "tour not found"
	msgSessionNotFound = "booking session not found or expired"
	msgStepIncomplete  = "current step is not complete"
	msgWrongStep       = "action is not allowed on the current step"
	msgDateNotBookable = "selected date is not available for booking"
	msgUnknownTimeSlot = "selected time slot is not available"
	msgNoBack          = "cannot go back from the first step"
	msgInFlight        = "submission is already in progress"
	msgFinished        = "booking session is already finished"
)

// Handler обслуживает все операции мастера бронирования.
// Состояние прохода живет на сервере: клиент держит только sessionId
// и после каждой операции получает полный снимок сессии
type Handler struct {
	factory   SessionFactory
	store     SessionStore
	submitter wizard.Submitter
	logger    Logger
}

func NewHandler(factory SessionFactory, store SessionStore, submitter wizard.Submitter, logger Logger) *Handler {
	return &Handler{
		factory:   factory,
		store:     store,
		submitter: submitter,
		logger:    logger,
	}
}

// HandleStart POST /api/wizard/sessions
func (h *Handler) HandleStart(w http.ResponseWriter, r *http.Request) {
	var req StartSessionRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if req.TourSlug == "" {
		h.logger.Warn("POST /wizard/sessions - Missing tour slug")
		handlers.RespondBadRequest(w, msgMissingSlug)
		return
	}

	machine, err := h.factory.StartSession(r.Context(), req.TourSlug)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrTourNotFound):
			h.logger.Warn("POST /wizard/sessions - Tour not found: slug=%s", req.TourSlug)
			handlers.RespondNotFound(w, msgTourNotFound)

		default:
			h.logger.Error("POST /wizard/sessions - Failed: slug=%s, error=%v", req.TourSlug, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	id := h.store.Put(machine)

	h.logger.Info("POST /wizard/sessions - Session started: session_id=%s, slug=%s", id, req.TourSlug)
	handlers.RespondSuccess(w, http.StatusCreated, toSessionResponse(id, machine))
}

// HandleGet GET /api/wizard/sessions/{id}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	id, machine, ok := h.session(w, r, "GET")
	if !ok {
		return
	}

	handlers.RespondSuccess(w, http.StatusOK, toSessionResponse(id, machine))
}

// HandleSelectSchedule POST /api/wizard/sessions/{id}/schedule
func (h *Handler) HandleSelectSchedule(w http.ResponseWriter, r *http.Request) {
	id, machine, ok := h.session(w, r, "POST")
	if !ok {
		return
	}

	var req SelectScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/schedule - Invalid request body: session_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	if err := machine.SelectSchedule(req.Date, req.Time); err != nil {
		h.respondMachineError(w, "POST /wizard/sessions/{id}/schedule", id, err)
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/schedule - Selected: session_id=%s, date=%s, time=%s",
		id, req.Date, req.Time)
	handlers.RespondSuccess(w, http.StatusOK, toSessionResponse(id, machine))
}

// HandleSetTravellers POST /api/wizard/sessions/{id}/travellers
func (h *Handler) HandleSetTravellers(w http.ResponseWriter, r *http.Request) {
	id, machine, ok := h.session(w, r, "POST")
	if !ok {
		return
	}

	var req SetTravellersRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/travellers - Invalid request body: session_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	counts := domain.TravellerCounts{
		Adults:      req.Adults,
		Children812: req.Children812,
		Children37:  req.Children37,
		Infants:     req.Infants,
	}
	if err := machine.SetTravellers(counts); err != nil {
		h.respondMachineError(w, "POST /wizard/sessions/{id}/travellers", id, err)
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/travellers - Set: session_id=%s, total=%d", id, counts.Total())
	handlers.RespondSuccess(w, http.StatusOK, toSessionResponse(id, machine))
}

// HandleSetCustomer POST /api/wizard/sessions/{id}/customer
func (h *Handler) HandleSetCustomer(w http.ResponseWriter, r *http.Request) {
	id, machine, ok := h.session(w, r, "POST")
	if !ok {
		return
	}

	var req SetCustomerRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /wizard/sessions/{id}/customer - Invalid request body: session_id=%s, error=%v", id, err)
		handlers.RespondBadRequest(w, msgInvalidBody)
		return
	}

	contact := domain.ContactDetails{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Address: req.Address,
	}
	if err := machine.SetCustomer(contact); err != nil {
		h.respondMachineError(w, "POST /wizard/sessions/{id}/customer", id, err)
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/customer - Set: session_id=%s", id)
	handlers.RespondSuccess(w, http.StatusOK, toSessionResponse(id, machine))
}

// HandleNext POST /api/wizard/sessions/{id}/next
func (h *Handler) HandleNext(w http.ResponseWriter, r *http.Request) {
	id, machine, ok := h.session(w, r, "POST")
	if !ok {
		return
	}

	if err := machine.Next(); err != nil {
		h.respondMachineError(w, "POST /wizard/sessions/{id}/next", id, err)
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/next - Advanced: session_id=%s, step=%s",
		id, machine.Snapshot().Step)
	handlers.RespondSuccess(w, http.StatusOK, toSessionResponse(id, machine))
}

// HandleBack POST /api/wizard/sessions/{id}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	id, machine, ok := h.session(w, r, "POST")
	if !ok {
		return
	}

	if err := machine.Back(); err != nil {
		h.respondMachineError(w, "POST /wizard/sessions/{id}/back", id, err)
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/back - Stepped back: session_id=%s, step=%s",
		id, machine.Snapshot().Step)
	handlers.RespondSuccess(w, http.StatusOK, toSessionResponse(id, machine))
}

// HandleSubmit POST /api/wizard/sessions/{id}/submit
// Отказ backend не является ошибкой HTTP-уровня: сессия переходит в
// failed, клиент получает снимок с lastError и может вернуться назад
func (h *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	id, machine, ok := h.session(w, r, "POST")
	if !ok {
		return
	}

	ref, err := machine.Submit(r.Context(), h.submitter)
	if err != nil {
		switch {
		case errors.Is(err, wizard.ErrSubmissionInFlight):
			h.logger.Warn("POST /wizard/sessions/{id}/submit - Already in flight: session_id=%s", id)
			handlers.RespondConflict(w, msgInFlight)
			return

		case errors.Is(err, wizard.ErrWrongStep), errors.Is(err, wizard.ErrStepIncomplete):
			h.respondMachineError(w, "POST /wizard/sessions/{id}/submit", id, err)
			return
		}

		h.logger.Warn("POST /wizard/sessions/{id}/submit - Submission failed: session_id=%s, error=%v", id, err)
		handlers.RespondSuccess(w, http.StatusOK, toSessionResponse(id, machine))
		return
	}

	h.logger.Info("POST /wizard/sessions/{id}/submit - Confirmed: session_id=%s, booking_ref=%s", id, ref)
	handlers.RespondSuccess(w, http.StatusOK, toSessionResponse(id, machine))
}

// session извлекает машину по {id}, отвечая 404 для неизвестной сессии
func (h *Handler) session(w http.ResponseWriter, r *http.Request, method string) (string, *wizard.Machine, bool) {
	id := mux.Vars(r)["id"]

	machine, err := h.store.Get(id)
	if err != nil {
		h.logger.Warn("%s /wizard/sessions/{id} - Session not found: session_id=%s", method, id)
		handlers.RespondNotFound(w, msgSessionNotFound)
		return "", nil, false
	}

	return id, machine, true
}

// respondMachineError транслирует ошибки машины состояний в HTTP-ответы
func (h *Handler) respondMachineError(w http.ResponseWriter, route, sessionID string, err error) {
	var message string
	status := http.StatusConflict

	switch {
	case errors.Is(err, wizard.ErrStepIncomplete):
		message = msgStepIncomplete
	case errors.Is(err, wizard.ErrWrongStep):
		message = msgWrongStep
	case errors.Is(err, wizard.ErrDateNotBookable):
		message = msgDateNotBookable
		status = http.StatusBadRequest
	case errors.Is(err, wizard.ErrUnknownTimeSlot):
		message = msgUnknownTimeSlot
		status = http.StatusBadRequest
	case errors.Is(err, wizard.ErrNoBackFromFirstStep):
		message = msgNoBack
	case errors.Is(err, wizard.ErrSessionFinished):
		message = msgFinished
	default:
		h.logger.Error("%s - Unexpected error: session_id=%s, error=%v", route, sessionID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Warn("%s - Rejected: session_id=%s, error=%v", route, sessionID, err)
	handlers.RespondError(w, status, message)
}
