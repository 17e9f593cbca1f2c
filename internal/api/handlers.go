package api

import (
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/curp/internal/issuer"
	"github.com/dmitrymomot/curp/internal/messages"
	"github.com/dmitrymomot/curp/pkg/curp"
	"github.com/dmitrymomot/curp/pkg/i18n"
	"github.com/dmitrymomot/curp/pkg/qrcode"
	"github.com/dmitrymomot/curp/pkg/validator"
)

// Handler serves the JSON API.
type Handler struct {
	issuer *issuer.Service
	tr     *i18n.Translator
	log    *slog.Logger
}

// IssueRequest is the body of POST /v1/curp.
type IssueRequest struct {
	GivenNames      string `json:"given_names"`
	PaternalSurname string `json:"paternal_surname"`
	MaternalSurname string `json:"maternal_surname"`
	BirthYear       string `json:"birth_year"`
	BirthMonth      string `json:"birth_month"`
	BirthDay        string `json:"birth_day"`
	Sex             string `json:"sex"`
	State           string `json:"state"`
	IncludeQR       bool   `json:"include_qr"`
}

// IssueResponse is the data of a successful POST /v1/curp.
type IssueResponse struct {
	CURP               string `json:"curp"`
	EffectiveGivenName string `json:"effective_given_name"`
	State              string `json:"state"`
	StateCode          string `json:"state_code"`
	Sex                string `json:"sex"`
	BirthDate          string `json:"birth_date"`
	QRDataURI          string `json:"qr_data_uri,omitempty"`
}

// DateRequest is the body of POST /v1/dates/validate.
type DateRequest struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Day   string `json:"day"`
}

// DateResponse is the data of POST /v1/dates/validate.
type DateResponse struct {
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// StateResponse is one entry of GET /v1/states.
type StateResponse struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

func (h *Handler) issue(w http.ResponseWriter, r *http.Request) {
	var req IssueRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, decodeStatus(err), &ErrorDetail{
			Code:    messages.KeyInvalidRequestBody,
			Message: h.tr.Tc(r.Context(), messages.KeyInvalidRequestBody),
		}, err)
		return
	}

	res, err := h.issuer.Issue(r.Context(), issuer.Request{
		GivenNames:      req.GivenNames,
		PaternalSurname: req.PaternalSurname,
		MaternalSurname: req.MaternalSurname,
		BirthYear:       req.BirthYear,
		BirthMonth:      req.BirthMonth,
		BirthDay:        req.BirthDay,
		Sex:             req.Sex,
		State:           req.State,
	})
	if err != nil {
		h.issueError(w, r, err)
		return
	}

	out := IssueResponse{
		CURP:               res.CURP,
		EffectiveGivenName: res.EffectiveGivenName,
		State:              res.State,
		StateCode:          res.StateCode,
		Sex:                res.Sex.String(),
		BirthDate:          res.BirthDate.Format("2006-01-02"),
	}
	if req.IncludeQR {
		uri, err := qrcode.GenerateBase64Image(res.CURP, qrcode.DefaultSize)
		if err != nil {
			h.failHTTP(w, r, ErrQRFailed, err)
			return
		}
		out.QRDataURI = uri
	}
	h.respond(w, out)
}

// issueError renders the failures issuer.Service.Issue documents.
func (h *Handler) issueError(w http.ResponseWriter, r *http.Request, err error) {
	lang := i18n.GetLocaleOr(r.Context(), h.tr.DefaultLanguage())

	var dateErr *issuer.DateError
	if errors.As(err, &dateErr) {
		msg := messages.DateReason(h.tr, lang, dateErr.Result)
		h.fail(w, r, http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    "date." + string(dateErr.Result.Reason),
			Message: msg,
			Details: map[string][]string{"birth_date": {msg}},
		}, err)
		return
	}

	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
		details := make(map[string][]string, len(verrs))
		for field, msg := range messages.ValidationMessages(h.tr, lang, verrs) {
			details[field] = []string{msg}
		}
		h.fail(w, r, http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    messages.KeyValidationFailed,
			Message: h.tr.T(lang, messages.KeyValidationFailed),
			Details: details,
		}, err)
		return
	}

	var fieldErr *curp.FieldError
	if errors.As(err, &fieldErr) {
		key, args := messages.ErrorKey(err)
		if key == messages.KeyEmptyField {
			args = []string{"field", messages.Field(h.tr, lang, fieldErr.Field)}
		}
		msg := h.tr.T(lang, key, args...)
		h.fail(w, r, http.StatusUnprocessableEntity, &ErrorDetail{
			Code:    key,
			Message: msg,
			Details: map[string][]string{fieldErr.Field: {msg}},
		}, err)
		return
	}

	h.failHTTP(w, r, ErrInternal, err)
}

func (h *Handler) validateDate(w http.ResponseWriter, r *http.Request) {
	var req DateRequest
	if err := decodeJSON(r, &req); err != nil {
		h.fail(w, r, decodeStatus(err), &ErrorDetail{
			Code:    messages.KeyInvalidRequestBody,
			Message: h.tr.Tc(r.Context(), messages.KeyInvalidRequestBody),
		}, err)
		return
	}

	res := h.issuer.ValidateDate(r.Context(), req.Year, req.Month, req.Day)
	lang := i18n.GetLocaleOr(r.Context(), h.tr.DefaultLanguage())
	h.respond(w, DateResponse{
		Valid:   res.Valid,
		Reason:  string(res.Reason),
		Message: messages.DateReason(h.tr, lang, res),
	})
}

func (h *Handler) states(w http.ResponseWriter, _ *http.Request) {
	names := curp.States()
	out := make([]StateResponse, 0, len(names))
	for _, name := range names {
		code, _ := curp.StateCode(name)
		out = append(out, StateResponse{Name: name, Code: code})
	}
	h.respond(w, out)
}

func (h *Handler) qr(w http.ResponseWriter, r *http.Request) {
	code, err := url.PathUnescape(chi.URLParam(r, "code"))
	if err != nil || !curp.IsWellFormed(code) {
		h.failHTTP(w, r, ErrNotWellFormed, err)
		return
	}

	size := qrcode.DefaultSize
	if raw := r.URL.Query().Get("size"); raw != "" {
		if err := validator.Apply(validator.IntRange("size", raw, 1, qrcode.MaxSize)); err != nil {
			lang := i18n.GetLocaleOr(r.Context(), h.tr.DefaultLanguage())
			msg := messages.ValidationMessages(h.tr, lang, validator.ExtractValidationErrors(err))["size"]
			h.fail(w, r, http.StatusBadRequest, &ErrorDetail{
				Code:    messages.KeyOutOfRange,
				Message: msg,
				Details: map[string][]string{"size": {msg}},
			}, err)
			return
		}
		size, _ = strconv.Atoi(strings.TrimSpace(raw))
	}

	png, err := qrcode.Generate(code, size)
	if err != nil {
		h.failHTTP(w, r, ErrQRFailed, err)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Length", strconv.Itoa(len(png)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(png)
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.failHTTP(w, r, ErrNotFound, nil)
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.failHTTP(w, r, ErrMethodNotAllowed, nil)
}
