package comparisonhandler

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"hirecost/internal/domain/comparison"
	"hirecost/internal/domain/reports"
	"hirecost/internal/platform/format"
	"hirecost/internal/platform/metrics"
	"hirecost/internal/transport/http/api"
	"hirecost/internal/transport/http/middleware"
	"hirecost/internal/transport/http/shared"
)

var grossRangeReason = "must not exceed " + comparison.MaxGross.String() +
	" nor carry more than " + strconv.Itoa(comparison.MaxGrossScale) + " decimal places"

type Handler struct {
	DefaultRate int
	Metrics     *metrics.Collector
}

func NewHandler(defaultRate int, collector *metrics.Collector) *Handler {
	return &Handler{DefaultRate: defaultRate, Metrics: collector}
}

// comparisonPayload accepts either a decimal grossValue or the raw text of a
// masked currency field in maskedValue.
type comparisonPayload struct {
	GrossValue     *decimal.Decimal `json:"grossValue"`
	MaskedValue    *string          `json:"maskedValue"`
	ContractorRate *int             `json:"contractorRate"`
}

type bracketsResponse struct {
	SocialSecurity comparison.BracketTable `json:"socialSecurity"`
	IncomeTax      comparison.BracketTable `json:"incomeTax"`
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/comparisons", func(r chi.Router) {
		r.Post("/", h.handleCompare)
		r.Get("/", h.handleCompareQuery)
		r.Get("/export.pdf", h.handleExportPDF)
		r.Get("/export.csv", h.handleExportCSV)
	})
	r.Get("/brackets", h.handleBrackets)
}

func (h *Handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())

	var payload comparisonPayload
	if err := api.Decode(r, &payload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			api.Fail(w, http.StatusRequestEntityTooLarge, "payload_too_large", "request payload too large", requestID)
			return
		}
		api.Fail(w, http.StatusBadRequest, "invalid_payload", "invalid request payload", requestID)
		return
	}

	v := shared.NewValidator()
	in := comparison.Input{ContractorRate: h.DefaultRate}
	switch {
	case payload.GrossValue != nil:
		in.Gross = *payload.GrossValue
	case payload.MaskedValue != nil:
		in.Gross = format.ParseMasked(*payload.MaskedValue)
	default:
		v.Add("grossValue", "is required")
	}
	if payload.ContractorRate != nil {
		in.ContractorRate = *payload.ContractorRate
	}
	h.validateFields(v, in, "grossValue", "contractorRate")
	if v.Reject(w, requestID) {
		return
	}
	h.respond(w, in, requestID)
}

func (h *Handler) handleCompareQuery(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.GetRequestID(r.Context())
	in, ok := h.parseQuery(w, r)
	if !ok {
		return
	}
	h.respond(w, in, requestID)
}

func (h *Handler) respond(w http.ResponseWriter, in comparison.Input, requestID string) {
	res, err := comparison.Calculate(in)
	if err != nil {
		h.failDomain(w, err, requestID)
		return
	}
	h.Metrics.RecordComparison(false)
	api.Success(w, res, requestID)
}

func (h *Handler) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "application/pdf", "pdf", func(buf *bytes.Buffer, res comparison.Result) error {
		return reports.WritePDF(buf, res.Input, res.Groups)
	})
}

func (h *Handler) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	h.export(w, r, "text/csv; charset=utf-8", "csv", func(buf *bytes.Buffer, res comparison.Result) error {
		return reports.WriteCSV(buf, res.Groups)
	})
}

func (h *Handler) export(w http.ResponseWriter, r *http.Request, contentType, ext string, render func(*bytes.Buffer, comparison.Result) error) {
	requestID := middleware.GetRequestID(r.Context())
	in, ok := h.parseQuery(w, r)
	if !ok {
		return
	}
	res, err := comparison.Calculate(in)
	if err != nil {
		h.failDomain(w, err, requestID)
		return
	}

	var buf bytes.Buffer
	if err := render(&buf, res); err != nil {
		slog.Error("render comparison export failed", "format", ext, "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "export_failed", "failed to render export", requestID)
		return
	}
	h.Metrics.RecordComparison(true)

	filename := "comparison-" + in.Gross.StringFixed(2) + "-" + strconv.Itoa(in.ContractorRate) + "." + ext
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		slog.Warn("write comparison export failed", "format", ext, "err", err, "requestId", requestID)
	}
}

func (h *Handler) handleBrackets(w http.ResponseWriter, r *http.Request) {
	api.Success(w, bracketsResponse{
		SocialSecurity: comparison.SocialSecurityBrackets(),
		IncomeTax:      comparison.IncomeTaxBrackets(),
	}, middleware.GetRequestID(r.Context()))
}

// parseQuery reads gross (or masked) and rate from the query string and writes
// the validation response itself when they are unusable.
func (h *Handler) parseQuery(w http.ResponseWriter, r *http.Request) (comparison.Input, bool) {
	query := r.URL.Query()
	v := shared.NewValidator()

	var in comparison.Input
	if masked := query.Get("masked"); masked != "" && query.Get("gross") == "" {
		in.Gross = format.ParseMasked(masked)
	} else {
		in.Gross, _ = v.Decimal("gross", query.Get("gross"))
	}
	in.ContractorRate, _ = v.Int("rate", query.Get("rate"), h.DefaultRate)
	if !v.HasIssues() {
		h.validateFields(v, in, "gross", "rate")
	}
	if v.Reject(w, middleware.GetRequestID(r.Context())) {
		return comparison.Input{}, false
	}
	return in, true
}

func (h *Handler) validateFields(v *shared.Validator, in comparison.Input, grossField, rateField string) {
	if errors.Is(comparison.ValidateGross(in.Gross), comparison.ErrGrossOutOfRange) {
		v.Add(grossField, grossRangeReason)
	} else {
		v.NonNegative(grossField, in.Gross)
	}
	v.IntRange(rateField, in.ContractorRate, comparison.MinContractorRate, comparison.MaxContractorRate)
}

func (h *Handler) failDomain(w http.ResponseWriter, err error, requestID string) {
	switch {
	case errors.Is(err, comparison.ErrNegativeGross), errors.Is(err, comparison.ErrGrossOutOfRange),
		errors.Is(err, comparison.ErrRateOutOfRange):
		api.Fail(w, http.StatusBadRequest, "validation_error", err.Error(), requestID)
	default:
		slog.Error("comparison failed", "err", err, "requestId", requestID)
		api.Fail(w, http.StatusInternalServerError, "comparison_failed", "failed to compute comparison", requestID)
	}
}
