package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/matzehuels/cronut/pkg/cache"
	"github.com/matzehuels/cronut/pkg/errors"
	cronutio "github.com/matzehuels/cronut/pkg/io"
	"github.com/matzehuels/cronut/pkg/pipeline"
)

func health(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte("ok"))
}

// createChart handles POST /v1/charts.
func (s *Server) createChart(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	format := r.URL.Query().Get("format")
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}

	opts, err := cronutio.ReadRequest(http.MaxBytesReader(w, r.Body, maxBodyBytes), cronutio.FormatJSON)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	result, err := s.runner.Execute(ctx, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	cacheStatus := "miss"
	if result.CacheInfo.RenderHit {
		cacheStatus = "hit"
	}

	data := result.Artifacts[format]
	w.Header().Set("Content-Type", pipeline.ContentTypes[format])
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.Header().Set("X-Cache", cacheStatus)
	// The ETag covers the body, so formats and output options of one request
	// never share a tag.
	w.Header().Set("ETag", strconv.Quote(cache.Hash(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// errorResponse is the body of every non-2xx API response.
type errorResponse struct {
	Code  errors.Code `json:"code"`
	Error string      `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	code := errors.GetCode(err)
	status := statusFor(code)
	if code == "" {
		code = errors.ErrCodeInternal
	}

	msg := errors.UserMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("chart request failed", "error", err, "request_id", RequestIDFromContext(r.Context()))
		msg = "internal error"
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Code: code, Error: msg})
}

func statusFor(code errors.Code) int {
	switch {
	case code.IsValidation():
		return http.StatusBadRequest
	case code == errors.ErrCodeNotFound, code == errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	case code == errors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case code == errors.ErrCodeUnsupported:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
