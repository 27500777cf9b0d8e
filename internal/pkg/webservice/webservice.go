// Package webservice is the HTTP boundary for the NZEB model. It owns
// request parsing and validation; the pipeline owns the computation.
package webservice

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ohowland/nzeb_core/internal/pkg/metrics"
	"github.com/ohowland/nzeb_core/internal/pkg/pipeline"
	"github.com/ohowland/nzeb_core/internal/pkg/webservice/models"
)

// MakeRouter returns the service router.
func MakeRouter() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/", BaseHandler).Methods("GET")
	r.HandleFunc("/model", ModelHandler).Methods("POST")
	r.Handle("/metrics", promhttp.Handler()).Methods("GET")
	return r
}

// BaseHandler answers liveness probes.
func BaseHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"service":"nzeb_core"}`))
}

// ModelHandler runs one model evaluation. Malformed or incomplete input is a
// 400, a domain error from the pipeline is a 422, anything else is a 500
// with no internal detail beyond a message.
func ModelHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json; charset=UTF-8")

	var body models.Request
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		metrics.RunErrorsTotal.WithLabelValues("malformed").Inc()
		return
	}

	req, err := body.Validate()
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		metrics.RunErrorsTotal.WithLabelValues("validation").Inc()
		return
	}

	start := time.Now()
	res, err := pipeline.Run(req)
	metrics.RunDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		if pipeline.IsDomainErr(err) {
			log.Println("domain error:", err)
			writeError(w, http.StatusUnprocessableEntity, err.Error())
			metrics.RunErrorsTotal.WithLabelValues("domain").Inc()
			return
		}
		log.Println("run failed:", err)
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		metrics.RunErrorsTotal.WithLabelValues("internal").Inc()
		return
	}
	metrics.RunsTotal.Inc()

	w.Header().Set("X-Run-ID", res.RunID.String())
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(models.NewResponse(req, res)); err != nil {
		log.Println("encode response:", err)
	}
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(models.ErrorResponse{Error: msg}); err != nil {
		log.Println("encode error response:", err)
	}
}
