package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-logr/logr"

	"github.com/kedacore/readysignal/pkg/build"
)

func AddConfigEndpoint(lggr logr.Logger, mux *http.ServeMux, configs ...interface{}) {
	mux.HandleFunc("/config", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(lggr, w, map[string]interface{}{
			"configs": configs,
		})
	})
}

func AddVersionEndpoint(lggr logr.Logger, mux *http.ServeMux) {
	mux.HandleFunc("/version", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(lggr, w, map[string]interface{}{
			"version": build.Version(),
		})
	})
}

func writeJSON(lggr logr.Logger, w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		lggr.Error(err, "failed to encode response")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(err.Error()))
	}
}
