package server

import (
	"encoding/json"
	"net/http"

	"playstore/apps"
	"playstore/cerror"
	"playstore/shared"
)

// RecordSource is what the handler needs from the catalog.
type RecordSource interface {
	Records() []shared.AppRecord
}

func appsHandler(src RecordSource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := apps.Query(src.Records(), apps.ParseParams(r.URL.Query()))
		if err != nil {
			cerror.ThrowFromError(w, err)
			return
		}

		data, err := json.Marshal(result)
		if err != nil {
			cerror.ThrowFromError(w, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
}
