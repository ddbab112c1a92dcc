package http

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"

	"github.com/MKhiriev/levelup-fitness/internal/app"
	"github.com/MKhiriev/levelup-fitness/internal/utils"
)

// planIntegrity verifies the keyed hash that clients attach to plan uploads.
// A generated plan is the most expensive payload in the API, so a truncated
// or corrupted body must be rejected before it reaches storage. When no hash
// key is configured the check is skipped entirely.
func (h *Handler) planIntegrity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.hashKey == "" {
			next.ServeHTTP(w, r)
			return
		}

		var req struct {
			Content string `json:"content"`
			Hash    string `json:"hash"`
		}

		h.logger.Debug().Str("func", "*Handler.planIntegrity").Msg("checking hash begins")

		// read bytes from body
		body, err := io.ReadAll(r.Body)
		if err != nil {
			h.logger.Err(err).Str("func", "*Handler.planIntegrity").Msg("failed to read request body")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		// restore request body
		r.Body = io.NopCloser(bytes.NewReader(body))

		// Decode JSON from []byte
		if err := json.NewDecoder(bytes.NewReader(body)).Decode(&req); err != nil {
			h.logger.Err(err).Str("func", "*Handler.planIntegrity").Msg("failed to decode JSON")
			http.Error(w, app.MsgInvalidDataProvided, http.StatusBadRequest)
			return
		}

		// Calculate hash from the plan text
		hashedContent := hex.EncodeToString(utils.Hash([]byte(req.Content)))
		if hashedContent != req.Hash {
			h.logger.Error().Str("func", "*Handler.planIntegrity").
				Str("hash from request", req.Hash).
				Str("hashed content", hashedContent).
				Msg("hashes are not equal")
			http.Error(w, app.MsgIntegrityCheckFailed, http.StatusBadRequest)
			return
		}

		h.logger.Debug().Str("func", "*Handler.planIntegrity").
			Str("hash from request", req.Hash).
			Str("hashed content", hashedContent).
			Msg("hashes are equal")

		next.ServeHTTP(w, r)
	})
}
