package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJSON, err)
	}
	return nil
}

// teamParam returns the {team} route parameter. Sanitising is left to the
// services.
func teamParam(r *http.Request) (string, error) {
	team := strings.TrimSpace(chi.URLParam(r, "team"))
	if team == "" {
		return "", ErrEmptyTeam
	}
	return team, nil
}
