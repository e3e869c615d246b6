package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/rpaiva/warehouse-tracker/internal/auth"
)

// LoginHandler godoc
// @Summary Open a session
// @Description Accepts any non-empty username and password and returns a session token.
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body UserLogin true "Credentials"
// @Success 200 {object} LoginResult
// @Failure 400 {string} string "Missing credentials"
// @Router /login [post]
func LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req UserLogin
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	if strings.TrimSpace(req.Username) == "" || strings.TrimSpace(req.Password) == "" {
		http.Error(w, "username and password are required", http.StatusBadRequest)
		return
	}

	token, err := auth.GenerateToken(req.Username)
	if err != nil {
		log.Error().Err(err).Msg("could not sign token")
		http.Error(w, "could not open session", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, LoginResult{Token: token, Username: req.Username})
}
