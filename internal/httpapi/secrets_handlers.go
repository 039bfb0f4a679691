package httpapi

import (
	"net/http"
	"sync/atomic"

	"jobtrack-engine/internal/config"
	"jobtrack-engine/internal/secrets"
)

type SecretsHandler struct {
	CfgVal *atomic.Value // stores config.Config
}

type setTokenReq struct {
	Token string `json:"token"`
}

func (h SecretsHandler) SetAPIToken(w http.ResponseWriter, r *http.Request) {
	var req setTokenReq
	if !decodeBody(w, r, &req) {
		return
	}

	cfg := h.CfgVal.Load().(config.Config)
	if cfg.Auth.TokenAccount == "" {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "auth.token_account is not configured")
		return
	}
	if err := secrets.SetAPIToken(cfg.Auth.TokenAccount, req.Token); err != nil {
		WriteError(w, r, http.StatusBadRequest, "bad_request", "failed to store token: "+err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
