package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/festival-manager-api/pkg/apiErrors"
)

func pathParam(r *http.Request, name string) string {
	return httprouter.ParamsFromContext(r.Context()).ByName(name)
}

// confirmRequested verifica a confirmação explícita exigida pelas
// operações destrutivas (?confirm=true). Sem ela a exclusão não roda.
func confirmRequested(r *http.Request) bool {
	return r.URL.Query().Get("confirm") == "true"
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload == nil {
		return
	}

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.Error(err)
	}
}

func requireConfirmation(w http.ResponseWriter, r *http.Request) bool {
	if !confirmRequested(r) {
		apiErrors.WriteError(w, apiErrors.ErrConfirmationRequired, "Operação destrutiva requer confirm=true", nil)
		return false
	}
	return true
}
