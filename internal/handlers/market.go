package handlers

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

func pathVar(r *http.Request, name string) string {
	return strings.TrimSpace(mux.Vars(r)[name])
}

func (a *API) Indices(w http.ResponseWriter, r *http.Request) {
	region := strings.TrimSpace(r.URL.Query().Get("region"))
	ctx, cancel := timeboxed(r, a.cfg.RequestTimeout)
	defer cancel()

	items, err := a.svc.Indices(ctx, region)
	if err != nil {
		a.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) IndiaMarket(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeboxed(r, a.cfg.RequestTimeout)
	defer cancel()
	writeJSON(w, http.StatusOK, a.svc.IndiaMarketIndices(ctx))
}

func (a *API) Crypto(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := timeboxed(r, a.cfg.RequestTimeout)
	defer cancel()
	writeJSON(w, http.StatusOK, a.svc.Crypto(ctx))
}
