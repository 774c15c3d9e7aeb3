package handlers

import (
	"net/http"
	"strings"

	"marketcrown/backend-go/internal/storage"
)

// News filters on exact region and exact YYYY-MM-DD date; either may be omitted.
func (a *API) News(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	f := storage.NewsFilter{
		Region: strings.TrimSpace(q.Get("region")),
		Date:   strings.TrimSpace(q.Get("date")),
	}
	items, err := a.svc.News(r.Context(), f)
	if err != nil {
		a.writeError(w, r, err, "")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (a *API) Blog(w http.ResponseWriter, r *http.Request) {
	country, date := pathVar(r, "country"), pathVar(r, "date")
	b, err := a.svc.Blog(r.Context(), country, date)
	if err != nil {
		a.writeError(w, r, err, "Blog not found")
		return
	}
	writeJSON(w, http.StatusOK, b)
}
