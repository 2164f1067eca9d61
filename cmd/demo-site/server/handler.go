package server

import (
	"crypto/subtle"
	"html/template"
	"net/http"

	"k8s.io/klog/v2"
)

type handler struct {
	username string
	password string
}

type loginResult struct {
	Success bool
	Invalid bool
}

func (h *handler) index(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/index.html" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	render(w, indexPage, nil)
}

func (h *handler) loginForm(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		render(w, loginPage, loginResult{})
	case http.MethodPost:
		if err := r.ParseForm(); err != nil {
			klog.InfoS("Rejected login form", "err", err)
			http.Error(w, "Invalid form", http.StatusBadRequest)
			return
		}
		ok := h.valid(r.PostForm.Get("username"), r.PostForm.Get("password"))
		render(w, loginPage, loginResult{Success: ok, Invalid: !ok})
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

func (h *handler) valid(username, password string) bool {
	u := subtle.ConstantTimeCompare([]byte(username), []byte(h.username))
	p := subtle.ConstantTimeCompare([]byte(password), []byte(h.password))
	return u&p == 1
}

func render(w http.ResponseWriter, t *template.Template, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := t.Execute(w, data); err != nil {
		klog.ErrorS(err, "Failed to render page", "page", t.Name())
	}
}
