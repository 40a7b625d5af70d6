package ui

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"

	"github.com/joeblew999/plat-respond/pkg/store"
	"github.com/joeblew999/plat-respond/pkg/template"
	"github.com/starfederation/datastar-go/datastar"
	"github.com/zeromicro/go-zero/core/logx"
	"github.com/zeromicro/go-zero/rest"
	g "maragu.dev/gomponents"
)

// Handlers provides HTTP handlers for the UI.
type Handlers struct {
	store *store.Store
}

// NewHandlers creates new UI handlers.
func NewHandlers(st *store.Store) *Handlers {
	return &Handlers{store: st}
}

// Routes returns the page routes for registration with rest.Server.
func (h *Handlers) Routes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodGet, Path: "/", Handler: h.handleGenerate},
		{Method: http.MethodGet, Path: "/new", Handler: h.handleNew},
		{Method: http.MethodGet, Path: "/edit", Handler: h.handleEdit},
		{Method: http.MethodGet, Path: "/download", Handler: h.handleDownload},
	}
}

// SSERoutes returns the Datastar action routes (require rest.WithSSE option).
func (h *Handlers) SSERoutes() []rest.Route {
	return []rest.Route{
		{Method: http.MethodPost, Path: "/api/generate", Handler: h.handleGenerateAction},
		{Method: http.MethodPost, Path: "/api/detect", Handler: h.handleDetect},
		{Method: http.MethodPost, Path: "/api/save", Handler: h.handleSave},
	}
}

func (h *Handlers) handleGenerate(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := GenerateView{
		Filter:   filterFromQuery(q),
		RetryURL: r.URL.RequestURI(),
	}

	listing, err := h.store.Browse(r.Context(), view.Filter)
	if err != nil {
		logx.WithContext(r.Context()).Errorf("browse templates: %v", err)
		view.Error = storeFailure(err)
	} else {
		view.Total = listing.Total
		view.Facets = listing.Facets
		view.Entries = listing.Entries
		view.Warnings = listing.Warnings
		view.Selected = selectEntry(listing.Entries, q.Get("template"))
	}

	h.renderPage(w, r, GeneratePage(view))
}

func (h *Handlers) handleNew(w http.ResponseWriter, r *http.Request) {
	h.renderPage(w, r, NewTemplatePage())
}

func (h *Handlers) handleEdit(w http.ResponseWriter, r *http.Request) {
	view := EditView{RetryURL: r.URL.RequestURI()}

	names, err := h.store.List(r.Context())
	if err != nil {
		logx.WithContext(r.Context()).Errorf("list templates: %v", err)
		view.Error = storeFailure(err)
		h.renderPage(w, r, EditTemplatePage(view))
		return
	}

	slices.Sort(names)
	view.Filenames = names
	if len(names) > 0 {
		view.Filename = names[0]
		if want := r.URL.Query().Get("template"); slices.Contains(names, want) {
			view.Filename = want
		}

		t, err := h.store.Load(r.Context(), view.Filename)
		if err != nil {
			logx.WithContext(r.Context()).Errorf("load %s: %v", view.Filename, err)
			view.Error = "Could not load the selected template."
		} else {
			view.Template = t
		}
	}

	h.renderPage(w, r, EditTemplatePage(view))
}

// handleDownload re-renders the selected template from query values and
// returns it as a text attachment.
func (h *Handlers) handleDownload(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filename := q.Get("template")

	t, err := h.store.Load(r.Context(), filename)
	if err != nil {
		code := http.StatusServiceUnavailable
		switch {
		case errors.Is(err, store.ErrNotFound):
			code = http.StatusNotFound
		case errors.Is(err, store.ErrInvalidDocument):
			code = http.StatusInternalServerError
		}
		http.Error(w, err.Error(), code)
		return
	}

	text, err := t.Render(valuesFor(t, func(key string) string { return q.Get(key) }))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="response.txt"`)
	if _, err := w.Write([]byte(text)); err != nil {
		logx.WithContext(r.Context()).Errorf("write download: %v", err)
	}
}

type generateSignals struct {
	Vars map[string]string `json:"vars"`
}

func (h *Handlers) handleGenerateAction(w http.ResponseWriter, r *http.Request) {
	var signals generateSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.sendGenerateResult(w, r, "", "Invalid request")
		return
	}

	filename := r.URL.Query().Get("template")
	t, err := h.store.Load(r.Context(), filename)
	if err != nil {
		logx.WithContext(r.Context()).Errorf("load %s: %v", filename, err)
		h.sendGenerateResult(w, r, "", loadFailure(err))
		return
	}

	text, err := t.Render(valuesFor(t, func(key string) string { return signals.Vars[key] }))
	if err != nil {
		h.sendGenerateResult(w, r, "", capitalize(err.Error()))
		return
	}

	logx.WithContext(r.Context()).Infow("Response generated", logx.Field("template", filename))
	h.sendGenerateResult(w, r, text, "")
}

func (h *Handlers) sendGenerateResult(w http.ResponseWriter, r *http.Request, result, errMsg string) {
	h.sendDatastarSignals(w, r, map[string]any{
		"result":     result,
		"error":      errMsg,
		"copied":     false,
		"generating": false,
	})
}

type detectSignals struct {
	Body            string `json:"body"`
	VariablesEdited bool   `json:"variablesEdited"`
}

// handleDetect reports the body's placeholders and, until the user edits the
// variables field, keeps it in step with them.
func (h *Handlers) handleDetect(w http.ResponseWriter, r *http.Request) {
	var signals detectSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.sendDatastarError(w, r, err)
		return
	}

	detected := template.DetectVariables(signals.Body)
	patch := map[string]any{"detected": detectedText(detected)}
	if !signals.VariablesEdited {
		patch["variables"] = template.FormatVariableList(detected)
	}
	h.sendDatastarSignals(w, r, patch)
}

type saveSignals struct {
	Mode        string `json:"mode"`
	Filename    string `json:"filename"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Body        string `json:"body"`
	Variables   string `json:"variables"`
}

func (h *Handlers) handleSave(w http.ResponseWriter, r *http.Request) {
	var signals saveSignals
	if err := datastar.ReadSignals(r, &signals); err != nil {
		h.sendSaveResult(w, r, "", "Invalid request")
		return
	}

	draft := template.Draft{
		Name:        signals.Name,
		Description: signals.Description,
		Body:        signals.Body,
		Variables:   signals.Variables,
	}

	if signals.Mode == "edit" {
		h.saveEdit(w, r, signals.Filename, draft)
		return
	}

	if err := draft.ValidateNew(); err != nil {
		h.sendSaveResult(w, r, "", err.Error())
		return
	}
	t := draft.Template()
	filename := template.FilenameFor(t.Name)
	if err := h.store.Save(r.Context(), filename, t); err != nil {
		h.sendSaveResult(w, r, "", saveFailure(err))
		return
	}

	logx.WithContext(r.Context()).Infow("Template added", logx.Field("filename", filename))
	h.sendSaveResult(w, r, fmt.Sprintf("Template '%s' saved!", strings.TrimSpace(signals.Name)), "")
}

// saveEdit overwrites filename, keeping the stored template name.
func (h *Handlers) saveEdit(w http.ResponseWriter, r *http.Request, filename string, draft template.Draft) {
	if err := draft.ValidateEdit(); err != nil {
		h.sendSaveResult(w, r, "", err.Error())
		return
	}

	current, err := h.store.Load(r.Context(), filename)
	if err != nil {
		h.sendSaveResult(w, r, "", loadFailure(err))
		return
	}

	t := draft.Template()
	t.Name = current.Name
	if t.Name == "" {
		t.Name = template.Stem(filename)
	}
	if err := h.store.Save(r.Context(), filename, t); err != nil {
		h.sendSaveResult(w, r, "", saveFailure(err))
		return
	}

	logx.WithContext(r.Context()).Infow("Template updated", logx.Field("filename", filename))
	h.sendSaveResult(w, r, fmt.Sprintf("Template '%s' updated!", filename), "")
}

func (h *Handlers) sendSaveResult(w http.ResponseWriter, r *http.Request, message, errMsg string) {
	h.sendDatastarSignals(w, r, map[string]any{
		"message": message,
		"error":   errMsg,
		"saving":  false,
	})
}

func (h *Handlers) renderPage(w http.ResponseWriter, r *http.Request, page g.Node) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := page.Render(w); err != nil {
		logx.WithContext(r.Context()).Errorf("render %s: %v", r.URL.Path, err)
	}
}

func (h *Handlers) sendDatastarSignals(w http.ResponseWriter, r *http.Request, signals map[string]any) {
	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(signals); err != nil {
		logx.Errorf("datastar patch signals: %v", err)
	}
}

func (h *Handlers) sendDatastarError(w http.ResponseWriter, r *http.Request, err error) {
	msg := "Unknown error"
	if err != nil {
		msg = err.Error()
	}
	h.sendDatastarSignals(w, r, map[string]any{"error": msg})
}

// filterFromQuery reads the multi-select filters. Before the filter form is
// first submitted every user and skill is selected; afterwards an empty
// selection means none.
func filterFromQuery(q url.Values) template.Filter {
	f := template.Filter{
		Users:  q["user"],
		Skills: q["skill"],
		Query:  q.Get("q"),
	}
	if q.Has("filtered") {
		f.Users = append([]string{}, f.Users...)
		f.Skills = append([]string{}, f.Skills...)
	}
	return f
}

func selectEntry(entries []store.Entry, filename string) *store.Entry {
	if len(entries) == 0 {
		return nil
	}
	for i := range entries {
		if entries[i].Filename == filename {
			return &entries[i]
		}
	}
	return &entries[0]
}

// varKey is the signal and query key of the i-th declared variable.
func varKey(i int) string {
	return fmt.Sprintf("v%d", i)
}

// valuesFor maps the template's inputs to the values entered in them.
func valuesFor(t *template.Template, lookup func(key string) string) map[string]string {
	names := t.Inputs()
	values := make(map[string]string, len(names))
	for i, name := range names {
		values[name] = lookup(varKey(i))
	}
	return values
}

func detectedText(vars []string) string {
	if len(vars) == 0 {
		return "None"
	}
	return template.FormatVariableList(vars)
}

func storeFailure(err error) string {
	return "The template store could not be reached: " + err.Error()
}

func loadFailure(err error) string {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return "The selected template no longer exists."
	case errors.Is(err, store.ErrInvalidDocument):
		return "Could not load the selected template."
	default:
		return storeFailure(err) + ". Try again."
	}
}

func saveFailure(err error) string {
	return "The template could not be saved: " + err.Error() + ". Try again."
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
