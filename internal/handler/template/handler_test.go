package template

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/joeblew999/plat-respond/internal/errorx"
	"github.com/joeblew999/plat-respond/internal/svc"
	"github.com/joeblew999/plat-respond/internal/types"
	"github.com/joeblew999/plat-respond/pkg/store"
	tmpl "github.com/joeblew999/plat-respond/pkg/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zeromicro/go-zero/rest/pathvar"
)

func newTestServiceContext(t *testing.T) *svc.ServiceContext {
	t.Helper()
	errorx.RegisterErrorHandler()

	st := store.New(store.NewMemory())
	require.NoError(t, st.Save(context.Background(), "sam_billing_late.json", &tmpl.Template{
		Name: "sam_billing_late", Body: "Hi {name}, your {item} ships {date}.",
		Variables: []string{"name", "item", "date"}, Description: "Shipping delay",
	}))
	return &svc.ServiceContext{Store: st}
}

func jsonRequest(method, target, body string, vars map[string]string) *http.Request {
	r := httptest.NewRequest(method, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/json")
	if vars != nil {
		r = pathvar.WithVars(r, vars)
	}
	return r
}

func TestListTemplatesHandler(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	w := httptest.NewRecorder()
	ListTemplatesHandler(svcCtx)(w, httptest.NewRequest(http.MethodGet, "/api/v1/templates?user=sam&q=late", nil))

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.ListTemplatesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Templates, 1)
	assert.Equal(t, "billing", resp.Templates[0].Skill)
}

func TestRenderTemplateHandler(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	w := httptest.NewRecorder()
	RenderTemplateHandler(svcCtx)(w, jsonRequest(http.MethodPost, "/api/v1/templates/sam_billing_late.json/render",
		`{"values":{"name":"Sam","item":"order","date":"Monday"}}`,
		map[string]string{"filename": "sam_billing_late.json"}))

	require.Equal(t, http.StatusOK, w.Code)
	var resp types.RenderTemplateResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Hi Sam, your order ships Monday.", resp.Text)
}

func TestRenderTemplateHandlerMissingVariable(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	w := httptest.NewRecorder()
	RenderTemplateHandler(svcCtx)(w, jsonRequest(http.MethodPost, "/api/v1/templates/sam_billing_late.json/render",
		`{"values":{"name":"Sam"}}`, map[string]string{"filename": "sam_billing_late.json"}))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "missing values for variables: item, date")
}

func TestGetTemplateHandlerNotFound(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	w := httptest.NewRecorder()
	GetTemplateHandler(svcCtx)(w, jsonRequest(http.MethodGet, "/api/v1/templates/nope.json", "",
		map[string]string{"filename": "nope.json"}))

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateThenUpdateHandlers(t *testing.T) {
	svcCtx := newTestServiceContext(t)

	w := httptest.NewRecorder()
	CreateTemplateHandler(svcCtx)(w, jsonRequest(http.MethodPost, "/api/v1/templates",
		`{"name":"Kim Sales Intro","description":"Intro","body":"Dear {name}"}`, nil))
	require.Equal(t, http.StatusOK, w.Code)

	var created types.TemplateDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "kim_sales_intro.json", created.Filename)
	assert.Equal(t, []string{"name"}, created.Variables)

	w = httptest.NewRecorder()
	UpdateTemplateHandler(svcCtx)(w, jsonRequest(http.MethodPut, "/api/v1/templates/kim_sales_intro.json",
		`{"description":"Intro v2","body":"Dear {name} at {company}"}`,
		map[string]string{"filename": "kim_sales_intro.json"}))
	require.Equal(t, http.StatusOK, w.Code)

	var updated types.TemplateDetail
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Kim Sales Intro", updated.Name)
	assert.Equal(t, []string{"name", "company"}, updated.Variables)
}

func TestCreateTemplateHandlerValidation(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	w := httptest.NewRecorder()
	CreateTemplateHandler(svcCtx)(w, jsonRequest(http.MethodPost, "/api/v1/templates", `{"body":"x"}`, nil))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Template name is required.")
}

func TestDetectVariablesHandler(t *testing.T) {
	svcCtx := newTestServiceContext(t)
	w := httptest.NewRecorder()
	DetectVariablesHandler(svcCtx)(w, jsonRequest(http.MethodPost, "/api/v1/variables/detect", `{"body":"{a} and { b }"}`, nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"variables":["a","b"]}`, w.Body.String())
}
