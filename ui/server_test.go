package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bedflow/app"
	"bedflow/internal/testkit"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gen := testkit.NewHospitalDataGenerator(testkit.DefaultHospitalConfig())
	engine, err := app.NewEngine(gen.GenerateRecords())
	require.NoError(t, err)
	return NewServer(engine)
}

func doJSON(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	s.Handler().ServeHTTP(rec, req)
	return rec
}

func TestServer_HealthAndServices(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodGet, "/api/health", "")
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/services", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Services []string `json:"services"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Contains(t, body.Services, "cardiology")
}

func TestServer_SelectionLifecycle(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPost, "/api/selection", `{"service":"cardiology","week":23}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res struct {
		State struct {
			Selection *struct {
				Service string `json:"service"`
				Week    int    `json:"week"`
			} `json:"selection"`
		} `json:"state"`
		Bundle struct {
			Mode       string `json:"mode"`
			Hypothesis string `json:"hypothesis"`
		} `json:"bundle"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.State.Selection)
	assert.Equal(t, "cardiology", res.State.Selection.Service)
	assert.Equal(t, "workspace", res.Bundle.Mode)
	assert.NotEmpty(t, res.Bundle.Hypothesis)

	rec = doJSON(t, s, http.MethodDelete, "/api/selection", "")
	require.Equal(t, http.StatusOK, rec.Code)

	// A fresh struct: the cleared response omits "selection" entirely, so
	// unmarshaling into the previous value would keep the stale pointer.
	var cleared struct {
		State struct {
			Selection *struct {
				Service string `json:"service"`
				Week    int    `json:"week"`
			} `json:"selection"`
		} `json:"state"`
		Bundle struct {
			Mode string `json:"mode"`
		} `json:"bundle"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &cleared))
	assert.Nil(t, cleared.State.Selection)
	assert.Equal(t, "locator", cleared.Bundle.Mode)
}

func TestServer_ErrorMapping(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPut, "/api/week-range", `{"lo":40,"hi":10}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/selection", `{"service":"radiology","week":5}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doJSON(t, s, http.MethodPut, "/api/focus", `{"focus":"bogus_metric"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, s, http.MethodPost, "/api/selection", `{"week":5}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServer_PreferencesAndBundle(t *testing.T) {
	s := testServer(t)

	rec := doJSON(t, s, http.MethodPut, "/api/baseline", `{"show":false}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodPut, "/api/service-filter", `{"service":"emergency"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, s, http.MethodGet, "/api/bundle", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var bundle struct {
		Mode string `json:"mode"`
		Kpis struct {
			Scope string `json:"scope"`
		} `json:"kpis"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &bundle))
	assert.Equal(t, "locator", bundle.Mode)
	assert.Equal(t, "range", bundle.Kpis.Scope)
}
