package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/internal/graphtest"
	errs "github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/errors"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/graph"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/observability"
	"github.com/sahanavs-2006/Advanced-Data-Structure-SPQR-Tree/pkg/pipeline"
)

func newTestServer(t *testing.T, metrics *observability.Collector) *Server {
	t.Helper()
	return New(Config{Metrics: metrics})
}

func post(t *testing.T, s *Server, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		require.NoError(t, json.NewEncoder(&buf).Encode(b))
	}
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, path, &buf))
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	return body
}

func TestAnalyze(t *testing.T) {
	s := newTestServer(t, nil)
	rec := post(t, s, "/v1/analyze", map[string]any{"graph": graphtest.TwoTriangles()})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var rep pipeline.AnalysisReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rep))
	assert.NotEmpty(t, rep.RunID)
	assert.Equal(t, []string{"c-d"}, rep.Result.BridgeIDs())
	assert.Equal(t, 76, rep.Result.RedundancyScore)
}

func TestAnalyzeDisabled(t *testing.T) {
	s := newTestServer(t, nil)
	rec := post(t, s, "/v1/analyze", map[string]any{
		"graph":    graphtest.Cycle(4),
		"disabled": []string{"n1-n2"},
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var rep pipeline.AnalysisReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rep))
	assert.Len(t, rep.Result.Bridges, 3)
	assert.True(t, rep.Result.Connected)
}

func TestDecompose(t *testing.T) {
	s := newTestServer(t, nil)
	rec := post(t, s, "/v1/decompose", map[string]any{"graph": graphtest.TwoTriangles()})
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		RunID string `json:"run_id"`
		Tree  struct {
			Root  string `json:"root"`
			Nodes []struct {
				ID       string   `json:"id"`
				Type     string   `json:"type"`
				Children []string `json:"children"`
			} `json:"nodes"`
		} `json:"tree"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.NotEmpty(t, body.RunID)
	assert.Equal(t, "spqr-s-0", body.Tree.Root)
	require.Len(t, body.Tree.Nodes, 3)
	assert.Equal(t, "S", body.Tree.Nodes[0].Type)
	assert.Equal(t, []string{"spqr-r-1", "spqr-r-2"}, body.Tree.Nodes[0].Children)
}

func TestLayout(t *testing.T) {
	s := newTestServer(t, nil)
	rec := post(t, s, "/v1/layout", map[string]any{
		"graph": graphtest.Cycle(5),
		"seed":  3,
		"width": 400,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rep pipeline.LayoutReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rep))
	require.Len(t, rep.Graph.Nodes, 5)
	for _, n := range rep.Graph.Nodes {
		assert.LessOrEqual(t, n.X, 400.0)
	}
}

func TestPaths(t *testing.T) {
	s := newTestServer(t, nil)
	rec := post(t, s, "/v1/paths", map[string]any{
		"graph": graphtest.Cycle(4),
		"from":  "n1",
		"to":    "n3",
		"mode":  "all",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var rep pipeline.PathReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rep))
	assert.True(t, rep.Connected)
	assert.Len(t, rep.Paths, 2)
}

func TestStats(t *testing.T) {
	s := newTestServer(t, nil)
	rec := post(t, s, "/v1/stats", map[string]any{"graph": graphtest.Path(3)})
	require.Equal(t, http.StatusOK, rec.Code)

	var rep pipeline.StatsReport
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&rep))
	assert.Equal(t, 3, rep.Paths.ConnectedPairs)
}

func TestRenderDOT(t *testing.T) {
	s := newTestServer(t, nil)
	rec := post(t, s, "/v1/render", map[string]any{
		"graph":  graphtest.TwoTriangles(),
		"format": "dot",
		"tree":   true,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "text/vnd.graphviz", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Header().Get("X-Run-ID"))
	assert.True(t, strings.HasPrefix(rec.Body.String(), "digraph T {"))
}

func TestErrors(t *testing.T) {
	dup := graphtest.Path(2)
	dup.Nodes = append(dup.Nodes, graph.Node{ID: "n1"})

	tests := []struct {
		name   string
		path   string
		body   any
		status int
		code   errs.Code
	}{
		{"malformed json", "/v1/analyze", `{"graph":`, 400, errs.ErrCodeInvalidInput},
		{"unknown field", "/v1/analyze", `{"grph":{}}`, 400, errs.ErrCodeInvalidInput},
		{"empty disabled id", "/v1/analyze", map[string]any{"disabled": []string{""}}, 400, errs.ErrCodeInvalidInput},
		{"missing from", "/v1/paths", map[string]any{"graph": graphtest.Path(2), "to": "n2"}, 400, errs.ErrCodeInvalidInput},
		{"bad mode", "/v1/paths", map[string]any{"graph": graphtest.Path(2), "from": "n1", "to": "n2", "mode": "widest"}, 400, errs.ErrCodeInvalidInput},
		{"unknown node", "/v1/paths", map[string]any{"graph": graphtest.Path(2), "from": "n1", "to": "zz"}, 400, errs.ErrCodeNodeNotFound},
		{"bad format", "/v1/render", map[string]any{"format": "gif"}, 400, errs.ErrCodeInvalidInput},
		{"negative width", "/v1/layout", map[string]any{"width": -5}, 400, errs.ErrCodeInvalidInput},
		{"strict duplicate", "/v1/analyze", map[string]any{"graph": dup, "strict": true}, 400, errs.ErrCodeInvalidGraph},
		{"no route", "/v1/nope", map[string]any{}, 404, errs.ErrCodeNotFound},
	}
	s := newTestServer(t, nil)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, s, tt.path, tt.body)
			require.Equal(t, tt.status, rec.Code, rec.Body.String())
			body := decodeError(t, rec)
			assert.Equal(t, tt.code, body.Code)
			assert.NotEmpty(t, body.Message)
		})
	}
}

func TestValidationMessage(t *testing.T) {
	s := newTestServer(t, nil)
	rec := post(t, s, "/v1/paths", map[string]any{"graph": graphtest.Path(2), "to": "n2"})
	body := decodeError(t, rec)
	assert.Equal(t, "from is required", body.Message)
}

func TestEmptyGraphIsAccepted(t *testing.T) {
	s := newTestServer(t, nil)
	rec := post(t, s, "/v1/decompose", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), `"root":"spqr-root"`)
}

func TestHealthAndMetrics(t *testing.T) {
	defer observability.Reset()
	c := observability.NewCollector("server_test")
	observability.SetHTTPHooks(c)
	s := newTestServer(t, c)

	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)

	post(t, s, "/v1/stats", map[string]any{"graph": graphtest.Path(2)})

	rec = httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `server_test_http_requests_total{method="POST",route="/v1/stats",status="200"} 1`)
	assert.Contains(t, rec.Body.String(), `server_test_http_requests_total{method="GET",route="/healthz",status="200"} 1`)
}

func TestMetricsDisabled(t *testing.T) {
	s := newTestServer(t, nil)
	rec := httptest.NewRecorder()
	s.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
