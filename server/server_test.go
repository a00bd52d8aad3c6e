// Package server_test exercises the HTTP surface end to end against a real
// engine: snapshot consistency over the wire, grow semantics, validation, and
// the metrics endpoint.
package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/swyrknt/distinction-engine/engine"
	"github.com/swyrknt/distinction-engine/export"
	"github.com/swyrknt/distinction-engine/server"
)

func newTestServer(t *testing.T) (*engine.Engine, *httptest.Server) {
	t.Helper()
	e := engine.New()
	srv := httptest.NewServer(server.New(e, zerolog.Nop()).Handler())
	t.Cleanup(srv.Close)

	return e, srv
}

func getJSON(t *testing.T, url string, out interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
}

func TestHealthz(t *testing.T) {
	_, srv := newTestServer(t)

	var body map[string]string
	getJSON(t, srv.URL+"/healthz", &body)
	require.Equal(t, "ok", body["status"])
}

func TestSnapshotEndpoint(t *testing.T) {
	e, srv := newTestServer(t)
	d0, d1 := e.Origin()
	_, err := e.Synthesize(d0, d1)
	require.NoError(t, err)

	var doc export.Document
	getJSON(t, srv.URL+"/api/snapshot", &doc)

	snap := e.Snapshot()
	require.Equal(t, snap.Nodes, doc.Nodes)
	require.Len(t, doc.Edges, len(snap.Edges))
}

func TestStatsEndpoint(t *testing.T) {
	e, srv := newTestServer(t)
	d0, d1 := e.Origin()
	d2, err := e.Synthesize(d0, d1)
	require.NoError(t, err)

	var stats struct {
		Distinctions  int      `json:"distinctions"`
		Relationships int      `json:"relationships"`
		Origin        []string `json:"origin"`
		Newest        string   `json:"newest"`
	}
	getJSON(t, srv.URL+"/api/stats", &stats)

	require.Equal(t, 3, stats.Distinctions)
	require.Equal(t, 2, stats.Relationships)
	require.Equal(t, []string{engine.PrimordialZero, engine.PrimordialOne}, stats.Origin)
	require.Equal(t, d2.ID, stats.Newest)
}

func TestGrowEndpoint(t *testing.T) {
	e, srv := newTestServer(t)

	body := bytes.NewBufferString(`{"steps": 50, "seed": 7, "strategy": "uniform"}`)
	resp, err := http.Post(srv.URL+"/api/grow", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var rep struct {
		Steps         int `json:"steps"`
		Distinctions  int `json:"distinctions"`
		Relationships int `json:"relationships"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rep))
	require.Equal(t, 50, rep.Steps)
	require.Equal(t, e.DistinctionCount(), rep.Distinctions)
	require.Equal(t, e.RelationshipCount(), rep.Relationships)
	require.Greater(t, e.DistinctionCount(), 2)
}

func TestGrowEndpoint_Validation(t *testing.T) {
	_, srv := newTestServer(t)

	cases := []struct {
		name string
		body string
	}{
		{"malformed", `{"steps": `},
		{"negative", `{"steps": -1}`},
		{"too large", `{"steps": 10000001}`},
		{"bad strategy", `{"steps": 1, "strategy": "quantum"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp, err := http.Post(srv.URL+"/api/grow", "application/json", bytes.NewBufferString(tc.body))
			require.NoError(t, err)
			defer resp.Body.Close()
			require.Equal(t, http.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestMetricsEndpoint(t *testing.T) {
	_, srv := newTestServer(t)

	// Run one grow so the counters move.
	resp, err := http.Post(srv.URL+"/api/grow", "application/json",
		bytes.NewBufferString(`{"steps": 10, "seed": 1}`))
	require.NoError(t, err)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	out := string(raw)
	require.Contains(t, out, "distinction_grow_steps_total 10")
	require.Contains(t, out, "distinction_grow_runs_total 1")
	require.Contains(t, out, "distinction_registry_distinctions")
	require.Contains(t, out, "distinction_registry_relationships")
}

// TestIndependentServers verifies two servers around two engines share
// nothing: growing one leaves the other's registry and metrics untouched.
func TestIndependentServers(t *testing.T) {
	e1, srv1 := newTestServer(t)
	e2, _ := newTestServer(t)

	resp, err := http.Post(srv1.URL+"/api/grow", "application/json",
		bytes.NewBufferString(`{"steps": 30, "seed": 2}`))
	require.NoError(t, err)
	resp.Body.Close()

	require.Greater(t, e1.DistinctionCount(), 2)
	require.Equal(t, 2, e2.DistinctionCount())
}
