package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.creack.net/deriv/calculator"
	"go.creack.net/deriv/config"
)

func newTestServer(t *testing.T, cfg *config.Config) *httptest.Server {
	t.Helper()

	ts := httptest.NewServer(New(cfg).Handler())
	t.Cleanup(ts.Close)
	return ts
}

func postDerive(t *testing.T, ts *httptest.Server, body string) (int, calculator.Response) {
	t.Helper()

	resp, err := http.Post(ts.URL+"/derive", "application/json", strings.NewReader(body))
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }() // Best effort.

	var out calculator.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func TestDerive(t *testing.T) {
	ts := newTestServer(t, config.Default())

	status, resp := postDerive(t, ts, `{"expr":"sin^2(x)"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "2*sin(x)*cos(x)", resp.Result)
	assert.Equal(t, "x", resp.Var)
	assert.Nil(t, resp.Error)
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err, "response id %q", resp.ID)

	status, resp = postDerive(t, ts, `{"id":"abc","expr":"t^2","var":"t"}`)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "abc", resp.ID, "client id kept")
	assert.Equal(t, "2*t", resp.Result)
}

func TestDeriveErrors(t *testing.T) {
	cfg := config.Default()
	cfg.MaxBodyBytes = 64
	ts := newTestServer(t, cfg)

	status, resp := postDerive(t, ts, `{"expr":"sin(x"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "Error", resp.Result)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "UnbalancedParentheses", resp.Error.Kind)

	status, resp = postDerive(t, ts, `{"expr":`)
	assert.Equal(t, http.StatusBadRequest, status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "InvalidRequest", resp.Error.Kind)

	status, _ = postDerive(t, ts, `{"expr":"`+strings.Repeat("x+", 64)+`x"}`)
	assert.Equal(t, http.StatusRequestEntityTooLarge, status)
}

func TestMethodNotAllowed(t *testing.T) {
	ts := newTestServer(t, config.Default())

	resp, err := http.Get(ts.URL + "/derive")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, config.Default())

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }() // Best effort.
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok\n", string(body))
}

func wsURL(ts *httptest.Server) string {
	return "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
}

func TestWebSocket(t *testing.T) {
	ts := newTestServer(t, config.Default())

	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts), nil)
	require.NoError(t, err)
	defer func() { _ = conn.Close() }() // Best effort.

	for _, tt := range []struct {
		req  string
		want string
		kind string
	}{
		{`{"expr":"x^2"}`, "2*x", ""},
		{`{"expr":"log(y)","var":"y"}`, "1/y", ""},
		{`{"expr":"sin(x"}`, "Error", "UnbalancedParentheses"},
		{`not json`, "Error", "InvalidRequest"},
		{`{"expr":"(x+1)*(x-1)"}`, "2*x", ""},
	} {
		require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte(tt.req)))
		var resp calculator.Response
		require.NoError(t, conn.ReadJSON(&resp))
		assert.Equal(t, tt.want, resp.Result, "request %s", tt.req)
		assert.NotEmpty(t, resp.ID)
		if tt.kind == "" {
			assert.Nil(t, resp.Error, "request %s", tt.req)
			continue
		}
		if assert.NotNil(t, resp.Error, "request %s", tt.req) {
			assert.Equal(t, tt.kind, resp.Error.Kind)
		}
	}
}

func TestWebSocketOrigin(t *testing.T) {
	cfg := config.Default()
	cfg.AllowedOrigins = []string{"http://localhost:1420"}
	ts := newTestServer(t, cfg)

	header := http.Header{"Origin": {"http://evil.example"}}
	_, resp, err := websocket.DefaultDialer.Dial(wsURL(ts), header)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	header = http.Header{"Origin": {"http://localhost:1420"}}
	conn, _, err := websocket.DefaultDialer.Dial(wsURL(ts), header)
	require.NoError(t, err)
	_ = conn.Close()
}
