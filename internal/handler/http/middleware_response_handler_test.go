package http

import (
	"bufio"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newResponseWriter(rr *httptest.ResponseRecorder) *responseWriter {
	return &responseWriter{ResponseWriter: rr}
}

// hijackableRecorder is a recorder whose connection can be taken over.
type hijackableRecorder struct {
	*httptest.ResponseRecorder
	conn net.Conn
}

func (h *hijackableRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return h.conn, bufio.NewReadWriter(bufio.NewReader(h.conn), bufio.NewWriter(h.conn)), nil
}

// ---- WriteHeader ----

func TestResponseWriter_WriteHeader_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		statusCodes    []int
		expectedStatus int
	}{
		{name: "200 OK", statusCodes: []int{http.StatusOK}, expectedStatus: http.StatusOK},
		{name: "201 Created", statusCodes: []int{http.StatusCreated}, expectedStatus: http.StatusCreated},
		{name: "207 Multi-Status", statusCodes: []int{http.StatusMultiStatus}, expectedStatus: http.StatusMultiStatus},
		{name: "second call is ignored", statusCodes: []int{http.StatusConflict, http.StatusInternalServerError}, expectedStatus: http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			w := newResponseWriter(rr)

			for _, code := range tt.statusCodes {
				w.WriteHeader(code)
			}

			assert.Equal(t, tt.expectedStatus, w.status)
			assert.True(t, w.wroteHeader)
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

// ---- Write ----

func TestResponseWriter_Write_SetsImplicit200(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	_, err := w.Write([]byte("hello"))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestResponseWriter_Write_AccumulatesSize(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.Write([]byte("first"))
	w.Write([]byte("second"))

	assert.Equal(t, len("first")+len("second"), w.size)
	assert.Equal(t, "firstsecond", rr.Body.String())
}

func TestResponseWriter_Write_AfterExplicitWriteHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	w.WriteHeader(http.StatusCreated)
	w.Write([]byte(`{"team_id":"alpha"}`))

	assert.Equal(t, http.StatusCreated, w.status)
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestResponseWriter_InitialState(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	assert.Zero(t, w.status)
	assert.Zero(t, w.size)
	assert.False(t, w.wroteHeader)
}

// ---- Hijack ----

func TestResponseWriter_Hijack_Unsupported(t *testing.T) {
	w := newResponseWriter(httptest.NewRecorder())

	_, _, err := w.Hijack()

	require.ErrorIs(t, err, errHijackUnsupported)
	assert.Zero(t, w.status)
}

func TestResponseWriter_Hijack_RecordsSwitchingProtocols(t *testing.T) {
	server, client := net.Pipe()
	defer server.Close()
	defer client.Close()
	w := &responseWriter{ResponseWriter: &hijackableRecorder{ResponseRecorder: httptest.NewRecorder(), conn: server}}

	conn, rw, err := w.Hijack()

	require.NoError(t, err)
	assert.Equal(t, server, conn)
	assert.NotNil(t, rw)
	assert.Equal(t, http.StatusSwitchingProtocols, w.status)
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rr := httptest.NewRecorder()
	w := newResponseWriter(rr)

	assert.Equal(t, rr, w.Unwrap())
}
