package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondBadRequest(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondBadRequest(rec, "postId is required")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, ErrorResponse{Status: "error", Message: "postId is required"}, body)
}

func TestRespondMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	RespondMethodNotAllowed(rec, http.MethodPost)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
	assert.JSONEq(t, `{"status":"error","message":"method not allowed"}`, rec.Body.String())
}
