package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gm2dev/interviewhub-client/internal/model"
)

func shadowingJSON(id uuid.UUID, status model.ShadowingRequestStatus, reason string) string {
	payload := map[string]any{
		"id":       id,
		"shadower": map[string]any{"id": uuid.New(), "email": "shadow@example.com"},
		"status":   status,
	}
	if reason != "" {
		payload["reason"] = reason
	}
	data, _ := json.Marshal(payload)
	return string(data)
}

func TestShadowingRequests_Request(t *testing.T) {
	interviewID := uuid.New()
	requestID := uuid.New()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/interviews/"+interviewID.String()+"/shadowing-requests", r.URL.Path)
		fmt.Fprint(w, shadowingJSON(requestID, model.ShadowingPending, ""))
	})

	client := newTestClient(t, handler, &staticTokens{token: "tok"})
	request, err := NewShadowingRequests(client).Request(context.Background(), interviewID)

	require.NoError(t, err)
	assert.Equal(t, requestID, request.ID)
	assert.Equal(t, model.ShadowingPending, request.Status)
}

func TestShadowingRequests_Approve(t *testing.T) {
	id := uuid.New()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/shadowing-requests/"+id.String()+"/approve", r.URL.Path)
		fmt.Fprint(w, shadowingJSON(id, model.ShadowingApproved, ""))
	})

	client := newTestClient(t, handler, &staticTokens{})
	request, err := NewShadowingRequests(client).Approve(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, model.ShadowingApproved, request.Status)
}

func TestShadowingRequests_Cancel(t *testing.T) {
	id := uuid.New()
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shadowing-requests/"+id.String()+"/cancel", r.URL.Path)
		fmt.Fprint(w, shadowingJSON(id, model.ShadowingCancelled, ""))
	})

	client := newTestClient(t, handler, &staticTokens{})
	request, err := NewShadowingRequests(client).Cancel(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, model.ShadowingCancelled, request.Status)
}

func TestShadowingRequests_Reject_TrimsReason(t *testing.T) {
	id := uuid.New()
	var gotBody map[string]string
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/shadowing-requests/"+id.String()+"/reject", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		fmt.Fprint(w, shadowingJSON(id, model.ShadowingRejected, gotBody["reason"]))
	})

	client := newTestClient(t, handler, &staticTokens{})
	request, err := NewShadowingRequests(client).Reject(context.Background(), id, "  Not ready  ")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"reason": "Not ready"}, gotBody)
	assert.Equal(t, model.ShadowingRejected, request.Status)
	assert.Equal(t, "Not ready", request.Reason)
}

func TestShadowingRequests_Reject_BlankReason(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("a blank reason must never reach the network")
	})

	client := newTestClient(t, handler, &staticTokens{})

	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := NewShadowingRequests(client).Reject(context.Background(), uuid.New(), reason)
		assert.ErrorIs(t, err, model.ErrBlankReason, "reason %q", reason)
	}
}
