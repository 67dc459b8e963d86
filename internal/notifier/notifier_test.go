package notifier

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/purehouse/post-service/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Dispatch(t *testing.T) {
	var gotPath string
	var gotBody []byte

	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotBody, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer sink.Close()

	client := New(config.NotifierConfig{BaseURL: sink.URL + "/", Timeout: time.Second})

	err := client.Dispatch(context.Background(), Event{
		Level:   LevelSuccess,
		Message: "post created successfully",
		Metadata: map[string]interface{}{
			"event": EventPostCreated,
			"id":    "abc",
			"title": "t",
		},
	})
	require.NoError(t, err)

	assert.Equal(t, "/logs", gotPath)

	var payload map[string]interface{}
	require.NoError(t, json.Unmarshal(gotBody, &payload))
	assert.Equal(t, "SUCCESS", payload["level"])
	assert.Equal(t, "post created successfully", payload["message"])

	metadata, ok := payload["metadata"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "post.created", metadata["event"])
	assert.Equal(t, "abc", metadata["id"])
}

func TestClient_Dispatch_NoBaseURLIsNoop(t *testing.T) {
	client := New(config.NotifierConfig{})

	err := client.Dispatch(context.Background(), Event{Level: LevelInfo, Message: "x"})

	assert.NoError(t, err)
}

func TestClient_Dispatch_NonSuccessStatus(t *testing.T) {
	sink := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer sink.Close()

	client := New(config.NotifierConfig{BaseURL: sink.URL, Timeout: time.Second})

	err := client.Dispatch(context.Background(), Event{Level: LevelWarn, Message: "x"})

	assert.Error(t, err)
}

func TestClient_Dispatch_UnreachableSink(t *testing.T) {
	client := New(config.NotifierConfig{BaseURL: "http://127.0.0.1:1", Timeout: time.Millisecond * 200})

	err := client.Dispatch(context.Background(), Event{Level: LevelWarn, Message: "x"})

	assert.Error(t, err)
}
