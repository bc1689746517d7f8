package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGroqClient(t *testing.T) {
	client := NewGroqClient("test-key", "llama-3.3-70b-versatile")
	require.NotNil(t, client)
	assert.Equal(t, "llama-3.3-70b-versatile", client.GetModel())
}

func TestGroqClientGenerateInference(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "POST", r.Method)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var request groqRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&request))
		// System prompt rides as the leading message.
		require.NotEmpty(t, request.Messages)
		assert.Equal(t, "system", request.Messages[0].Role)
		assert.Equal(t, "be brief", request.Messages[0].Content)

		response := groqResponse{
			Choices: []groqChoice{{Message: groqMessage{Content: "Hello from Groq mock"}}},
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}))
	defer server.Close()

	client := NewGroqClient("test-key", "llama-3.3-70b-versatile")
	client.url = server.URL

	var got string
	err := client.GenerateInference(context.Background(),
		[]Message{{Role: "user", Content: "hi"}},
		func(chunk string) error {
			got += chunk
			return nil
		},
		WithSystemPrompt("be brief"),
	)

	require.NoError(t, err)
	assert.Equal(t, "Hello from Groq mock", got)
}

func TestGroqClientGenerateInference_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(groqResponse{})
	}))
	defer server.Close()

	client := NewGroqClient("test-key", "llama-3.3-70b-versatile")
	client.url = server.URL

	err := client.GenerateInference(context.Background(),
		[]Message{{Role: "user", Content: "hi"}},
		func(chunk string) error { return nil },
	)

	assert.ErrorContains(t, err, "no choices in response")
}
