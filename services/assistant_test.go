package services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func assistantServer(t *testing.T, reply string, status int) (*Assistant, *[]string) {
	t.Helper()
	prompts := &[]string{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Prompt string `json:"prompt"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		*prompts = append(*prompts, req.Prompt)

		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(map[string]string{"text": reply})
	}))
	t.Cleanup(server.Close)

	return NewAssistant(server.URL, "test-key"), prompts
}

func TestAssistantChat(t *testing.T) {
	a, prompts := assistantServer(t, "Try restocking the beer fridge before the evening rush.", http.StatusOK)

	reply := a.Chat("What should I prep for tonight?", []string{"Staff: busy friday expected"})
	assert.Equal(t, "Try restocking the beer fridge before the evening rush.", reply)

	assert.Len(t, *prompts, 1)
	assert.Contains(t, (*prompts)[0], "What should I prep for tonight?")
	assert.Contains(t, (*prompts)[0], "busy friday expected")
}

func TestAssistantDescribeProduct(t *testing.T) {
	a, prompts := assistantServer(t, "Silky prawn parcels with a chive snap.", http.StatusOK)

	text := a.DescribeProduct("Prawn & Chive Dumplings", "Dumplings")
	assert.Equal(t, "Silky prawn parcels with a chive snap.", text)
	assert.Contains(t, (*prompts)[0], "Prawn & Chive Dumplings")
}

func TestAssistantFallsBackWhenUnconfigured(t *testing.T) {
	a := NewAssistant("", "")

	assert.Equal(t, fallbackChatReply, a.Chat("hello", nil))
	assert.Equal(t, fallbackDescription, a.DescribeProduct("Vegetable Bun", "Sides"))
}

func TestAssistantFallsBackOnEndpointFailure(t *testing.T) {
	a, _ := assistantServer(t, "ignored", http.StatusInternalServerError)

	assert.Equal(t, fallbackChatReply, a.Chat("hello", nil))
	assert.Equal(t, fallbackDescription, a.DescribeProduct("Vegetable Bun", "Sides"))
}

func TestAssistantEmptyReplyGetsCannedText(t *testing.T) {
	a, _ := assistantServer(t, "   ", http.StatusOK)

	assert.Equal(t, emptyChatReply, a.Chat("hello", nil))
	assert.Equal(t, emptyDescription, a.DescribeProduct("Vegetable Bun", "Sides"))
}

func TestAssistantSendsAuthHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_ = json.NewEncoder(w).Encode(map[string]string{"text": "ok"})
	}))
	t.Cleanup(server.Close)

	a := NewAssistant(server.URL, "secret-key")
	a.Chat("hello", nil)
	assert.True(t, strings.HasSuffix(gotAuth, "secret-key"))
}
