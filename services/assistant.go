package services

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/cosmodumplings/cosmo-pos/utils"
)

// Canned replies served when the model endpoint is unconfigured, unreachable
// or returns nothing. The assistant is advisory only, so it degrades to these
// instead of surfacing an error to the counter.
const (
	fallbackChatReply   = "Sorry, I am offline momentarily."
	emptyChatReply      = "I'm having trouble connecting to the brain right now."
	fallbackDescription = "Freshly prepared in our kitchen."
	emptyDescription    = "Delicious homemade style."
)

const assistantContext = "You are a helpful AI assistant for Cosmo Dumplings restaurant staff. " +
	"You help with recipes, customer service tips, and stock advice. " +
	"Keep answers concise and professional."

// Assistant proxies staff questions and menu-copy generation to an external
// text-generation endpoint. Same delivery contract as the notifier: the call
// is strictly best-effort and every failure mode yields usable text.
type Assistant struct {
	Client   *http.Client
	Endpoint string
	APIKey   string
}

func NewAssistant(endpoint, apiKey string) *Assistant {
	return &Assistant{
		Client:   &http.Client{Timeout: 15 * time.Second},
		Endpoint: endpoint,
		APIKey:   apiKey,
	}
}

// Chat answers a staff question, folding recent history into the prompt.
func (a *Assistant) Chat(message string, history []string) string {
	prompt := assistantContext
	if len(history) > 0 {
		prompt += "\n\nConversation so far:\n" + strings.Join(history, "\n")
	}
	prompt += "\n\nUser Question: " + message

	reply, ok := a.generate(prompt)
	if !ok {
		return fallbackChatReply
	}
	if reply == "" {
		return emptyChatReply
	}
	return reply
}

// DescribeProduct writes a short menu description for a catalog item.
func (a *Assistant) DescribeProduct(name, category string) string {
	prompt := "Write a short, appetizing, modern menu description (max 20 words) for a restaurant item.\n" +
		"Item Name: " + name + "\n" +
		"Category: " + category + "\n" +
		"Style: Asian Fusion, Modern, Delicious."

	text, ok := a.generate(prompt)
	if !ok {
		return fallbackDescription
	}
	if text == "" {
		return emptyDescription
	}
	return text
}

// generate posts the prompt and returns the text plus whether the exchange
// itself succeeded; an empty reply from a healthy endpoint is reported as
// success so the caller can pick the right canned text.
func (a *Assistant) generate(prompt string) (string, bool) {
	if a.Endpoint == "" {
		return "", false
	}

	body, err := json.Marshal(map[string]string{"prompt": prompt})
	if err != nil {
		return "", false
	}

	req, err := http.NewRequest(http.MethodPost, a.Endpoint, bytes.NewReader(body))
	if err != nil {
		return "", false
	}
	req.Header.Set("Content-Type", "application/json")
	if a.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+a.APIKey)
	}

	resp, err := a.Client.Do(req)
	if err != nil {
		utils.ErrorLogger.Printf("assistant request failed: %v", err)
		return "", false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		utils.ErrorLogger.Printf("assistant endpoint returned %d", resp.StatusCode)
		return "", false
	}

	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		utils.ErrorLogger.Printf("assistant response unreadable: %v", err)
		return "", false
	}
	return strings.TrimSpace(out.Text), true
}
