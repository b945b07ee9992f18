// services/groq_service.go
package services

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultGroqURL = "https://api.groq.com/openai/v1/chat/completions"

const chatSystemPrompt = "You are a helpful healthcare pcos lifestyle assistant named Alagi meaning beautiful. " +
	"Provide accurate and empathetic responses to user queries about PCOS, diet, exercise, and lifestyle."

// GroqService talks to the Groq chat-completions API (OpenAI wire
// shape). Every call is single-attempt with a hard timeout: 15s for
// chat, 30s for the longer weekly report narration.
type GroqService struct {
	apiURL       string
	token        string
	model        string
	chatClient   *http.Client
	reportClient *http.Client
}

func NewGroqService() *GroqService {
	return &GroqService{
		apiURL:       defaultGroqURL,
		token:        os.Getenv("GROQ_API_KEY"),
		model:        "llama-3.3-70b-versatile",
		chatClient:   &http.Client{Timeout: 15 * time.Second},
		reportClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []ChatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

func (g *GroqService) complete(client *http.Client, messages []ChatMessage, temperature float64) (string, error) {
	payload, err := json.Marshal(chatRequest{
		Model:       g.model,
		Messages:    messages,
		Temperature: temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal completion payload: %w", err)
	}

	req, err := http.NewRequest("POST", g.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("create completion request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+g.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		var ne net.Error
		if errors.As(err, &ne) && ne.Timeout() {
			return "", fmt.Errorf("%w: %v", ErrUpstreamTimeout, err)
		}
		return "", fmt.Errorf("%w: %v", ErrUpstreamStatus, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read completion response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: groq api %d: %s", ErrUpstreamStatus, resp.StatusCode, string(body))
	}

	var out chatResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return "", fmt.Errorf("%w: %v", ErrUpstreamDecode, err)
	}
	if len(out.Choices) == 0 || strings.TrimSpace(out.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("%w: no choices in response", ErrUpstreamDecode)
	}
	return out.Choices[0].Message.Content, nil
}

// Chat answers a single user message with the Alagi assistant prompt.
func (g *GroqService) Chat(userMessage string) (string, error) {
	return g.complete(g.chatClient, []ChatMessage{
		{Role: "system", Content: chatSystemPrompt},
		{Role: "user", Content: userMessage},
	}, 0.7)
}

// Narrate turns the aggregated 7-day summary JSON into the structured
// weekly report text.
func (g *GroqService) Narrate(summaryJSON string) (string, error) {
	return g.complete(g.reportClient, []ChatMessage{
		{Role: "system", Content: "You are a helpful healthcare assistant."},
		{Role: "user", Content: reportPrompt + "\n\n" + summaryJSON},
	}, 0.6)
}

const reportPrompt = `You are a helpful healthcare assistant. Given this JSON representing a user's previous 7 days, create a neat, positive, and structured weekly health report.
Use this format exactly for each section, filling with bullet points, summary, or an observation if data is missing.

1. Introduction
Give a brief week overview or positive greeting (optional).

2. Activity Summary
Bullet points highlighting exercise frequency, type, duration, steps, or active minutes.
Note improvements or consistency.
Say "Activity data unavailable" if missing.

3. Diet Summary
Bullet points for meal types, timing, foods consumed, portions, notable intakes (e.g. fruits, hydration).
Note healthy choices or patterns.
Say "Diet data unavailable" if missing.

4. Behavioral/Journal Insights
Bullet points for mood, stress, energy, sleep, and journal entries.
Show positive or mindful behaviors.
Say "Journal data unavailable" if missing.

5. Cycle Details (if applicable)
Bullet points about menstruation/cycle: start/end dates, symptoms, flow, irregularities.
Offer supportive notes.
Say "Cycle data unavailable" if missing.

6. Overall Positives and Suggestions
Summary paragraph or bullets on positives, with gentle suggestions for next week.`
