package agent

import (
	"context"
	"fmt"

	"google.golang.org/genai"
)

const analystModel = "gemini-2.5-flash"

const analystInstruction = `You are a fixed-income analyst covering Czech
government bonds. You are given the current benchmark table as a quant JSON
document (tenor, ACT/360 days, yield in percent, discount factor). Answer
questions about the curve's shape, steepness, inversions and what they
suggest, in a few concise sentences. Do not invent data points that are not
in the document.`

// Analyst is a chat with the curve commentary model, seeded with the
// current quant JSON document.
type Analyst struct {
	quantJSON string
	chat      *genai.Chat
}

// NewAnalyst returns an analyst for the given quant JSON document.
func NewAnalyst(quantJSON string) *Analyst {
	return &Analyst{quantJSON: quantJSON}
}

// Start creates the chat session and seeds it with the curve data.
func (a *Analyst) Start(ctx context.Context, client *genai.Client) error {
	config := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: analystInstruction}},
		},
	}
	chat, err := client.Chats.Create(ctx, analystModel, config, nil)
	if err != nil {
		return err
	}
	a.chat = chat

	seed := "Here is the current curve:\n" + a.quantJSON
	if _, err := chat.Send(ctx, &genai.Part{Text: seed}); err != nil {
		return fmt.Errorf("seeding analyst with curve data: %w", err)
	}
	return nil
}

// Ask is a simple wrapper on top of Chat.Send returning the model's text.
func (a *Analyst) Ask(ctx context.Context, question string) (string, error) {
	resp, err := a.chat.Send(ctx, &genai.Part{Text: question})
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from analyst")
	}
	return resp.Candidates[0].Content.Parts[0].Text, nil
}
