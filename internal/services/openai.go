package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log"
	"regexp"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/cl-victor1/divinetalk/internal/templates"
)

// OpenAIService handles script generation, episode metadata, the
// Standard/HD speech models and DALL-E cover art.
type OpenAIService struct {
	client *openai.Client
}

// Ensure OpenAIService implements SpeechSynthesizer at compile time.
var _ SpeechSynthesizer = (*OpenAIService)(nil)

func NewOpenAIService(apiKey string) *OpenAIService {
	return &OpenAIService{
		client: openai.NewClient(apiKey),
	}
}

// blockedTextModels are remapped to gpt-4o: reasoning models reject the
// multi-turn user-message prompt shape, and retired snapshots 404.
var blockedTextModels = map[string]bool{
	"o1-mini-2024-09-12": true,
	"o1-mini":            true,
	"o1-preview":         true,
	"chatgpt-4o-latest":  true,
	"gpt-4-turbo":        true,
}

func resolveTextModel(model string) string {
	if blockedTextModels[model] {
		return "gpt-4o"
	}
	return model
}

// GenerateScript asks the LLM to write the podcast dialogue. The message
// sequence walks the model through the template stages in order:
// brainstorm, outline, then the dialogue itself, capped at wordLimit
// words. Returns the raw completion text; the caller parses it into
// dialogue lines.
func (s *OpenAIService) GenerateScript(ctx context.Context, tmpl templates.Template, inputText string, wordLimit int, textModel string) (string, error) {
	messages := []openai.ChatCompletionMessage{
		{Role: openai.ChatMessageRoleSystem, Content: tmpl.Intro},
		{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(`Here is the original input text:
      <input_text>
      %s
      </input_text>
      %s`, inputText, tmpl.TextInstructions)},
		{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(`<scratchpad>
      %s
      </scratchpad>`, tmpl.ScratchPad)},
		{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(`<prelude_dialog>
      %s
      </prelude_dialog>`, tmpl.Prelude)},
		{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(`<podcast_dialogue>
        %s
        </podcast_dialogue>`, tmpl.Dialog)},
		{Role: openai.ChatMessageRoleUser, Content: fmt.Sprintf(`<podcast_length>
          The podcast should have no more than %d words.
          </podcast_length>`, wordLimit)},
	}

	model := resolveTextModel(textModel)
	log.Printf("[OpenAI] Generating script (model=%s, inputLen=%d, wordLimit=%d)",
		model, len(inputText), wordLimit)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:    model,
		Messages: messages,
	})
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no script returned from openai")
	}

	return resp.Choices[0].Message.Content, nil
}

var (
	titleRe       = regexp.MustCompile(`Title: (.*)`)
	descriptionRe = regexp.MustCompile(`Description: (.*)`)
)

// GenerateTitleAndDescription produces episode metadata from the original
// prompt and a dialogue excerpt. Parse failures fall back to truncating
// the prompt instead of erroring: metadata must never sink a finished
// episode.
func (s *OpenAIService) GenerateTitleAndDescription(ctx context.Context, prompt, dialogue string) (title, description string, err error) {
	excerpt := dialogue
	if len(excerpt) > 1000 {
		excerpt = excerpt[:1000]
	}

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a podcast metadata expert. Your task is to generate an engaging title and description based on the content provided.",
			},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(`Please generate a concise, engaging title (max 100 characters) and a compelling description (max 500 characters) for a podcast with the following content:

Original prompt:
%s

Generated dialogue excerpt:
%s

Format your response exactly as follows:
Title: [your title here]
Description: [your description here]`, prompt, excerpt),
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", "", fmt.Errorf("no metadata returned from openai")
	}

	content := resp.Choices[0].Message.Content
	title = truncate(prompt, 100)
	description = truncate(prompt, 500)
	if m := titleRe.FindStringSubmatch(content); m != nil {
		title = strings.TrimSpace(m[1])
	}
	if m := descriptionRe.FindStringSubmatch(content); m != nil {
		description = strings.TrimSpace(m[1])
	}

	return title, description, nil
}

// GenerateTitle produces a short title from a conversation transcript
// summary, falling back to the truncated summary on parse failure.
func (s *OpenAIService) GenerateTitle(ctx context.Context, summary string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: "You are a podcast metadata expert. Your task is to generate an engaging title based on the content provided.",
			},
			{
				Role: openai.ChatMessageRoleUser,
				Content: fmt.Sprintf(`Please generate a concise, engaging title (max 80 characters) for a podcast with the provided transcript summary:

Transcript Summary:
%s

Format your response exactly as follows:
  Title: [your title here]`, summary),
			},
		},
		Temperature: 0.7,
	})
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no title returned from openai")
	}

	if m := titleRe.FindStringSubmatch(resp.Choices[0].Message.Content); m != nil {
		return strings.TrimSpace(m[1]), nil
	}
	return strings.TrimSpace(truncate(summary, 80)), nil
}

const assistantSystemPrompt = `You are NotebookLM Academic Assistant, an AI designed to help with academic content organization, podcast creation, and knowledge optimization. You specialize in:

1. Podcast Script Enhancement:
   - Refining podcast scripts for natural conversation flow
   - Improving dialogue transitions and pacing
   - Suggesting better word choices and expressions
   - Balancing speaking time between hosts
   - Adding engaging hooks and conclusions
   - Optimizing script structure for different podcast formats
   - Adapting tone for target audiences
   - Incorporating storytelling elements
   - Adding appropriate transitions and segues
   - Suggesting sound effect or music cue placements

2. Explain complex concepts from textbooks and research papers using simple terms and real-world examples
3. Create well-structured presentation outlines with key points and supporting content
4. Analyze brainstorming notes, market research, and competitor analysis to identify trends and opportunities
5. Review and improve podcast scripts with constructive suggestions
6. Organize and structure academic notes using effective note-taking methodologies
7. Summarize academic content while preserving key concepts and relationships
8. Create mind maps and concept hierarchies from academic materials
9. Generate study guides and revision materials from lecture notes
10. Extract and organize key references and citations from academic papers
11. Synthesize information from multiple sources into coherent study materials

Always maintain a helpful, professional tone while making content accessible and engaging. For academic content, ensure accuracy and maintain scholarly standards while presenting information in a clear, structured format. When reviewing podcast scripts, focus on improving engagement, flow, and natural conversation patterns.`

// Chat answers one academic-assistant message.
func (s *OpenAIService) Chat(ctx context.Context, content string) (string, error) {
	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: "gpt-4o-mini",
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: assistantSystemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: content},
		},
		Temperature: 0.7,
		MaxTokens:   2000,
	})
	if err != nil {
		return "", fmt.Errorf("openai request failed: %w", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("no response from openai")
	}

	return resp.Choices[0].Message.Content, nil
}

// Synthesize converts one dialogue line to MP3 via the OpenAI speech API.
// Implements the SpeechSynthesizer interface for the Standard/HD models.
func (s *OpenAIService) Synthesize(ctx context.Context, req SpeechRequest) ([]byte, error) {
	log.Printf("[OpenAI] Generating speech (voice=%s, model=%s, textLen=%d)",
		req.Voice, req.ModelID, len(req.Text))

	resp, err := s.client.CreateSpeech(ctx, openai.CreateSpeechRequest{
		Model: openai.SpeechModel(req.ModelID),
		Voice: openai.SpeechVoice(req.Voice),
		Input: req.Text,
	})
	if err != nil {
		return nil, fmt.Errorf("openai speech request failed: %w", err)
	}
	defer resp.Close()

	audioData, err := io.ReadAll(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to read openai audio response: %w", err)
	}

	if len(audioData) == 0 {
		return nil, fmt.Errorf("openai returned empty audio")
	}

	return audioData, nil
}

// GenerateCoverImage creates podcast cover art with DALL-E 2 and returns
// the PNG bytes. The b64 response format is used because DALL-E's hosted
// URLs expire; the caller re-uploads the image to permanent storage.
func (s *OpenAIService) GenerateCoverImage(ctx context.Context, prompt string) ([]byte, error) {
	resp, err := s.client.CreateImage(ctx, openai.ImageRequest{
		Model:          openai.CreateImageModelDallE2,
		Prompt:         fmt.Sprintf("Professional podcast cover art: %s", prompt),
		N:              1,
		Size:           openai.CreateImageSize512x512,
		ResponseFormat: openai.CreateImageResponseFormatB64JSON,
	})
	if err != nil {
		return nil, fmt.Errorf("openai image request failed: %w", err)
	}

	if len(resp.Data) == 0 || resp.Data[0].B64JSON == "" {
		return nil, fmt.Errorf("no image returned from openai")
	}

	data, err := base64.StdEncoding.DecodeString(resp.Data[0].B64JSON)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image data: %w", err)
	}

	return data, nil
}

func truncate(s string, max int) string {
	if len(s) > max {
		return s[:max]
	}
	return s
}
