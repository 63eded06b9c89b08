package podcast

import (
	"regexp"
	"strings"

	"github.com/cl-victor1/divinetalk/internal/models"
)

// verbatimChunkSize is how unmarked verbatim text is split for synthesis.
// TTS providers cap input length per call.
const verbatimChunkSize = 2000

var speakerMarker = regexp.MustCompile(`(?i)^speaker-[12]:\s*`)

// ParseScript turns raw LLM output into ordered dialogue lines.
//
// When the output carries explicit speaker-N: markers they are
// authoritative. Otherwise the legacy heuristic applies: the first
// double-newline segment is the model's scratchpad and is dropped, and
// the remaining segments alternate speakers starting with speaker-1.
// The heuristic misattributes speakers whenever the model breaks the
// expected paragraph cadence, which is why marked output is preferred.
func ParseScript(raw string) []models.DialogueLine {
	if marked := parseMarkedLines(raw); marked != nil {
		return marked
	}

	segments := strings.Split(raw, "\n\n")
	if len(segments) < 2 {
		return nil
	}

	// segments[0] is the scratchpad.
	lines := make([]models.DialogueLine, 0, len(segments)-1)
	for i, seg := range segments[1:] {
		speaker := models.Speaker1
		if i%2 == 1 {
			speaker = models.Speaker2
		}
		lines = append(lines, models.DialogueLine{Text: seg, Speaker: speaker})
	}

	return lines
}

// VerbatimScript converts user-authored text straight into dialogue lines
// without any LLM call. Text starting with a speaker-1: marker is split
// per line with each line's own marker deciding the speaker; unmarked
// text becomes fixed-size chunks narrated entirely by speaker-1.
func VerbatimScript(prompt string) []models.DialogueLine {
	if strings.HasPrefix(strings.ToLower(strings.TrimSpace(prompt)), "speaker-1:") {
		var lines []models.DialogueLine
		for _, line := range strings.Split(prompt, "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			text := strings.TrimSpace(speakerMarker.ReplaceAllString(line, ""))
			if text == "" {
				continue
			}
			speaker := models.Speaker1
			if strings.HasPrefix(strings.ToLower(strings.TrimSpace(line)), "speaker-2") {
				speaker = models.Speaker2
			}
			lines = append(lines, models.DialogueLine{Text: text, Speaker: speaker})
		}
		return lines
	}

	// Chunk on runes, not bytes: a byte-offset cut can split a multi-byte
	// character and hand the synthesizer invalid text.
	runes := []rune(prompt)
	var lines []models.DialogueLine
	for i := 0; i < len(runes); i += verbatimChunkSize {
		end := i + verbatimChunkSize
		if end > len(runes) {
			end = len(runes)
		}
		lines = append(lines, models.DialogueLine{Text: string(runes[i:end]), Speaker: models.Speaker1})
	}
	return lines
}

// parseMarkedLines parses output where every non-blank line starts with a
// speaker-N: marker. Returns nil when the output is not fully marked so
// the caller falls back to the paragraph heuristic.
func parseMarkedLines(raw string) []models.DialogueLine {
	var lines []models.DialogueLine
	for _, line := range strings.Split(raw, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if !speakerMarker.MatchString(trimmed) {
			return nil
		}
		speaker := models.Speaker1
		if strings.HasPrefix(strings.ToLower(trimmed), "speaker-2") {
			speaker = models.Speaker2
		}
		text := strings.TrimSpace(speakerMarker.ReplaceAllString(trimmed, ""))
		if text != "" {
			lines = append(lines, models.DialogueLine{Text: text, Speaker: speaker})
		}
	}
	if len(lines) == 0 {
		return nil
	}
	return lines
}

// totalCharacters is the transcript length counted against the tier's
// character limit.
func totalCharacters(lines []models.DialogueLine) int {
	total := 0
	for _, line := range lines {
		total += len(line.Text)
	}
	return total
}
