package quest

import (
	"encoding/json"
	"fmt"
	"strings"
	"unicode"
)

const questSetSize = 3

const codeFence = "```"

// stripCodeFences removes a leading fence (bare or language-tagged, e.g. ```json)
// and a trailing fence from model output.
func stripCodeFences(raw string) string {
	s := strings.TrimSpace(raw)
	if strings.HasPrefix(s, codeFence) {
		s = strings.TrimPrefix(s, codeFence)
		s = strings.TrimLeftFunc(s, isFenceTagRune)
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, codeFence)
	return strings.TrimSpace(s)
}

func isFenceTagRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-' || r == '_' || r == '+'
}

func decodeModelJSON(raw string) ([]byte, error) {
	clean := []byte(stripCodeFences(raw))
	if !json.Valid(clean) {
		return nil, ErrMalformedResponse
	}
	return clean, nil
}

// rawQuest holds one untrusted entry of a generation response.
type rawQuest struct {
	Text       json.RawMessage `json:"text"`
	Difficulty json.RawMessage `json:"difficulty"`
	XP         json.RawMessage `json:"xp"`
}

// NormalizeQuestSet validates a generation response. Difficulty and xp are
// passed through as the model declared them, but must be a known tier and an integer.
func NormalizeQuestSet(raw string) ([]Quest, error) {
	body, err := decodeModelJSON(raw)
	if err != nil {
		return nil, err
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: response is not a JSON object", ErrSchemaViolation)
	}
	rawQuests, ok := envelope["quests"]
	if !ok {
		return nil, fmt.Errorf("%w: missing \"quests\"", ErrSchemaViolation)
	}

	var entries []rawQuest
	if err := json.Unmarshal(rawQuests, &entries); err != nil {
		return nil, fmt.Errorf("%w: \"quests\" is not a list of objects", ErrSchemaViolation)
	}
	if len(entries) != questSetSize {
		return nil, fmt.Errorf("%w: expected %d quests, got %d", ErrSchemaViolation, questSetSize, len(entries))
	}

	quests := make([]Quest, 0, len(entries))
	for i, e := range entries {
		q, err := e.toQuest()
		if err != nil {
			return nil, fmt.Errorf("quest %d: %w", i, err)
		}
		quests = append(quests, q)
	}
	return quests, nil
}

func (e rawQuest) toQuest() (Quest, error) {
	text, err := requiredText(e.Text)
	if err != nil {
		return Quest{}, err
	}

	var difficulty Difficulty
	if err := json.Unmarshal(e.Difficulty, &difficulty); err != nil || !difficulty.IsValid() {
		return Quest{}, fmt.Errorf("%w: \"difficulty\" must be one of Easy, Medium, Hard", ErrSchemaViolation)
	}

	var xp *int
	if err := json.Unmarshal(e.XP, &xp); err != nil || xp == nil {
		return Quest{}, fmt.Errorf("%w: \"xp\" must be an integer", ErrSchemaViolation)
	}

	return Quest{Text: text, Difficulty: difficulty, XP: *xp}, nil
}

// requiredText decodes a non-empty string field. A missing field arrives as nil.
func requiredText(raw json.RawMessage) (string, error) {
	if raw == nil {
		return "", fmt.Errorf("%w: missing \"text\"", ErrSchemaViolation)
	}
	var text string
	if err := json.Unmarshal(raw, &text); err != nil {
		return "", fmt.Errorf("%w: \"text\" is not a string", ErrSchemaViolation)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: empty \"text\"", ErrSchemaViolation)
	}
	return text, nil
}

// NormalizeRefreshText extracts the quest text from a refresh response. Any
// difficulty or xp in the payload is ignored.
func NormalizeRefreshText(raw string) (string, error) {
	body, err := decodeModelJSON(raw)
	if err != nil {
		return "", err
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return "", fmt.Errorf("%w: response is not a JSON object", ErrSchemaViolation)
	}
	return requiredText(payload["text"])
}
