package quest

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/saulo-duarte/chronos-quests-lambda/internal/config"
)

type Service interface {
	Available() bool
	GenerateQuests(ctx context.Context, req GoalRequest) ([]Quest, error)
	RefreshQuest(ctx context.Context, req RefreshRequest) (*Quest, error)
}

// DifficultyPicker chooses the authoritative difficulty for a refreshed quest.
type DifficultyPicker func() Difficulty

func RandomDifficulty() Difficulty {
	return AllDifficulties[rand.IntN(len(AllDifficulties))]
}

type service struct {
	provider Provider
	pick     DifficultyPicker
}

// NewService accepts a nil provider; every call then fails with ErrProviderUnavailable.
func NewService(provider Provider, pick DifficultyPicker) Service {
	if pick == nil {
		pick = RandomDifficulty
	}
	return &service{provider: provider, pick: pick}
}

func (s *service) Available() bool {
	return s.provider != nil
}

func (s *service) GenerateQuests(ctx context.Context, req GoalRequest) ([]Quest, error) {
	if !s.Available() {
		return nil, ErrProviderUnavailable
	}
	goal := strings.TrimSpace(req.Goal)
	if goal == "" {
		return nil, fmt.Errorf("%w: goal is required", ErrValidation)
	}

	log := config.WithContext(ctx)

	raw, err := s.provider.Complete(ctx, BuildGenerationPrompt(goal))
	if err != nil {
		return nil, err
	}

	quests, err := NormalizeQuestSet(raw)
	if err != nil {
		return nil, err
	}

	log.Infof("Generated %d quests", len(quests))
	return quests, nil
}

func (s *service) RefreshQuest(ctx context.Context, req RefreshRequest) (*Quest, error) {
	if !s.Available() {
		return nil, ErrProviderUnavailable
	}
	goal := strings.TrimSpace(req.Goal)
	if goal == "" || len(req.ExistingQuests) == 0 {
		return nil, fmt.Errorf("%w: goal and existing_quests are required", ErrValidation)
	}

	log := config.WithContext(ctx)

	// Sampled once: the same value constrains the prompt and is returned to the caller.
	difficulty := s.pick()

	prompt := BuildRefreshPrompt(goal, existingTexts(req.ExistingQuests), difficulty)
	raw, err := s.provider.Complete(ctx, prompt)
	if err != nil {
		return nil, err
	}

	text, err := NormalizeRefreshText(raw)
	if err != nil {
		return nil, err
	}

	q := NewQuest(text, difficulty)
	log.WithField("difficulty", q.Difficulty).Info("Refreshed quest")
	return &q, nil
}

// existingTexts collects the non-empty "text" of each entry, skipping the rest.
func existingTexts(entries []json.RawMessage) []string {
	texts := make([]string, 0, len(entries))
	for _, e := range entries {
		var entry struct {
			Text string `json:"text"`
		}
		if err := json.Unmarshal(e, &entry); err != nil {
			continue
		}
		if strings.TrimSpace(entry.Text) != "" {
			texts = append(texts, entry.Text)
		}
	}
	return texts
}
