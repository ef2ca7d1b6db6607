package quest_test

import (
	"strings"
	"testing"

	"github.com/saulo-duarte/chronos-quests-lambda/internal/quest"
)

func TestBuildGenerationPrompt(t *testing.T) {
	p := quest.BuildGenerationPrompt("Learn to play guitar")

	for _, want := range []string{
		`User Goal: "Learn to play guitar"`,
		"exactly 3 actionable mini-quests",
		`ONLY one of "Easy", "Medium", or "Hard"`,
		`Assign 20 for "Easy", 35 for "Medium", or 50 for "Hard"`,
		`single key "quests"`,
		"Do not add any other text, explanations, or markdown.",
	} {
		if !strings.Contains(p, want) {
			t.Errorf("generation prompt is missing %q", want)
		}
	}
}

func TestBuildRefreshPrompt(t *testing.T) {
	t.Run("EmbedsDifficultyAndExistingTexts", func(t *testing.T) {
		p := quest.BuildRefreshPrompt("Run a marathon", []string{"Buy running shoes", `Say "hi" to a coach`}, quest.Medium)

		for _, want := range []string{
			`User's Main Goal: "Run a marathon"`,
			`MUST generate a quest with a difficulty of "Medium"`,
			`["Buy running shoes","Say \"hi\" to a coach"]`,
			`"text" key`,
			"Do not add any other text, explanations, or markdown.",
		} {
			if !strings.Contains(p, want) {
				t.Errorf("refresh prompt is missing %q", want)
			}
		}
	})

	t.Run("NoExistingTexts", func(t *testing.T) {
		p := quest.BuildRefreshPrompt("Run a marathon", nil, quest.Easy)
		if !strings.Contains(p, "(do not repeat these): []") {
			t.Errorf("expected an empty JSON list for missing texts, got:\n%s", p)
		}
	})
}
