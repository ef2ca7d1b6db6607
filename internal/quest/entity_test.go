package quest_test

import (
	"testing"

	"github.com/saulo-duarte/chronos-quests-lambda/internal/quest"
)

func TestDifficultyXP(t *testing.T) {
	want := map[quest.Difficulty]int{
		quest.Easy:   20,
		quest.Medium: 35,
		quest.Hard:   50,
	}
	for d, xp := range want {
		if !d.IsValid() {
			t.Errorf("%s should be valid", d)
		}
		if got := d.XP(); got != xp {
			t.Errorf("%s: expected xp %d, got %d", d, xp, got)
		}
	}

	if quest.Difficulty("Legendary").IsValid() {
		t.Error("unknown difficulty should not be valid")
	}
	if got := quest.Difficulty("easy").XP(); got != 0 {
		t.Errorf("difficulty lookup is case sensitive, expected 0, got %d", got)
	}
}

func TestNewQuestDerivesXP(t *testing.T) {
	q := quest.NewQuest("Practice chords for 10 minutes", quest.Hard)
	if q.XP != 50 || q.Difficulty != quest.Hard {
		t.Errorf("unexpected quest: %+v", q)
	}
}
