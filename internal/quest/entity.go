package quest

type Difficulty string

const (
	Easy   Difficulty = "Easy"
	Medium Difficulty = "Medium"
	Hard   Difficulty = "Hard"
)

var AllDifficulties = []Difficulty{
	Easy,
	Medium,
	Hard,
}

var xpByDifficulty = map[Difficulty]int{
	Easy:   20,
	Medium: 35,
	Hard:   50,
}

func (d Difficulty) IsValid() bool {
	_, ok := xpByDifficulty[d]
	return ok
}

// XP returns the fixed reward for d, or 0 for an unknown tier.
func (d Difficulty) XP() int {
	return xpByDifficulty[d]
}

type Quest struct {
	Text       string     `json:"text"`
	Difficulty Difficulty `json:"difficulty"`
	XP         int        `json:"xp"`
}

// NewQuest builds a quest whose reward is derived from the difficulty table.
func NewQuest(text string, d Difficulty) Quest {
	return Quest{
		Text:       text,
		Difficulty: d,
		XP:         d.XP(),
	}
}
