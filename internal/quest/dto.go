package quest

import "encoding/json"

type GoalRequest struct {
	Goal string `json:"goal"`
}

// RefreshRequest keeps existing quests raw: only their "text" is read and
// malformed entries are skipped instead of failing the request.
type RefreshRequest struct {
	Goal           string            `json:"goal"`
	ExistingQuests []json.RawMessage `json:"existing_quests"`
}

type QuestSetResponse struct {
	Quests []Quest `json:"quests"`
}

type RefreshResponse struct {
	NewQuest Quest `json:"new_quest"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Provider string `json:"provider"`
}
