package quest

import (
	"encoding/json"
	"fmt"
)

const generationPrompt = `
You are a productivity assistant for a gamified app. Break down the user's goal into exactly 3 actionable mini-quests.
The response MUST be a valid JSON object with a single key "quests" which holds a list of 3 quest objects.
Each object must have exactly three keys:
1. "text": A string containing the quest description. The description must be concise and actionable, ideally a single sentence (2 sentences maximum).
2. "difficulty": A string that is ONLY one of "Easy", "Medium", or "Hard".
3. "xp": An integer representing the reward. Assign %d for "Easy", %d for "Medium", or %d for "Hard".
Do not add any other text, explanations, or markdown.
User Goal: "%s"
`

const refreshPrompt = `
You are a productivity assistant. Your task is to generate a single new "mini-quest" to help a user achieve their main goal.

The quest text MUST be concise and actionable, ideally a single sentence (2 sentences maximum).
Crucially, you MUST generate a quest with a difficulty of "%s". Difficulty is ONLY one of "Easy", "Medium", or "Hard".
The new quest MUST NOT be similar to any of the quests in the "existing_quests" list.

The response MUST be a single, valid JSON object. It must have a "text" key containing the quest description.
Do not add any other text, explanations, or markdown.

User's Main Goal: "%s"
Existing Quests (do not repeat these): %s
`

func BuildGenerationPrompt(goal string) string {
	return fmt.Sprintf(generationPrompt, Easy.XP(), Medium.XP(), Hard.XP(), goal)
}

func BuildRefreshPrompt(goal string, existingTexts []string, difficulty Difficulty) string {
	if existingTexts == nil {
		existingTexts = []string{}
	}
	existing, _ := json.Marshal(existingTexts)
	return fmt.Sprintf(refreshPrompt, difficulty, goal, existing)
}
