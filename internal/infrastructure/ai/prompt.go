package ai

import (
	"fmt"
	"strings"

	"github.com/Isha-commits965/wellness-tracker-backend/internal/domain/entity"
)

// maxContextEntries is how many earlier entries go into the prompt
const maxContextEntries = 3

var moodDescriptions = map[int]string{
	1:  "very low",
	2:  "low",
	3:  "somewhat low",
	4:  "below average",
	5:  "neutral",
	6:  "above average",
	7:  "good",
	8:  "very good",
	9:  "excellent",
	10: "outstanding",
}

var (
	positiveWords = []string{"happy", "good", "great", "excited", "grateful", "proud", "accomplished", "better", "relief"}
	negativeWords = []string{"sad", "angry", "frustrated", "worried", "anxious", "stressed", "overwhelmed", "tired"}
)

func buildPrompt(content string, moodBefore *int, previous []*entity.JournalEntry) string {
	var b strings.Builder

	b.WriteString("You are a compassionate and understanding AI journal companion. ")
	b.WriteString("Your role is to provide empathetic, supportive, and helpful responses to users' journal entries.\n\n")

	if len(previous) > 0 {
		if len(previous) > maxContextEntries {
			previous = previous[:maxContextEntries]
		}
		b.WriteString("Previous journal entries for context:\n")
		// oldest first
		for i := len(previous) - 1; i >= 0; i-- {
			fmt.Fprintf(&b, "%s: %s\n", previous[i].Date, previous[i].Content)
		}
		b.WriteString("\n")
	}

	if moodBefore != nil {
		desc, ok := moodDescriptions[*moodBefore]
		if !ok {
			desc = "neutral"
		}
		fmt.Fprintf(&b, "The user mentioned their mood was %s (%d/10) before writing this entry.\n\n", desc, *moodBefore)
	}

	fmt.Fprintf(&b, "User's journal entry:\n%q\n\n", content)

	b.WriteString(`Please respond with:
1. Acknowledgment and validation of their feelings
2. Gentle insights or observations about their situation
3. Encouragement and support
4. Practical suggestions if appropriate
5. A question to encourage further reflection

Keep your response warm, empathetic, and conversational. Avoid being overly clinical or giving unsolicited advice. Focus on being a supportive listener who understands and cares.

Your response should be 2-3 paragraphs long and end with a thoughtful question to encourage continued reflection.`)

	return b.String()
}

// EstimateMoodAfter nudges mood_before by one point toward the tone of the
// content, counting each listed word at most once. Nil without mood_before.
func EstimateMoodAfter(content string, moodBefore *int) *int {
	if moodBefore == nil {
		return nil
	}

	lower := strings.ToLower(content)
	positive := countPresent(lower, positiveWords)
	negative := countPresent(lower, negativeWords)

	mood := *moodBefore
	switch {
	case positive > negative:
		mood = min(entity.MaxScore, mood+1)
	case negative > positive:
		mood = max(entity.MinScore, mood-1)
	}
	return &mood
}

func countPresent(text string, words []string) int {
	n := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			n++
		}
	}
	return n
}

// Suggestions picks follow-up ideas from the mood_before band
func Suggestions(moodBefore *int) []string {
	switch {
	case moodBefore != nil && *moodBefore <= 4:
		return []string{
			"Try a short breathing exercise",
			"Write down three things you're grateful for",
			"Consider reaching out to a friend",
		}
	case moodBefore != nil && *moodBefore >= 7:
		return []string{
			"Share your positive energy with someone else",
			"Set a small goal for tomorrow",
			"Reflect on what contributed to your good mood",
		}
	default:
		return []string{
			"Take a short walk outside",
			"Practice mindfulness for 5 minutes",
			"Write about what you need most right now",
		}
	}
}
