package service

import "fmt"

// Generation requests. Field invariants (non-empty after trimming, valid
// duration) are enforced at the controller binding layer; the builders trust
// their input.

type RoadmapRequest struct {
	Topic          string
	Duration       string // e.g. "4 Weeks", "2 Months"
	KnowledgeLevel string // Absolute Beginner | Beginner | Moderate | Expert
}

type QuizRequest struct {
	Course      string
	Topic       string
	Subtopic    string
	Description string
}

type ResourceRequest struct {
	Course      string
	Description string
	Time        string
}

// buildRoadmapPrompt is pure and deterministic: the same request always
// produces the same prompt text.
func buildRoadmapPrompt(req RoadmapRequest) string {
	return fmt.Sprintf(`You are an expert curriculum designer. Create a week-by-week learning roadmap for the topic "%s", to be completed in %s, for a learner at the "%s" level.

Requirements:
- Plan at least 4 weeks.
- Each week must have a topic and 3 to 5 subtopics.
- Each subtopic needs a short description and an estimated time (e.g. "2 hours").

Respond with JSON only, no prose and no Markdown fences, exactly in this shape:
[
  {"week": 1, "topic": "...", "subtopics": [{"subtopic": "...", "description": "...", "time": "..."}]}
]`, req.Topic, req.Duration, req.KnowledgeLevel)
}

func buildQuizPrompt(req QuizRequest) string {
	return fmt.Sprintf(`You are a tutor for the course "%s". Write a quiz about the topic "%s", subtopic "%s".
Subtopic description: %s

Requirements:
- Exactly 5 multiple-choice questions.
- Each question has exactly 4 options.
- Exactly one option is correct; put its exact text in the "answer" field.

Respond with JSON only, no prose and no Markdown fences, exactly in this shape:
[
  {"question": "...", "options": ["...", "...", "...", "..."], "answer": "..."}
]`, req.Course, req.Topic, req.Subtopic, req.Description)
}

func buildResourcePrompt(req ResourceRequest) string {
	return fmt.Sprintf(`You are a learning mentor for the course "%s". The learner has about %s available.
Subtopic description: %s

Write study resources in Markdown covering:
1. A clear explanation of the concept.
2. Recommended search queries and video topics.
3. Practice platforms to use.
4. One mini-project idea to apply the concept.

Respond with Markdown only.`, req.Course, req.Time, req.Description)
}
