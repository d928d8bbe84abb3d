package service

import "skillpath_backend/internal/model"

// Fallback content is returned whenever generation or parsing fails. Each
// value satisfies the same shape invariants as generated content, so
// consumers never need to special-case it.

func fallbackRoadmap() model.RoadmapData {
	return model.RoadmapData{
		"Week 1": {
			Topic: "Introduction",
			Subtopics: []model.SubtopicEntry{
				{Subtopic: "Basics", Description: "Learn the fundamentals", Time: "2 hours"},
			},
		},
	}
}

func fallbackQuiz() []model.QuizQuestion {
	return []model.QuizQuestion{
		{
			ID:           0,
			Question:     "What is the best first step when learning a new topic?",
			Options:      []string{"Understand the fundamentals", "Memorize advanced material", "Skip to projects", "Avoid practice"},
			CorrectIndex: 0,
		},
		{
			ID:           1,
			Question:     "How often should you practice a new skill?",
			Options:      []string{"Once a month", "Regularly, in short sessions", "Only before exams", "Never"},
			CorrectIndex: 1,
		},
		{
			ID:           2,
			Question:     "What helps most when you are stuck on a concept?",
			Options:      []string{"Giving up", "Ignoring it", "Breaking it into smaller parts", "Rushing ahead"},
			CorrectIndex: 2,
		},
		{
			ID:           3,
			Question:     "Why are small projects useful while learning?",
			Options:      []string{"They waste time", "They replace all theory", "They are only for experts", "They apply concepts in practice"},
			CorrectIndex: 3,
		},
		{
			ID:           4,
			Question:     "What is a good way to check your understanding?",
			Options:      []string{"Explaining the concept in your own words", "Reading the same page twice", "Skipping the exercises", "Copying solutions"},
			CorrectIndex: 0,
		},
	}
}

func fallbackResources() string {
	return `## Learning Resources

### Concept
We could not generate tailored resources right now, but the fundamentals below apply to any topic.

### Recommended searches and videos
- "<your topic> tutorial for beginners"
- "<your topic> crash course"

### Practice platforms
- freeCodeCamp
- Exercism
- LeetCode

### Mini-project idea
Build a small tool that solves one real problem you have, using only what you have learned so far.`
}
