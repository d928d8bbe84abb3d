package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildRoadmapPrompt(t *testing.T) {
	req := RoadmapRequest{Topic: "Rust", Duration: "4 Weeks", KnowledgeLevel: "Beginner"}

	prompt := buildRoadmapPrompt(req)
	assert.Contains(t, prompt, `"Rust"`)
	assert.Contains(t, prompt, "4 Weeks")
	assert.Contains(t, prompt, `"Beginner"`)
	assert.Contains(t, prompt, "JSON only")

	// Same request, same prompt.
	assert.Equal(t, prompt, buildRoadmapPrompt(req))
}

func TestBuildQuizPrompt(t *testing.T) {
	req := QuizRequest{
		Course:      "Rust",
		Topic:       "Ownership",
		Subtopic:    "Borrowing",
		Description: "References and lifetimes",
	}

	prompt := buildQuizPrompt(req)
	assert.Contains(t, prompt, `"Rust"`)
	assert.Contains(t, prompt, `"Ownership"`)
	assert.Contains(t, prompt, `"Borrowing"`)
	assert.Contains(t, prompt, "References and lifetimes")
	assert.Contains(t, prompt, "Exactly 5 multiple-choice questions")
	assert.Equal(t, prompt, buildQuizPrompt(req))
}

func TestBuildResourcePrompt(t *testing.T) {
	req := ResourceRequest{Course: "Rust", Description: "References and lifetimes", Time: "2 hours"}

	prompt := buildResourcePrompt(req)
	assert.Contains(t, prompt, `"Rust"`)
	assert.Contains(t, prompt, "2 hours")
	assert.Contains(t, prompt, "References and lifetimes")
	assert.Contains(t, prompt, "Markdown only")
	assert.Equal(t, prompt, buildResourcePrompt(req))
}
