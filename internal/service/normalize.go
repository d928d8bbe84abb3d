package service

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"skillpath_backend/internal/model"
	"skillpath_backend/internal/util"
)

// Normalizers parse sanitized model output into the stable shapes the
// frontend consumes. They fail closed: any parse or shape violation is
// ErrMalformedOutput, never a partial result.

type roadmapWeekItem struct {
	Week      int                   `json:"week"`
	Topic     string                `json:"topic"`
	Subtopics []model.SubtopicEntry `json:"subtopics"`
}

// normalizeRoadmap re-keys the parsed week list into the "Week {n}" mapping.
// Input ordering is not trusted; weeks are sorted by their number and must
// form a contiguous range starting at 1, each with at least one subtopic.
func normalizeRoadmap(sanitized string) (model.RoadmapData, error) {
	var weeks []roadmapWeekItem
	if err := json.Unmarshal([]byte(sanitized), &weeks); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMalformedOutput, err)
	}
	if len(weeks) == 0 {
		return nil, fmt.Errorf("%w: no weeks", util.ErrMalformedOutput)
	}

	sort.Slice(weeks, func(i, j int) bool { return weeks[i].Week < weeks[j].Week })

	data := make(model.RoadmapData, len(weeks))
	for i, w := range weeks {
		if w.Week != i+1 {
			return nil, fmt.Errorf("%w: week numbers must be contiguous from 1", util.ErrMalformedOutput)
		}
		if strings.TrimSpace(w.Topic) == "" {
			return nil, fmt.Errorf("%w: week %d has no topic", util.ErrMalformedOutput, w.Week)
		}
		if len(w.Subtopics) == 0 {
			return nil, fmt.Errorf("%w: week %d has no subtopics", util.ErrMalformedOutput, w.Week)
		}
		for _, st := range w.Subtopics {
			if strings.TrimSpace(st.Subtopic) == "" {
				return nil, fmt.Errorf("%w: week %d has an unnamed subtopic", util.ErrMalformedOutput, w.Week)
			}
		}
		data[fmt.Sprintf("Week %d", w.Week)] = model.WeekPlan{Topic: w.Topic, Subtopics: w.Subtopics}
	}
	return data, nil
}

type quizItem struct {
	ID       *int     `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// normalizeQuiz maps each question's textual answer to its index within the
// options (case-sensitive exact match). Questions without an id get their
// position index.
func normalizeQuiz(sanitized string) ([]model.QuizQuestion, error) {
	var items []quizItem
	if err := json.Unmarshal([]byte(sanitized), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", util.ErrMalformedOutput, err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: no questions", util.ErrMalformedOutput)
	}

	questions := make([]model.QuizQuestion, 0, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.Question) == "" {
			return nil, fmt.Errorf("%w: question %d is empty", util.ErrMalformedOutput, i)
		}
		if len(it.Options) != 4 {
			return nil, fmt.Errorf("%w: question %d has %d options, want 4", util.ErrMalformedOutput, i, len(it.Options))
		}

		correct := -1
		for j, opt := range it.Options {
			if opt == it.Answer {
				correct = j
				break
			}
		}
		if correct < 0 {
			return nil, fmt.Errorf("%w: question %d answer matches no option", util.ErrMalformedOutput, i)
		}

		id := i
		if it.ID != nil {
			id = *it.ID
		}
		questions = append(questions, model.QuizQuestion{
			ID:           id,
			Question:     it.Question,
			Options:      it.Options,
			CorrectIndex: correct,
		})
	}
	return questions, nil
}

// normalizeResource is an identity pass-through: resources are plain
// Markdown, not JSON. Only an empty body is rejected.
func normalizeResource(sanitized string) (string, error) {
	if strings.TrimSpace(sanitized) == "" {
		return "", fmt.Errorf("%w: empty resource body", util.ErrMalformedOutput)
	}
	return sanitized, nil
}
