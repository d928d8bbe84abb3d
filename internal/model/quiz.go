package model

import "time"

// QuizQuestion is one generated multiple-choice question. Quizzes themselves
// are never persisted; only results are (QuizStat).
type QuizQuestion struct {
	ID           int      `json:"id"`
	Question     string   `json:"question"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
}

// QuizStat records the outcome of one quiz attempt.
type QuizStat struct {
	ID           uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       uint      `gorm:"index;not null" json:"-"`
	Topic        string    `gorm:"size:255;not null" json:"topic"`
	WeekNum      int       `gorm:"not null" json:"weekNum"`
	SubtopicNum  int       `gorm:"not null" json:"subtopicNum"`
	NumCorrect   int       `gorm:"not null" json:"numCorrect"`
	NumQuestions int       `gorm:"not null" json:"numQuestions"`
	TimeTaken    int       `gorm:"not null" json:"timeTaken"` // milliseconds
	CreatedAt    time.Time `json:"createdAt"`
}

func (QuizStat) TableName() string {
	return "quiz_stats"
}
