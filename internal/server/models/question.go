package models

import "time"

// Question is authored by UserID, which is set on creation and never
// reassigned. UserID is empty once the author account is gone.
type Question struct {
	ID          string
	Title       string
	Body        string
	UserID      string
	Author      *Author
	AnswerCount int
	Answers     []Answer
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
