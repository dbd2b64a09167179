package models

import "time"

type Answer struct {
	ID         string
	QuestionID string
	Body       string
	UserID     string
	Author     *Author
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
