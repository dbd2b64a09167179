// Package models holds the client's view of forum content, decoupled from
// the wire messages.
package models

import "time"

type User struct {
	ID          string
	Email       string
	DisplayName string
	Tier        int
}

// Author is nil on content whose author account no longer exists.
type Author struct {
	ID          string
	DisplayName string
	Tier        int
}

type Question struct {
	ID          string
	Title       string
	Body        string
	Author      *Author
	AnswerCount int
	Answers     []Answer
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type Answer struct {
	ID         string
	QuestionID string
	Body       string
	Author     *Author
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
