package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/tierforum/internal/client/models"
)

func (a *App) List(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	items, err := a.client.ListQuestions(ctx)
	if err != nil {
		return err
	}

	if len(items) == 0 {
		fmt.Fprintln(a.out, "No questions yet.")
		return nil
	}
	for _, q := range items {
		fmt.Fprintf(a.out, "%s  %s  (%d answers, by %s)\n", q.ID, q.Title, q.AnswerCount, authorName(q.Author))
	}
	return nil
}

func (a *App) Show(ctx context.Context, id string) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	q, err := a.client.GetQuestion(ctx, id)
	if err != nil {
		return err
	}

	printQuestion(a.out, q)
	return nil
}

func (a *App) Ask(ctx context.Context) error {
	title, err := getSimpleText(a.reader, "Enter title", a.out)
	if err != nil {
		return err
	}
	body, err := getMultiline(a.reader, "Enter details", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	q, err := a.client.CreateQuestion(ctx, title, body)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Question %s created.\n", q.ID)
	return nil
}

// Edit updates a question. Leaving a field empty keeps its current value.
func (a *App) Edit(ctx context.Context, id string) error {
	title, err := getSimpleText(a.reader, "Enter new title (empty keeps current)", a.out)
	if err != nil {
		return err
	}
	body, err := getMultiline(a.reader, "Enter new details (empty keeps current)", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if _, err := a.client.UpdateQuestion(ctx, id, title, body); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Question %s updated.\n", id)
	return nil
}

func (a *App) Delete(ctx context.Context, id string) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.DeleteQuestion(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Question %s deleted.\n", id)
	return nil
}

func printQuestion(w io.Writer, q *models.Question) {
	fmt.Fprintf(w, "%s\n%s\n", q.Title, strings.Repeat("=", len(q.Title)))
	fmt.Fprintf(w, "asked by %s on %s\n", authorName(q.Author), q.CreatedAt.Format("2006-01-02 15:04"))
	if q.Body != "" {
		fmt.Fprintf(w, "\n%s\n", q.Body)
	}

	fmt.Fprintf(w, "\n%d answers\n", len(q.Answers))
	for _, ans := range q.Answers {
		fmt.Fprintf(w, "\n[%s] %s:\n%s\n", ans.ID, authorName(ans.Author), ans.Body)
	}
}

func authorName(a *models.Author) string {
	if a == nil {
		return "[deleted]"
	}
	return fmt.Sprintf("%s (tier %d)", a.DisplayName, a.Tier)
}
