package cli

import (
	"context"
	"fmt"
)

func (a *App) Answer(ctx context.Context, questionID string) error {
	body, err := getMultiline(a.reader, "Enter your answer", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	ans, err := a.client.CreateAnswer(ctx, questionID, body)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Answer %s posted.\n", ans.ID)
	return nil
}

func (a *App) EditAnswer(ctx context.Context, id string) error {
	body, err := getMultiline(a.reader, "Enter the new answer", a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if _, err := a.client.UpdateAnswer(ctx, id, body); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Answer %s updated.\n", id)
	return nil
}

func (a *App) DeleteAnswer(ctx context.Context, id string) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.DeleteAnswer(ctx, id); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "Answer %s deleted.\n", id)
	return nil
}
