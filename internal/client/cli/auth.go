package cli

import (
	"context"
	"fmt"
	"strconv"
)

// getSimpleText, getMultiline and getPassword can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getMultiline  = GetMultiline
	getPassword   = GetPassword
)

// Signup asks for the account details. An empty tier means tier 1; the server
// clamps anything out of range.
func (a *App) Signup(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	name, err := getSimpleText(a.reader, "Enter display name", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	rawTier, err := getSimpleText(a.reader, "Enter tier (1 Questioner, 2 Advisor, 3 Admin)", a.out)
	if err != nil {
		return err
	}

	tier := 0
	if rawTier != "" {
		tier, err = strconv.Atoi(rawTier)
		if err != nil {
			return fmt.Errorf("tier must be a number: %w", err)
		}
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	user, err := a.client.Signup(ctx, email, password, name, tier)
	if err != nil {
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Welcome, %s! You are %s.\n", user.DisplayName, tierName(user.Tier))
	return nil
}

func (a *App) Signin(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	user, err := a.client.Signin(ctx, email, password)
	if err != nil {
		return err
	}

	a.user = user
	fmt.Fprintf(a.out, "Signed in as %s (%s).\n", user.DisplayName, tierName(user.Tier))
	return nil
}

// SignOut drops the local token.
func (a *App) SignOut(ctx context.Context) error {
	a.client.SignOut()
	a.user = nil
	fmt.Fprintln(a.out, "Signed out.")
	return nil
}

// Me shows the identity the server sees in the current token.
func (a *App) Me(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	user, err := a.client.Me(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%s <%s>, %s\n", user.DisplayName, user.Email, tierName(user.Tier))
	return nil
}

func (a *App) getStatus() string {
	if a.user == nil {
		return ""
	}
	return fmt.Sprintf("(%s, tier %d)", a.user.DisplayName, a.user.Tier)
}

func tierName(tier int) string {
	switch tier {
	case 1:
		return "Tier 1 Questioner"
	case 2:
		return "Tier 2 Advisor"
	case 3:
		return "Tier 3 Admin"
	default:
		return fmt.Sprintf("Tier %d", tier)
	}
}
