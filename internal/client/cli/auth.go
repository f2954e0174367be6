package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pulse/internal/client/client"
	"github.com/dmitrijs2005/pulse/internal/client/ui"
)

// getSimpleText, getPassword and getMultiline are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	getMultiline  = GetMultiline
)

// Signup prompts for a name, email and password, creates the account and
// opens the one-time code screen for the email it was sent to.
func (a *App) Signup(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter your name", a.out)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	if err := a.authService.Signup(ctx, userName, email, password); err != nil {
		a.logger.Warn(ctx, "signup failed", "error", err)
		a.Notify(errorNotice("Sign Up", err, "Sign up failed. Please try again."))
		return err
	}

	a.Notify(ui.Notice{Level: ui.LevelSuccess, Title: "Sign Up", Message: "We've sent a 6-character code to " + email + "."})
	a.Navigate(ui.RouteVerify)
	return a.Verify(ctx)
}

// Login prompts for credentials and stores the session on success.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		return err
	}
	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer wipe(password)

	user, err := a.authService.Login(ctx, email, password)
	if err != nil {
		a.logger.Warn(ctx, "login failed", "error", err)
		fallback := "Login failed. Please try again."
		if errors.Is(err, client.ErrUnavailable) {
			fallback = "Server unavailable. Please try again later."
		}
		a.Notify(errorNotice("Sign In", err, fallback))
		return err
	}

	a.Notify(ui.Notice{Level: ui.LevelSuccess, Title: "Sign In", Message: fmt.Sprintf("Welcome back, %s!", user.UserName)})
	a.Navigate(ui.RouteHome)
	return nil
}

// Logout clears the stored session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.authService.Logout(ctx); err != nil {
		a.logger.Error(ctx, "logout failed", "error", err)
		a.Notify(errorNotice("Sign Out", err, "Could not sign out."))
		return err
	}
	a.Notify(ui.Notice{Level: ui.LevelInfo, Title: "Sign Out", Message: "You have been signed out."})
	a.Navigate(ui.RouteHome)
	return nil
}

// WhoAmI prints the signed-in profile.
func (a *App) WhoAmI(ctx context.Context) error {
	id, ok := a.gate.CurrentUser(ctx)
	if !ok {
		printlnFn("Not signed in.")
		return nil
	}

	if p, ok := a.gate.Profile(ctx); ok {
		printlnFn(fmt.Sprintf("%s <%s>", p.UserName, p.Email))
		if url := p.ImageURL(); url != "" {
			printlnFn("Avatar:", url)
		}
	} else {
		printlnFn(fmt.Sprintf("%s <%s>", id.UserName(), id.Email()))
	}

	if exp := id.ExpiresAt(); !exp.IsZero() {
		printlnFn("Session expires:", exp.Local().Format("2006-01-02 15:04"))
	}
	return nil
}

// errorNotice builds an error notice carrying the message of err meant for
// the user, or fallback.
func errorNotice(title string, err error, fallback string) ui.Notice {
	msg, ok := ui.UserMessage(err)
	if !ok {
		msg = fallback
	}
	return ui.Notice{Level: ui.LevelError, Title: title, Message: msg}
}
