package cli

import (
	"context"

	"github.com/dmitrijs2005/pulse/internal/client/ui"
)

// Contact sends a message to the sales team. Name and email are prefilled
// from the signed-in profile; an empty answer keeps the prefilled value.
func (a *App) Contact(ctx context.Context) error {
	msg := a.contactService.Prefill(ctx)

	ask := func(prompt string, dst *string) error {
		if *dst != "" {
			prompt += " [" + *dst + "]"
		}
		v, err := getSimpleText(a.reader, prompt, a.out)
		if err != nil {
			return err
		}
		if v != "" {
			*dst = v
		}
		return nil
	}

	if err := ask("Your name", &msg.Name); err != nil {
		return err
	}
	if err := ask("Email", &msg.Email); err != nil {
		return err
	}
	if err := ask("Phone (optional)", &msg.Phone); err != nil {
		return err
	}

	text, err := getMultiline(a.reader, "Message", a.out)
	if err != nil {
		return err
	}
	msg.Message = text

	if err := a.contactService.Send(ctx, msg); err != nil {
		a.logger.Warn(ctx, "contact failed", "error", err)
		a.Notify(errorNotice("Contact", err, "Failed to send message. Please try again."))
		return err
	}

	a.Notify(ui.Notice{Level: ui.LevelSuccess, Title: "Contact", Message: "Message sent! We'll get back to you soon."})
	return nil
}
