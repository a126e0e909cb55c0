package cli

import (
	"context"
	"fmt"
	"slices"

	"github.com/lookdine/lookdine/internal/client/catalog"
)

// Nearby lists the venues around the user, featured ones first.
func (a *App) Nearby(_ context.Context) error {
	printlnFn("Nearby venues:")
	for _, v := range catalog.NearbyVenues {
		printlnFn(fmt.Sprintf("  [%s] %s — %s, %.1f★, %s, %s crowd, %d people now",
			v.ID, v.Name, v.Cuisine, v.Rating, v.PriceLevel, v.CrowdStatus, v.PeopleNow))
	}
	return nil
}

// People lists social-discovery cards. In teen mode dating cards are hidden.
func (a *App) People(_ context.Context) error {
	people := catalog.PeopleForMode(a.currentMode() == ModeTeen)
	if len(people) == 0 {
		printlnFn("Nobody around right now")
		return nil
	}
	printlnFn("People nearby:")
	for _, p := range people {
		printlnFn(fmt.Sprintf("  [%s] %s, %d — %s away (%s)", p.ID, p.Name, p.Age, p.Distance, p.ConnectionType))
	}
	return nil
}

// Chats lists conversations, skipping deleted ones and blanking the preview
// of cleared ones.
func (a *App) Chats(ctx context.Context) error {
	cleared, deleted, err := a.chats.Status(ctx)
	if err != nil {
		return err
	}

	printlnFn("Chats:")
	for _, c := range catalog.ChatConversations {
		if slices.Contains(deleted, c.ID) {
			continue
		}
		preview := c.LastMessage
		if slices.Contains(cleared, c.ID) {
			preview = "(cleared)"
		}
		unread := ""
		if c.Unread > 0 {
			unread = fmt.Sprintf(" [%d unread]", c.Unread)
		}
		printlnFn(fmt.Sprintf("  [%s] %s: %s (%s)%s", c.ID, c.Name, preview, c.Time, unread))
	}
	return nil
}

// ClearChat wipes a conversation's history but keeps it on the list.
func (a *App) ClearChat(ctx context.Context, chatID string) error {
	if err := a.chats.ClearChat(ctx, chatID); err != nil {
		return err
	}
	printlnFn("Chat cleared:", chatID)
	return nil
}

// DeleteChat removes a conversation from the list entirely.
func (a *App) DeleteChat(ctx context.Context, chatID string) error {
	if err := a.chats.DeleteChat(ctx, chatID); err != nil {
		return err
	}
	printlnFn("Chat deleted:", chatID)
	return nil
}

// SwitchMode changes the audience profile.
func (a *App) SwitchMode(mode string) error {
	switch Mode(mode) {
	case ModeTeen:
		a.setMode(ModeTeen)
	case ModeAdult:
		a.setMode(ModeAdult)
	default:
		printlnFn("Usage: mode <teen|adult>")
	}
	return nil
}
