package cli

import (
	"context"
	"fmt"
	"strings"
)

// resolveItemID maps user input to a full item ID: exact match first,
// then unique ID prefix.
func resolveItemID(ctx context.Context, app *App, input string) (string, error) {
	if input == "" {
		return "", fmt.Errorf("item ID is required")
	}

	items, err := app.Planner.List(ctx)
	if err != nil {
		return "", err
	}

	for _, it := range items {
		if it.ID == input {
			return it.ID, nil
		}
	}

	var matches []string
	for _, it := range items {
		if strings.HasPrefix(it.ID, input) {
			matches = append(matches, it.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("item not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("item ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
