package notification

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Send sends a desktop notification with the checkup outcome so an operator
// iterating on broken secrets sees when a re-run finishes.
func Send(title, message string) error {
	err := beeep.Alert(title, message, "")
	if err != nil {
		// Fallback to console if notification fails
		fmt.Printf("\n🔔 %s: %s\n", title, message)
		return err
	}
	return nil
}
