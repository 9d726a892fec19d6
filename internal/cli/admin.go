package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/common"
)

func (a *App) actingRole() string {
	if a.session == nil {
		return ""
	}
	return a.session.Role
}

// Pending lists join requests awaiting a decision.
func (a *App) Pending(ctx context.Context) error {
	users, err := a.auth.PendingUsers(ctx, a.actingRole())
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Println("Only administrators can review join requests.")
		}
		return err
	}
	if len(users) == 0 {
		fmt.Println("No pending join requests.")
		return nil
	}
	for _, u := range users {
		fmt.Printf("%s\t%s\tjoined %s\n", u.Username, u.Name, u.JoinedAt.Format("2006-01-02"))
	}
	return nil
}

// Approve grants a pending account access.
func (a *App) Approve(ctx context.Context, username string) error {
	if username == "" {
		var err error
		username, err = getSimpleText(a.reader, "Username to approve", os.Stdout)
		if err != nil {
			return err
		}
	}
	if err := a.auth.ApproveUser(ctx, a.actingRole(), username); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Println("Only administrators can approve accounts.")
		}
		return err
	}
	fmt.Printf("Approved %s.\n", username)
	return nil
}

// Reject permanently declines a pending account.
func (a *App) Reject(ctx context.Context, username string) error {
	if username == "" {
		var err error
		username, err = getSimpleText(a.reader, "Username to reject", os.Stdout)
		if err != nil {
			return err
		}
	}
	if err := a.auth.RejectUser(ctx, a.actingRole(), username); err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			fmt.Println("Only administrators can reject accounts.")
		}
		return err
	}
	fmt.Printf("Rejected %s.\n", username)
	return nil
}
