package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jojokiddiestv2025-boop/Gracegather/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials and authenticates against the registry.
// Pending and rejected accounts are reported without revealing whether the
// password matched anything.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	session, err := a.auth.Login(ctx, userName, string(password))
	if err != nil {
		switch {
		case errors.Is(err, common.ErrPendingApproval):
			fmt.Println("Your account is still awaiting approval.")
		case errors.Is(err, common.ErrAccountDisabled):
			fmt.Println("Your account has been disabled.")
		case errors.Is(err, common.ErrInvalidCredentials):
			fmt.Println("Invalid username or password.")
		default:
			fmt.Printf("Login failed: %s\n", err.Error())
		}
		return err
	}

	a.session = session
	fmt.Printf("Welcome, %s!\n", session.Name)
	return nil
}

// Register prompts for account details and files a pending join request.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Choose a username", os.Stdout)
	if err != nil {
		return err
	}

	name, err := getSimpleText(a.reader, "Your full name", os.Stdout)
	if err != nil {
		return err
	}

	code, err := getSimpleText(a.reader, "Ministry code", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, userName, string(password), name, code); err != nil {
		switch {
		case errors.Is(err, common.ErrInvalidMinistryCode):
			fmt.Println("That ministry code is not recognized.")
		case errors.Is(err, common.ErrUsernameTaken):
			fmt.Println("That username is already taken.")
		default:
			fmt.Printf("Registration failed: %s\n", err.Error())
		}
		return err
	}

	fmt.Println("Request submitted. An administrator must approve your account before you can log in.")
	return nil
}

// Logout clears the persisted session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.auth.Logout(ctx); err != nil {
		return err
	}
	a.session = nil
	fmt.Println("Logged out.")
	return nil
}

// Whoami prints the active session, if any.
func (a *App) Whoami(ctx context.Context) error {
	if a.session == nil {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("%s (%s, %s)\n", a.session.Username, a.session.Name, a.session.Role)
	return nil
}
