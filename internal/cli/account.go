package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dmitrijs2005/mykeychain/internal/common"
	"github.com/dmitrijs2005/mykeychain/internal/services"
)

// Register prompts for a login and a master secret (twice, without echo)
// and creates the account. The new account becomes the active session,
// matching the original program's auto-login after signup.
func (a *App) Register(ctx context.Context) error {
	login, err := GetSimpleText(a.reader, "Login", os.Stdout)
	if err != nil {
		return err
	}

	secret, err := GetSecret("Master secret (at least 6 characters)", os.Stdout)
	if err != nil {
		return err
	}
	confirm, err := GetSecret("Confirm master secret", os.Stdout)
	if err != nil {
		return err
	}

	acc, err := a.keychain.CreateAccount(ctx, login, secret, confirm)
	if err != nil {
		printlnFn(errorMark(), err.Error())
		return err
	}

	a.account = acc
	a.login = login
	printlnFn(okMark(), fmt.Sprintf("Account created. Logged in as %s.", login))
	return nil
}

// Login authenticates an existing account, allowing up to three secret
// attempts. On the first run (or an unknown login) it offers to create an
// account instead.
func (a *App) Login(ctx context.Context) error {
	if !a.keychain.HasAccounts() {
		printlnFn("No accounts yet.")
		create, err := GetConfirm(a.reader, "Create one now?", os.Stdout)
		if err != nil || !create {
			return err
		}
		return a.Register(ctx)
	}

	login, err := GetSimpleText(a.reader, "Login", os.Stdout)
	if err != nil {
		return err
	}

	acc, err := a.keychain.Authenticate(ctx, login, func(remaining int) (string, error) {
		if remaining < services.MaxAuthAttempts {
			if remaining == 1 {
				printlnFn(warnText("Wrong master secret. You have 1 attempt left!"))
			} else {
				printlnFn(warnText(fmt.Sprintf("Wrong master secret. You have %d attempts left!", remaining)))
			}
		}
		return GetSecret("Master secret", os.Stdout)
	})
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNotFound):
			printlnFn(errorMark(), fmt.Sprintf("Account %q not found.", login))
			create, cerr := GetConfirm(a.reader, fmt.Sprintf("Create account %q?", login), os.Stdout)
			if cerr != nil || !create {
				return err
			}
			return a.Register(ctx)
		case errors.Is(err, common.ErrAuthenticationFailed):
			printlnFn(errorMark(), "Too many attempts!")
		default:
			printlnFn(errorMark(), err.Error())
		}
		return err
	}

	a.account = acc
	a.login = login
	printlnFn(okMark(), "Logged in.")
	return nil
}
