package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/mykeychain/internal/passgen"
)

const (
	defaultGeneratedLen = 12
	minGeneratedLen     = 4
)

// AddRecord prompts for a resource, a category and a password, generating
// a password when the user leaves the prompt empty.
func (a *App) AddRecord(ctx context.Context) error {
	resource, err := GetSimpleText(a.reader, "Resource name", os.Stdout)
	if err != nil {
		return err
	}

	category, err := a.selectCategory(ctx)
	if err != nil {
		return err
	}

	password, err := GetSimpleText(a.reader, "Password (leave empty to generate)", os.Stdout)
	if err != nil {
		return err
	}
	if password == "" {
		if password, err = a.generatePassword(false); err != nil {
			return err
		}
	}

	if err := a.keychain.AddRecord(ctx, a.account, resource, password, category); err != nil {
		printlnFn(errorMark(), err.Error())
		return err
	}
	printlnFn(okMark(), "Record added.")
	return nil
}

// UpdateRecord prompts for a resource and its new password. The record's
// category stays as it was.
func (a *App) UpdateRecord(ctx context.Context) error {
	resource, err := GetSimpleText(a.reader, "Resource name", os.Stdout)
	if err != nil {
		return err
	}

	password, err := GetSimpleText(a.reader, "New password (leave empty to generate)", os.Stdout)
	if err != nil {
		return err
	}
	if password == "" {
		if password, err = a.generatePassword(false); err != nil {
			return err
		}
	}

	if err := a.keychain.UpdateRecord(ctx, a.account, resource, password); err != nil {
		printlnFn(errorMark(), err.Error())
		return err
	}
	printlnFn(okMark(), "Record updated.")
	return nil
}

// DeleteRecord prompts for a resource and asks for confirmation before
// removing it.
func (a *App) DeleteRecord(ctx context.Context) error {
	resource, err := GetSimpleText(a.reader, "Resource name", os.Stdout)
	if err != nil {
		return err
	}

	confirmed, err := GetConfirm(a.reader, fmt.Sprintf("Delete the record for %q?", resource), os.Stdout)
	if err != nil {
		return err
	}

	deleted, err := a.keychain.DeleteRecord(ctx, a.account, resource, confirmed)
	if err != nil {
		printlnFn(errorMark(), err.Error())
		return err
	}
	if !deleted {
		printlnFn("Deletion cancelled.")
		return nil
	}
	printlnFn(okMark(), "Record deleted.")
	return nil
}

// Generate produces a password with user-chosen options and shows it
// without storing anything.
func (a *App) Generate(ctx context.Context) error {
	pwd, err := a.generatePassword(true)
	if err != nil {
		return err
	}
	printlnFn("Generated password:", pwd)
	return nil
}

// generatePassword asks for length and character-pool options and calls
// the generator. With interactive=false the generated value is meant to be
// stored right away, so it is still shown once for the user to note down.
func (a *App) generatePassword(interactive bool) (string, error) {
	answer, err := GetSimpleText(a.reader, fmt.Sprintf("Length (minimum %d, default %d)", minGeneratedLen, defaultGeneratedLen), os.Stdout)
	if err != nil {
		return "", err
	}
	length := defaultGeneratedLen
	if n, err := strconv.Atoi(answer); err == nil && n >= minGeneratedLen {
		length = n
	}

	useDigits, err := GetConfirmDefaultYes(a.reader, "Use digits?", os.Stdout)
	if err != nil {
		return "", err
	}
	useSpecial, err := GetConfirmDefaultYes(a.reader, "Use special characters?", os.Stdout)
	if err != nil {
		return "", err
	}

	pwd, err := passgen.RandomPassword(length, useDigits, useSpecial)
	if err != nil {
		printlnFn(errorMark(), err.Error())
		return "", err
	}
	if !interactive {
		printlnFn("Generated password:", pwd)
	}
	return pwd, nil
}
