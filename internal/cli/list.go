package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/mykeychain/internal/models"
)

// ListAll prints every record of the account, grouped by category.
func (a *App) ListAll(ctx context.Context) error {
	groups := a.keychain.ListAll(a.account)
	if len(groups) == 0 {
		printlnFn("No records yet.")
		return nil
	}

	total := 0
	for _, g := range groups {
		printlnFn(header(fmt.Sprintf("[%s]", g.Category)))
		for _, e := range g.Entries {
			printlnFn(fmt.Sprintf("%s: %s", e.Resource, e.Password))
		}
		total += len(g.Entries)
	}
	printlnFn(fmt.Sprintf("Total records: %d", total))
	return nil
}

// ListByCategory lets the user pick a category and prints its records.
func (a *App) ListByCategory(ctx context.Context) error {
	all := append(models.BuiltinCategories(), a.account.CustomCategories...)

	printlnFn(header("Categories:"))
	for i, c := range all {
		printlnFn(fmt.Sprintf("%d. %s", i+1, c))
	}

	answer, err := GetSimpleText(a.reader, "Category number", os.Stdout)
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(answer)
	if err != nil || n < 1 || n > len(all) {
		printlnFn("Invalid choice.")
		return nil
	}
	category := all[n-1]

	entries := a.keychain.ListByCategory(a.account, category)
	if len(entries) == 0 {
		printlnFn(fmt.Sprintf("No records in category %q.", category))
		return nil
	}

	printlnFn(header(fmt.Sprintf("Records in %q:", category)))
	for _, e := range entries {
		printlnFn(fmt.Sprintf("%s: %s", e.Resource, e.Password))
	}
	printlnFn(fmt.Sprintf("Total in category: %d", len(entries)))
	return nil
}

// Search prompts for a part of a resource name and prints the matches.
func (a *App) Search(ctx context.Context) error {
	term, err := GetSimpleText(a.reader, "Part of the resource name", os.Stdout)
	if err != nil {
		return err
	}

	found, err := a.keychain.Search(a.account, term)
	if err != nil {
		printlnFn(errorMark(), err.Error())
		return err
	}
	if len(found) == 0 {
		printlnFn("Nothing found.")
		return nil
	}

	printlnFn(header(fmt.Sprintf("Results for %q:", term)))
	for _, e := range found {
		printlnFn(fmt.Sprintf("%s [%s]: %s", e.Resource, e.Category, e.Password))
	}
	printlnFn(fmt.Sprintf("Found: %d", len(found)))
	return nil
}
