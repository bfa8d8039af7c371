package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmitrijs2005/mykeychain/internal/models"
)

// selectCategory shows the numbered category catalog (builtin first, then
// the account's custom ones, then "create new") and keeps prompting until
// the user makes a valid choice.
func (a *App) selectCategory(ctx context.Context) (string, error) {
	builtin := models.BuiltinCategories()
	custom := a.account.CustomCategories

	printlnFn(header("Select a category:"))
	for i, c := range builtin {
		printlnFn(fmt.Sprintf("%d. %s", i+1, c))
	}
	if len(custom) > 0 {
		printlnFn(header("Your categories:"))
		for i, c := range custom {
			printlnFn(fmt.Sprintf("%d. %s", len(builtin)+i+1, c))
		}
	}
	printlnFn(fmt.Sprintf("%d. Create a new category", len(builtin)+len(custom)+1))

	for {
		answer, err := GetSimpleText(a.reader, "Category number", os.Stdout)
		if err != nil {
			return "", err
		}

		n, err := strconv.Atoi(answer)
		if err == nil {
			switch {
			case n >= 1 && n <= len(builtin):
				return builtin[n-1], nil
			case n > len(builtin) && n <= len(builtin)+len(custom):
				return custom[n-len(builtin)-1], nil
			case n == len(builtin)+len(custom)+1:
				return a.createCategory(ctx)
			}
		}

		printlnFn("Invalid choice. Try again.")
	}
}

// createCategory keeps prompting until a valid, unused category name is
// entered and created.
func (a *App) createCategory(ctx context.Context) (string, error) {
	for {
		name, err := GetSimpleText(a.reader, "New category name", os.Stdout)
		if err != nil {
			return "", err
		}

		created, err := a.keychain.CreateCustomCategory(ctx, a.account, name)
		if err != nil {
			printlnFn(errorMark(), err.Error())
			continue
		}
		printlnFn(okMark(), fmt.Sprintf("Category %q created.", created))
		return created, nil
	}
}
