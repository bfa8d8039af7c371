// Package cli implements the interactive front end of mykeychain: a small
// REPL over the keychain services, with prompts for account, record and
// category operations.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/dmitrijs2005/mykeychain/internal/cipher"
	"github.com/dmitrijs2005/mykeychain/internal/config"
	"github.com/dmitrijs2005/mykeychain/internal/logging"
	"github.com/dmitrijs2005/mykeychain/internal/models"
	"github.com/dmitrijs2005/mykeychain/internal/repositories/accounts"
	"github.com/dmitrijs2005/mykeychain/internal/repositories/charset"
	"github.com/dmitrijs2005/mykeychain/internal/services"
)

// App owns the loaded keychain and the current session state.
type App struct {
	config   *config.Config
	keychain *services.Keychain
	log      logging.Logger

	login   string
	account *models.Account
	reader  *bufio.Reader
}

// NewApp loads the alphabet and the account store and wires the services.
func NewApp(ctx context.Context, cfg *config.Config, log logging.Logger) (*App, error) {
	charsetRepo := charset.NewFileRepository(cfg.CharsetFile)
	cs, err := charsetRepo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("error loading charset: %w", err)
	}

	alpha, err := cipher.NewAlphabet(cs)
	if err != nil {
		return nil, fmt.Errorf("error building alphabet: %w", err)
	}

	keychain := services.NewKeychain(accounts.NewFileRepository(cfg.UsersFile), alpha, log)
	if err := keychain.Load(ctx); err != nil {
		return nil, err
	}

	return &App{
		config:   cfg,
		keychain: keychain,
		log:      log,
		reader:   bufio.NewReader(os.Stdin),
	}, nil
}

// Run starts the REPL and blocks until the user exits.
func (a *App) Run(ctx context.Context) {
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.account != nil
}

func (a *App) status() string {
	if a.isLoggedIn() {
		return a.login
	}
	return "not logged in"
}

// Logout persists the store and drops the session, mirroring the original
// save-on-exit behavior of the menu program.
func (a *App) Logout(ctx context.Context) error {
	if err := a.keychain.Save(ctx); err != nil {
		printlnFn(errorMark(), err.Error())
		return err
	}
	a.account = nil
	a.login = ""
	printlnFn("Logged out.")
	return nil
}
