package cli

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
)

func (a *App) getStatus() string {
	s := ""
	if user := a.session.User(); user != nil {
		s = user.Name + " "
	}
	if a.currentMode() == ModeTeen {
		s = s + "teen "
	}
	if conn := a.connState(); conn != "" {
		s = s + string(conn)
	}
	if s != "" {
		s = fmt.Sprintf("(%s)", s)
	}
	return s
}

// Root restores a persisted session, starts the connectivity watcher and
// hands control to the REPL. Blocks until the user exits.
func (a *App) Root(ctx context.Context) {

	log.Println("Welcome to LookDine CLI (type 'help' for commands)")

	if err := a.session.Init(ctx); err != nil {
		log.Printf("Session restore failed: %s", err.Error())
	} else if user := a.session.User(); user != nil {
		log.Printf("Welcome back, %s", user.Name)
	}

	go func() {
		a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)
	}()

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}
