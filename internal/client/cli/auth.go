package cli

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/lookdine/lookdine/internal/client/models"
	"github.com/lookdine/lookdine/internal/client/signup"
	"github.com/lookdine/lookdine/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
// They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts the user for credentials and authenticates through the
// session. When the server is unreachable the session transparently falls
// back to the local mock accounts, so a nil error may mean either an online
// or an offline login; the connection watcher reports which.
//
// The password byte slice is securely wiped before returning.
func (a *App) Login(ctx context.Context) error {
	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.session.Login(ctx, models.Credentials{Email: email, Password: string(password)}); err != nil {
		log.Printf("Login unsuccessful: %s", err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Welcome, %s!", a.session.User().Name))
	return nil
}

// Signup walks the three-step registration wizard: personal info, contact,
// then security. The draft survives restarts; quitting mid-flow keeps it.
func (a *App) Signup(ctx context.Context) error {
	w := signup.New(ctx, a.store)

	for {
		switch w.Step() {
		case signup.StepPersonal:
			name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
			if err != nil {
				return err
			}
			if err := w.SetField(ctx, func(f *signup.Form) { f.Name = name }); err != nil {
				return err
			}

		case signup.StepContact:
			email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
			if err != nil {
				return err
			}
			phone, err := getSimpleText(a.reader, "Enter phone (optional)", os.Stdout)
			if err != nil {
				return err
			}
			address, err := getSimpleText(a.reader, "Enter address (optional)", os.Stdout)
			if err != nil {
				return err
			}
			if err := w.SetField(ctx, func(f *signup.Form) {
				f.Email = email
				f.Phone = phone
				f.Address = address
			}); err != nil {
				return err
			}

		case signup.StepSecurity:
			password, err := getPassword(os.Stdout, "Choose a password")
			if err != nil {
				return err
			}
			confirm, err := getPassword(os.Stdout, "Confirm password")
			if err != nil {
				common.WipeByteArray(password)
				return err
			}
			setErr := w.SetField(ctx, func(f *signup.Form) {
				f.Password = string(password)
				f.Confirm = string(confirm)
			})
			common.WipeByteArray(password)
			common.WipeByteArray(confirm)
			if setErr != nil {
				return setErr
			}

			if err := w.Complete(ctx, a.session); err != nil {
				log.Printf("Signup unsuccessful: %s", err.Error())
				return err
			}
			printlnFn(fmt.Sprintf("Account created. Welcome, %s!", a.session.User().Name))
			return nil
		}

		if err := w.Next(); err != nil {
			log.Printf("%s", err.Error())
		}
	}
}

// Logout ends the session. Local credentials are cleared even when the
// server-side call fails.
func (a *App) Logout(ctx context.Context) error {
	if err := a.session.Logout(ctx); err != nil {
		return err
	}
	printlnFn("Logged out")
	return nil
}

// Profile prints the signed-in account.
func (a *App) Profile(_ context.Context) error {
	user := a.session.User()
	if user == nil {
		printlnFn("Not logged in")
		return nil
	}
	printlnFn(fmt.Sprintf("%s <%s>", user.Name, user.Email))
	if user.Phone != "" {
		printlnFn("Phone: " + user.Phone)
	}
	if user.Address != "" {
		printlnFn("Address: " + user.Address)
	}
	return nil
}
