package cli

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/wordsearch/internal/client/client"
)

func (a *App) Register(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "-Enter user id", a.out)
	if err != nil {
		return a.fail(err)
	}

	password, err := getPassword(a.out)
	if err != nil {
		return a.fail(err)
	}
	defer wipe(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.Register(ctx, userID, password); err != nil {
		if errors.Is(err, client.ErrAlreadyExists) {
			fmt.Fprintln(a.out, "User already exists")
			return err
		}
		return a.fail(err)
	}

	fmt.Fprintln(a.out, "Success!")
	return nil
}

func (a *App) Login(ctx context.Context) error {
	userID, err := getSimpleText(a.reader, "-Enter user id", a.out)
	if err != nil {
		return a.fail(err)
	}

	password, err := getPassword(a.out)
	if err != nil {
		return a.fail(err)
	}
	defer wipe(password)

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.Login(ctx, userID, password); err != nil {
		fmt.Fprintf(a.out, "Login unsuccessful: %s\n", err.Error())
		return err
	}

	a.userID = userID
	fmt.Fprintln(a.out, "Login successful")
	return nil
}

// Check asks for one answer and prints whether category accepts it.
func (a *App) Check(ctx context.Context, category string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please login first")
		return client.ErrNotLoggedIn
	}

	answer, err := getSimpleText(a.reader, "-Enter answer", a.out)
	if err != nil {
		return a.fail(err)
	}

	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	ok, err := a.client.CheckAnswer(ctx, category, answer)
	if err != nil {
		if errors.Is(err, client.ErrUnauthorized) {
			a.userID = ""
			fmt.Fprintln(a.out, "Session expired, please login again")
			return err
		}
		return a.fail(err)
	}

	if ok {
		fmt.Fprintln(a.out, "Correct!")
	} else {
		fmt.Fprintln(a.out, "Wrong")
	}
	return nil
}

// Live sends every entered line over the live channel until an empty line.
func (a *App) Live(ctx context.Context) error {
	ch, err := a.client.OpenLive(ctx)
	if err != nil {
		return a.fail(err)
	}
	defer ch.Close()

	fmt.Fprintln(a.out, "Live mode, empty line to finish")

	for {
		answer, err := getSimpleText(a.reader, "-Answer", a.out)
		if err != nil || answer == "" {
			return nil
		}

		all, err := ch.Submit(answer)
		if err != nil {
			return a.fail(err)
		}
		fmt.Fprintf(a.out, "So far: %v\n", all)
	}
}

func (a *App) Users(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	users, err := a.client.Users(ctx)
	if err != nil {
		return a.fail(err)
	}

	ids := make([]string, 0, len(users))
	for id := range users {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		fmt.Fprintln(a.out, id)
	}
	fmt.Fprintf(a.out, "%d user(s)\n", len(ids))
	return nil
}

func (a *App) Ping(ctx context.Context) error {
	ctx, cancel := a.requestContext(ctx)
	defer cancel()

	if err := a.client.Ping(ctx); err != nil {
		return a.fail(err)
	}
	fmt.Fprintln(a.out, "Server is up")
	return nil
}

func (a *App) Logout(ctx context.Context) error {
	a.client.Logout()
	a.userID = ""
	fmt.Fprintln(a.out, "Logged out")
	return nil
}

func (a *App) fail(err error) error {
	fmt.Fprintf(a.out, "error: %v\n", err)
	return err
}
