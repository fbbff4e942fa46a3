package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/socialmedia/infra/initializer"
	"github.com/amirasaad/socialmedia/pkg/app"
	"github.com/amirasaad/socialmedia/pkg/config"
	"github.com/amirasaad/socialmedia/pkg/dto"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const usage = `Usage: cli <command> [arguments]
Commands:
  migrate
  register <username>
  login <username>
  post <account_id> <text>
  messages [account_id]
  delete <message_id>`

var (
	okColor   = color.New(color.FgGreen)
	errColor  = color.New(color.FgRed)
	infoColor = color.New(color.FgCyan)
)

func main() {
	if len(os.Args) < 2 {
		fmt.Println(usage)
		return
	}
	if err := run(context.Background(), os.Args[1], os.Args[2:]); err != nil {
		_, _ = errColor.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd string, args []string) error {
	cfg, err := config.Load(config.GetEnv("ENV_FILE", ".env"))
	if err != nil {
		return err
	}
	if cmd == "migrate" {
		cfg.DB.AutoMigrate = true
	}
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return err
	}
	defer deps.Close() //nolint:errcheck
	a := app.New(deps, cfg)

	switch cmd {
	case "migrate":
		_, _ = okColor.Println("Migrations applied")
	case "register":
		if len(args) < 1 {
			return errors.New("usage: register <username>")
		}
		password, err := readPassword()
		if err != nil {
			return err
		}
		acc, err := a.AccountService.Register(ctx, dto.AccountCreate{Username: args[0], Password: password})
		if err != nil {
			return err
		}
		_, _ = okColor.Printf("Account registered: ID=%d, Username=%s\n", acc.ID, acc.Username)
	case "login":
		if len(args) < 1 {
			return errors.New("usage: login <username>")
		}
		password, err := readPassword()
		if err != nil {
			return err
		}
		acc, err := a.AccountService.Login(ctx, dto.AccountCredentials{Username: args[0], Password: password})
		if err != nil {
			return err
		}
		_, _ = okColor.Printf("Logged in as %s (ID=%d)\n", acc.Username, acc.ID)
	case "post":
		if len(args) < 2 {
			return errors.New("usage: post <account_id> <text>")
		}
		accountID, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid account_id: %w", err)
		}
		msg, err := a.MessageService.Create(ctx, dto.MessageCreate{
			PostedBy:        accountID,
			MessageText:     strings.Join(args[1:], " "),
			TimePostedEpoch: time.Now().Unix(),
		})
		if err != nil {
			return err
		}
		_, _ = okColor.Printf("Message posted: ID=%d\n", msg.ID)
	case "messages":
		var msgs []*dto.MessageRead
		if len(args) > 0 {
			accountID, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid account_id: %w", err)
			}
			msgs, err = a.MessageService.ListByAuthor(ctx, accountID)
			if err != nil {
				return err
			}
		} else {
			msgs, err = a.MessageService.ListAll(ctx)
			if err != nil {
				return err
			}
		}
		for _, m := range msgs {
			_, _ = infoColor.Printf("#%d ", m.ID)
			fmt.Printf("[%s] account %d: %s\n",
				time.Unix(m.TimePostedEpoch, 0).UTC().Format(time.RFC3339), m.PostedBy, m.MessageText)
		}
		if len(msgs) == 0 {
			fmt.Println("No messages")
		}
	case "delete":
		if len(args) < 1 {
			return errors.New("usage: delete <message_id>")
		}
		id, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid message_id: %w", err)
		}
		msg, err := a.MessageService.Delete(ctx, id)
		if err != nil {
			return err
		}
		if msg == nil {
			fmt.Println("Nothing to delete")
			return nil
		}
		_, _ = okColor.Printf("Deleted message %d: %s\n", msg.ID, msg.MessageText)
	default:
		fmt.Println(usage)
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// readPassword prompts without echo when stdin is a terminal.
func readPassword() (string, error) {
	fmt.Print("Password: ")
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		var p string
		_, err := fmt.Fscanln(os.Stdin, &p)
		return p, err
	}
	b, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", err
	}
	return string(b), nil
}
