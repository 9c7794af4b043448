package api

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/bank-ledger/internal/handlers/v1/interestrule"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/statement"
	"github.com/carson-networks/bank-ledger/internal/handlers/v1/transaction"
	"github.com/carson-networks/bank-ledger/internal/logging"
	"github.com/carson-networks/bank-ledger/internal/service"
)

const (
	menuText = "Welcome to AwesomeGIC Bank! What would you like to do?\n" +
		"[T] Input transactions \n" +
		"[I] Define interest rules\n" +
		"[P] Print statement\n" +
		"[Q] Quit\n"
	prompt       = "> "
	blankHint    = "(or enter blank to go back to main menu):\n"
	continueText = "\nIs there anything else you'd like to do?\n"
	goodbyeText  = "Thank you for banking with AwesomeGIC Bank.\nHave a nice day!\n"
	unknownText  = "Unknown option.\n"
)

type command struct {
	instructions string
	handle       logging.ConsoleFunc
}

// Console is the interactive menu over In and Out.
type Console struct {
	Logger  *logrus.Logger
	Service *service.Service
	In      io.Reader
	Out     io.Writer
}

// Serve runs the menu until the user quits, the input ends or ctx is done.
func (c *Console) Serve(ctx context.Context) error {
	addTransaction := transaction.NewAddTransactionHandler(c.Service.Transaction, c.Service.Statement)
	upsertRule := interestrule.NewUpsertRuleHandler(c.Service.InterestRule)
	printStatement := statement.NewPrintStatementHandler(c.Service.Statement)

	commands := map[string]command{
		"T": {
			instructions: "Please enter transaction details in <Date> <Account> <Type> <Amount> format \n",
			handle:       logging.LoggingWrapper("AddTransaction", c.Logger, addTransaction.Handler),
		},
		"I": {
			instructions: "Please enter interest rules details in <Date> <RuleId> <Rate in %> format \n",
			handle:       logging.LoggingWrapper("UpsertInterestRule", c.Logger, upsertRule.Handler),
		},
		"P": {
			instructions: "Please enter account and month to generate the statement <Account> <Year><Month>\n",
			handle:       logging.LoggingWrapper("PrintStatement", c.Logger, printStatement.Handler),
		},
	}

	scanner := bufio.NewScanner(c.In)
	readLine := func() (string, bool) {
		if ctx.Err() != nil || !scanner.Scan() {
			return "", false
		}
		return scanner.Text(), true
	}

	c.Logger.Info("Console.Serve.started")
	defer c.Logger.Info("Console.Serve.stopped")

	for {
		fmt.Fprint(c.Out, menuText+prompt)

		line, ok := readLine()
		if !ok {
			break
		}

		choice := strings.ToUpper(strings.TrimSpace(line))
		if choice == "" {
			continue
		}

		if choice == "Q" {
			fmt.Fprint(c.Out, goodbyeText)
			return nil
		}

		cmd, found := commands[choice]
		if !found {
			fmt.Fprint(c.Out, unknownText)
		} else {
			fmt.Fprint(c.Out, cmd.instructions+blankHint+prompt)

			input, ok := readLine()
			if !ok {
				break
			}

			if fields := strings.Fields(input); len(fields) > 0 {
				cmd.handle(ctx, c.Out, fields)
			}
		}

		fmt.Fprint(c.Out, continueText)
	}

	if err := scanner.Err(); err != nil {
		c.Logger.WithError(err).Error("Console.Serve.read error")
		return err
	}
	return ctx.Err()
}
