package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/independencecare/chatdesk/internal/model/chat"
	"github.com/independencecare/chatdesk/internal/widget"
)

const banner = "Rosella from Independence Care. Commands: /clear /export /quit. Type a number to pick a suggestion."

type console struct {
	in  *bufio.Scanner
	out io.Writer
}

func (c *console) prompt(label string) (string, bool) {
	fmt.Fprintf(c.out, "%s: ", label)
	if !c.in.Scan() {
		return "", false
	}
	return c.in.Text(), true
}

func (c *console) bot(text string) {
	fmt.Fprintf(c.out, "Rosella: %s\n", text)
}

// runChat drives one session from in to out until /quit or EOF.
func runChat(ctx context.Context, in io.Reader, out io.Writer, session *widget.Session, opts chatOptions) error {
	c := &console{in: bufio.NewScanner(in), out: out}
	fmt.Fprintln(out, banner)

	reg, ok := register(ctx, c, session, opts)
	if !ok {
		return c.in.Err()
	}

	c.bot(reg.Welcome)
	fmt.Fprintf(out, "[topic: %s] %s\n", reg.Topic.Category, reg.Topic.Reply)
	c.bot(reg.Initial.Text)
	suggestions := reg.Initial.Suggestions
	printSuggestions(out, suggestions)

	for {
		line, ok := c.prompt("You")
		if !ok {
			return c.in.Err()
		}

		switch strings.TrimSpace(line) {
		case "/quit":
			return nil
		case "/clear":
			c.bot(session.Reset())
			suggestions = nil
			continue
		case "/export":
			enc := json.NewEncoder(out)
			enc.SetIndent("", "  ")
			if err := enc.Encode(session.Export()); err != nil {
				return fmt.Errorf("export conversation: %w", err)
			}
			continue
		}

		if picked, ok := pickSuggestion(line, suggestions); ok {
			fmt.Fprintf(out, "You: %s\n", picked)
			line = picked
		}

		if turn, sent := session.Send(ctx, line); sent {
			c.bot(turn.Exchange.BotText)
			suggestions = turn.Reply.Suggestions
			printSuggestions(out, suggestions)
		}
	}
}

// register asks for the contact form until it validates. Flag values are
// used for the first attempt.
func register(ctx context.Context, c *console, session *widget.Session, opts chatOptions) (widget.Registration, bool) {
	name, contact, reason := opts.name, opts.contact, opts.reason
	for {
		var ok bool
		if strings.TrimSpace(name) == "" {
			if name, ok = c.prompt("Name"); !ok {
				return widget.Registration{}, false
			}
		}
		if strings.TrimSpace(contact) == "" {
			if contact, ok = c.prompt("Contact number"); !ok {
				return widget.Registration{}, false
			}
		}
		if strings.TrimSpace(reason) == "" {
			if reason, ok = c.prompt("Reason for contact"); !ok {
				return widget.Registration{}, false
			}
		}

		reg, err := session.SubmitProfile(ctx, name, contact, reason)
		if err == nil {
			return reg, true
		}

		var verr *chat.ValidationError
		if !errors.As(err, &verr) {
			fmt.Fprintf(c.out, "error: %v\n", err)
			return widget.Registration{}, false
		}
		fmt.Fprintf(c.out, "! %s\n", verr.Notice)
		switch verr.Field {
		case "name":
			name = ""
		case "contact":
			contact = ""
		default:
			reason = ""
		}
	}
}

func printSuggestions(out io.Writer, suggestions []string) {
	for i, s := range suggestions {
		fmt.Fprintf(out, "  [%d] %s\n", i+1, s)
	}
}

// pickSuggestion maps a bare number to the matching suggestion from the last reply.
func pickSuggestion(line string, suggestions []string) (string, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil || n < 1 || n > len(suggestions) {
		return "", false
	}
	return suggestions[n-1], true
}
