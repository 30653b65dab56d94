// Package cli implements the interactive menu surface over the domain
// services. Every operation runs to completion before the next input is read.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"foodloop/internal/domain"
	"foodloop/internal/repository"
	"foodloop/internal/service"
	"foodloop/internal/validate"
)

// Options tunes menu behavior from configuration.
type Options struct {
	RecentChatLimit int
	AlertWindowDays int
	ChartPath       string
}

// Menu drives the two nested command loops: the login gate and the
// per-session inventory/chat menu.
type Menu struct {
	users     service.UserService
	inventory service.InventoryService
	chat      service.ChatService
	reports   service.ReportService
	opts      Options
	in        *bufio.Scanner
	out       io.Writer
	log       logrus.FieldLogger
}

func NewMenu(
	users service.UserService,
	inventory service.InventoryService,
	chat service.ChatService,
	reports service.ReportService,
	opts Options,
	in io.Reader,
	out io.Writer,
	log logrus.FieldLogger,
) *Menu {
	return &Menu{
		users:     users,
		inventory: inventory,
		chat:      chat,
		reports:   reports,
		opts:      opts,
		in:        bufio.NewScanner(in),
		out:       out,
		log:       log,
	}
}

// expected reports whether err is a normal user-input outcome that is shown
// as a message and returns control to the menu. Anything else is a storage
// fault and bubbles up to a fatal log.
func expected(err error) bool {
	return errors.Is(err, service.ErrInvalidCredentials) ||
		errors.Is(err, service.ErrUsernameRequired) ||
		errors.Is(err, service.ErrInvalidDate) ||
		errors.Is(err, service.ErrInvalidQuantity) ||
		errors.Is(err, service.ErrOverPickup) ||
		errors.Is(err, service.ErrNoData) ||
		errors.Is(err, repository.ErrDuplicateUsername) ||
		errors.Is(err, repository.ErrItemNotFound)
}

// Run executes the outer menu until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(m.out, "\nFOOD LOOP - Helping Monterrey reduce food waste")
		fmt.Fprintln(m.out, "1. Log in")
		fmt.Fprintln(m.out, "2. Sign up")
		fmt.Fprintln(m.out, "3. Exit")

		choice, ok := m.prompt("Choose an option: ")
		if !ok {
			return nil
		}

		switch choice {
		case "1":
			if err := m.login(ctx); err != nil {
				return err
			}
		case "2":
			if err := m.signup(ctx); err != nil {
				return err
			}
		case "3":
			fmt.Fprintln(m.out, "Goodbye!")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option.")
		}
	}
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

// promptValid re-prompts until the input passes valid or input ends.
func (m *Menu) promptValid(label, retryLabel string, valid func(string) bool) (string, bool) {
	value, ok := m.prompt(label)
	if !ok {
		return "", false
	}
	for !valid(value) {
		value, ok = m.prompt(retryLabel)
		if !ok {
			return "", false
		}
	}
	return value, true
}

func (m *Menu) signup(ctx context.Context) error {
	username, ok := m.prompt("Enter new username: ")
	if !ok {
		return nil
	}
	password, ok := m.prompt("Enter password: ")
	if !ok {
		return nil
	}

	if _, err := m.users.Register(ctx, username, password); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateUsername):
			fmt.Fprintln(m.out, "That username already exists.")
		case expected(err):
			fmt.Fprintln(m.out, capitalize(err.Error())+".")
		default:
			return err
		}
		return nil
	}

	fmt.Fprintf(m.out, "User '%s' registered successfully!\n", username)
	return nil
}

func (m *Menu) login(ctx context.Context) error {
	username, ok := m.prompt("Username: ")
	if !ok {
		return nil
	}
	password, ok := m.prompt("Password: ")
	if !ok {
		return nil
	}

	user, err := m.users.Authenticate(ctx, username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			fmt.Fprintln(m.out, "Incorrect username or password.")
			return nil
		}
		return err
	}

	fmt.Fprintf(m.out, "Welcome, %s!\n", user.Username)
	m.log.WithField("user", user.Username).Info("logged in")
	return m.session(ctx, user.Username)
}

// session runs the inner menu until log out or input ends.
func (m *Menu) session(ctx context.Context, user string) error {
	for {
		fmt.Fprintf(m.out, "\nWelcome %s! Choose an option:\n", user)
		fmt.Fprintln(m.out, "1. Add food to inventory")
		fmt.Fprintln(m.out, "2. View available food")
		fmt.Fprintln(m.out, "3. View items expiring soon")
		fmt.Fprintln(m.out, "4. Search inventory")
		fmt.Fprintln(m.out, "5. Visualize donations by area")
		fmt.Fprintln(m.out, "6. Send chat message")
		fmt.Fprintln(m.out, "7. View chat messages")
		fmt.Fprintln(m.out, "8. Pick up food")
		fmt.Fprintln(m.out, "9. Log out")

		choice, ok := m.prompt("Enter your choice: ")
		if !ok {
			return nil
		}

		var err error
		switch choice {
		case "1":
			err = m.addFood(ctx, user)
		case "2":
			err = m.showInventory(ctx)
		case "3":
			err = m.expirationAlerts(ctx)
		case "4":
			err = m.searchInventory(ctx)
		case "5":
			err = m.visualize(ctx)
		case "6":
			err = m.sendMessage(ctx, user)
		case "7":
			err = m.showChat(ctx)
		case "8":
			err = m.pickupFood(ctx)
		case "9":
			fmt.Fprintln(m.out, "Logged out.")
			m.log.WithField("user", user).Info("logged out")
			return nil
		default:
			fmt.Fprintln(m.out, "Invalid option, please try again.")
		}
		if err != nil {
			return err
		}
	}
}

func (m *Menu) addFood(ctx context.Context, user string) error {
	name, ok := m.prompt("Food name: ")
	if !ok {
		return nil
	}
	area, ok := m.prompt("Area: ")
	if !ok {
		return nil
	}
	expiration, ok := m.promptValid(
		"Expiration date (YYYY-MM-DD): ",
		"Invalid date format. Please use YYYY-MM-DD: ",
		validate.IsValidDate,
	)
	if !ok {
		return nil
	}
	quantity, ok := m.promptValid(
		"Quantity: ",
		"Invalid number. Please enter a positive integer: ",
		validate.IsValidQuantity,
	)
	if !ok {
		return nil
	}

	if _, err := m.inventory.Add(ctx, name, area, expiration, quantity, user); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Food item added successfully!")
	return nil
}

func (m *Menu) showInventory(ctx context.Context) error {
	items, err := m.inventory.List(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\n--- Available Food ---")
	if len(items) == 0 {
		fmt.Fprintln(m.out, "No food donations available yet.")
	} else {
		m.printItems(items)
	}
	fmt.Fprintln(m.out, "------------------------")
	return nil
}

func (m *Menu) expirationAlerts(ctx context.Context) error {
	items, err := m.inventory.ExpiringSoon(ctx, time.Now(), m.opts.AlertWindowDays)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\n--- Expiration Alerts ---")
	if len(items) == 0 {
		fmt.Fprintln(m.out, "No items expiring soon.")
	} else {
		for _, item := range items {
			fmt.Fprintf(m.out, "%s (by %s) expires on %s\n", item.Name, item.Owner, item.Expiration)
		}
	}
	fmt.Fprintln(m.out, "-------------------------")
	return nil
}

func (m *Menu) searchInventory(ctx context.Context) error {
	fmt.Fprintln(m.out, "\nSearch options:")
	fmt.Fprintln(m.out, "1. By area")
	fmt.Fprintln(m.out, "2. By expiration date")
	fmt.Fprintln(m.out, "3. By donor")

	choice, ok := m.prompt("Enter choice: ")
	if !ok {
		return nil
	}

	var (
		field domain.SearchField
		value string
	)
	switch choice {
	case "1":
		field = domain.SearchByArea
		value, ok = m.prompt("Enter area: ")
	case "2":
		field = domain.SearchByExpiration
		value, ok = m.promptValid(
			"Enter expiration date (YYYY-MM-DD): ",
			"Invalid format. Enter expiration date (YYYY-MM-DD): ",
			validate.IsValidDate,
		)
	case "3":
		field = domain.SearchByDonor
		value, ok = m.prompt("Enter donor name: ")
	default:
		fmt.Fprintln(m.out, "Invalid choice.")
		return nil
	}
	if !ok {
		return nil
	}

	results, err := m.inventory.Search(ctx, field, value)
	if err != nil {
		if expected(err) {
			fmt.Fprintln(m.out, capitalize(err.Error())+".")
			return nil
		}
		return err
	}

	fmt.Fprintln(m.out, "\n--- Search Results ---")
	if len(results) == 0 {
		fmt.Fprintln(m.out, "No matches found.")
	} else {
		m.printItems(results)
	}
	fmt.Fprintln(m.out, "----------------------")
	return nil
}

func (m *Menu) visualize(ctx context.Context) error {
	err := m.reports.Chart(ctx)
	switch {
	case err == nil:
		fmt.Fprintf(m.out, "Chart saved to %s\n", m.opts.ChartPath)
	case errors.Is(err, service.ErrNoData):
		fmt.Fprintln(m.out, "No data available for visualization.")
	default:
		// a failed render is a reporting hiccup, not a reason to abort
		m.log.WithError(err).Warn("render chart")
		fmt.Fprintln(m.out, "Could not render chart.")
	}
	return nil
}

func (m *Menu) sendMessage(ctx context.Context, user string) error {
	message, ok := m.prompt("Type your message: ")
	if !ok {
		return nil
	}
	if _, err := m.chat.Send(ctx, user, message); err != nil {
		return err
	}
	fmt.Fprintln(m.out, "Message sent!")
	return nil
}

func (m *Menu) showChat(ctx context.Context) error {
	msgs, err := m.chat.Recent(ctx, m.opts.RecentChatLimit)
	if err != nil {
		return err
	}

	fmt.Fprintln(m.out, "\n--- Chat Messages ---")
	if len(msgs) == 0 {
		fmt.Fprintln(m.out, "No messages yet.")
	}
	for _, msg := range msgs {
		fmt.Fprintf(m.out, "%s | %s: %s\n", msg.Timestamp, msg.User, msg.Message)
	}
	fmt.Fprintln(m.out, "-----------------------")
	return nil
}

func (m *Menu) pickupFood(ctx context.Context) error {
	idStr, ok := m.prompt("Enter the ID of the item to pick up: ")
	if !ok {
		return nil
	}
	if !validate.IsValidQuantity(idStr) {
		fmt.Fprintln(m.out, "Invalid ID. Must be a number.")
		return nil
	}
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid ID. Must be a number.")
		return nil
	}

	item, err := m.inventory.Get(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			fmt.Fprintln(m.out, "Item not found.")
			return nil
		}
		return err
	}
	fmt.Fprintf(m.out, "\n%s currently has quantity: %d\n", item.Name, item.Quantity)

	qty, ok := m.prompt("How many units were picked up? ")
	if !ok {
		return nil
	}

	remaining, err := m.inventory.Pickup(ctx, id, qty)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidQuantity):
			fmt.Fprintln(m.out, "Invalid quantity.")
		case errors.Is(err, service.ErrOverPickup):
			fmt.Fprintln(m.out, "Cannot pick up more than available.")
		case errors.Is(err, repository.ErrItemNotFound):
			fmt.Fprintln(m.out, "Item not found.")
		default:
			return err
		}
		return nil
	}

	if remaining == 0 {
		fmt.Fprintln(m.out, "All units picked up - item removed from inventory.")
	} else {
		fmt.Fprintf(m.out, "Pickup recorded. New quantity: %d\n", remaining)
	}
	return nil
}

func (m *Menu) printItems(items []domain.FoodItem) {
	for _, item := range items {
		fmt.Fprintf(m.out, "[%d] %s | Area: %s | Exp: %s | Qty: %d | Donor: %s\n",
			item.ID, item.Name, item.Area, item.Expiration, item.Quantity, item.Owner)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
