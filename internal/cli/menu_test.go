package cli_test

import (
	"bytes"
	"context"
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"foodloop/internal/cli"
	"foodloop/internal/report"
	"foodloop/internal/repository/sqlite"
	"foodloop/internal/service"
)

type stubRenderer struct {
	bars []report.Bar
}

func (r *stubRenderer) Render(bars []report.Bar) error {
	r.bars = bars
	return nil
}

// runSession drives the menu over a real sqlite database with a scripted
// stdin and captures everything written to stdout.
func runSession(t *testing.T, script string) (string, *stubRenderer) {
	t.Helper()

	db, err := sqlite.Open(filepath.Join(t.TempDir(), "foodloop.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	userRepo := sqlite.NewUserRepository(db)
	itemRepo := sqlite.NewInventoryRepository(db)
	chatRepo := sqlite.NewChatRepository(db)
	require.NoError(t, userRepo.Init(ctx))
	require.NoError(t, itemRepo.Init(ctx))
	require.NoError(t, chatRepo.Init(ctx))

	renderer := &stubRenderer{}
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	var out bytes.Buffer
	menu := cli.NewMenu(
		service.NewUserService(userRepo),
		service.NewInventoryService(itemRepo),
		service.NewChatService(chatRepo),
		service.NewReportService(itemRepo, renderer),
		cli.Options{
			RecentChatLimit: 10,
			AlertWindowDays: 3,
			ChartPath:       "donations.png",
		},
		strings.NewReader(script),
		&out,
		logger,
	)

	require.NoError(t, menu.Run(ctx))
	return out.String(), renderer
}

func TestFullSession(t *testing.T) {
	script := strings.Join([]string{
		"2", "alice", "pw", // sign up
		"2", "alice", "pw2", // duplicate username
		"1", "alice", "wrong", // failed login
		"1", "alice", "pw", // login
		"1", "Bread", "North", "bad-date", "2025-01-01", "ten", "10", // add with re-prompts
		"2",           // view available food
		"5",           // visualize
		"8", "1", "3", // partial pickup
		"8", "1", "7", // full pickup
		"5", // visualize again, now empty
		"6", "hello", // send chat message
		"7", // view chat
		"9", // log out
		"3", // exit
	}, "\n") + "\n"

	out, renderer := runSession(t, script)

	assert.Contains(t, out, "User 'alice' registered successfully!")
	assert.Contains(t, out, "That username already exists.")
	assert.Contains(t, out, "Incorrect username or password.")
	assert.Contains(t, out, "Welcome, alice!")
	assert.Contains(t, out, "Invalid date format. Please use YYYY-MM-DD:")
	assert.Contains(t, out, "Invalid number. Please enter a positive integer:")
	assert.Contains(t, out, "Food item added successfully!")
	assert.Contains(t, out, "[1] Bread | Area: North | Exp: 2025-01-01 | Qty: 10 | Donor: alice")
	assert.Contains(t, out, "Chart saved to donations.png")
	assert.Equal(t, []report.Bar{{Area: "North", Total: 10}}, renderer.bars)
	assert.Contains(t, out, "Pickup recorded. New quantity: 7")
	assert.Contains(t, out, "All units picked up - item removed from inventory.")
	assert.Contains(t, out, "No data available for visualization.")
	assert.Contains(t, out, "Message sent!")
	assert.Contains(t, out, "alice: hello")
	assert.Contains(t, out, "Logged out.")
	assert.Contains(t, out, "Goodbye!")
}

func TestInvalidMenuChoicesRedisplay(t *testing.T) {
	script := "7\n3\n"

	out, _ := runSession(t, script)

	assert.Contains(t, out, "Invalid option.")
	// menu is shown again after the bad choice
	assert.Equal(t, 2, strings.Count(out, "1. Log in"))
	assert.Contains(t, out, "Goodbye!")
}

func TestSearchAndAlerts(t *testing.T) {
	script := strings.Join([]string{
		"2", "bob", "pw",
		"1", "bob", "pw",
		"1", "Milk", "South", "2024-12-01", "5",
		"3",             // expiring soon: date is long past, nothing in window
		"4", "1", "Sou", // search by area, hit
		"4", "1", "sou", // case-sensitive, miss
		"4", "3", "bob", // search by donor
		"4", "2", "nope", "2030-01-01", // search by date with re-prompt
		"4", "9", // invalid search choice
		"9",
		"3",
	}, "\n") + "\n"

	out, _ := runSession(t, script)

	assert.Contains(t, out, "No items expiring soon.")
	assert.Contains(t, out, "[1] Milk | Area: South | Exp: 2024-12-01 | Qty: 5 | Donor: bob")
	assert.Contains(t, out, "No matches found.")
	assert.Contains(t, out, "Invalid format. Enter expiration date (YYYY-MM-DD):")
	assert.Contains(t, out, "Invalid choice.")
}

func TestPickupInputErrors(t *testing.T) {
	script := strings.Join([]string{
		"2", "eve", "pw",
		"1", "eve", "pw",
		"8", "abc", // non-numeric id
		"8", "42", // missing item
		"1", "Rice", "East", "2025-06-01", "4",
		"8", "1", "9", // over pickup
		"8", "1", "0", // invalid quantity
		"9",
		"3",
	}, "\n") + "\n"

	out, _ := runSession(t, script)

	assert.Contains(t, out, "Invalid ID. Must be a number.")
	assert.Contains(t, out, "Item not found.")
	assert.Contains(t, out, "Rice currently has quantity: 4")
	assert.Contains(t, out, "Cannot pick up more than available.")
	assert.Contains(t, out, "Invalid quantity.")
}

func TestEOFExitsCleanly(t *testing.T) {
	out, _ := runSession(t, "")
	assert.Contains(t, out, "1. Log in")
}
