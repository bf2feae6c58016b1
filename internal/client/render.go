package client

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MKhiriev/pass-the-pages/models"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func renderTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		String()
}

func printTitle(w io.Writer, title string) {
	fmt.Fprintln(w, titleStyle.Render(title))
}

func printHint(w io.Writer, hint string) {
	fmt.Fprintln(w, helpStyle.Render(hint))
}

func formatID(id int64) string {
	return strconv.FormatInt(id, 10)
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', 2, 64)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format(time.DateTime)
}

func printUser(w io.Writer, user models.User) {
	fmt.Fprintln(w, renderTable(
		[]string{"ID", "Username", "Email", "First name", "Last name"},
		[][]string{{formatID(user.UserID), user.Username, user.Email, user.FirstName, user.LastName}},
	))
}

func printUsers(w io.Writer, users []models.UserSummary) {
	if len(users) == 0 {
		printHint(w, "no other users yet")
		return
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{formatID(u.UserID), u.Username})
	}
	fmt.Fprintln(w, renderTable([]string{"ID", "Username"}, rows))
}

func printBooks(w io.Writer, books []models.Book) {
	if len(books) == 0 {
		printHint(w, "no books available")
		return
	}

	rows := make([][]string, 0, len(books))
	for _, b := range books {
		rows = append(rows, []string{formatID(b.BookID), b.Title, b.Author, b.Subject, b.Condition, b.Description})
	}
	fmt.Fprintln(w, renderTable([]string{"ID", "Title", "Author", "Subject", "Condition", "Description"}, rows))
}

func printMessages(w io.Writer, messages []models.Message) {
	if len(messages) == 0 {
		printHint(w, "no messages yet")
		return
	}

	rows := make([][]string, 0, len(messages))
	for _, m := range messages {
		from := m.SenderUsername
		if from == "" {
			from = "#" + formatID(m.SenderUserID)
		}
		rows = append(rows, []string{formatTime(m.SentAt), from, m.Message})
	}
	fmt.Fprintln(w, renderTable([]string{"Sent at", "From", "Message"}, rows))
}

func printTransactions(w io.Writer, transactions []models.Transaction) {
	if len(transactions) == 0 {
		printHint(w, "no transactions yet")
		return
	}

	rows := make([][]string, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, []string{
			formatID(t.TransactionID),
			formatTime(t.Timestamp),
			formatID(t.SenderID),
			formatID(t.ReceiverID),
			formatID(t.BookID),
			formatAmount(t.Amount),
		})
	}
	fmt.Fprintln(w, renderTable([]string{"ID", "Time", "Sender", "Receiver", "Book", "Amount"}, rows))
}
