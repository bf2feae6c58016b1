package client

import (
	"bytes"
	"testing"
	"time"

	"github.com/MKhiriev/pass-the-pages/models"
	"github.com/stretchr/testify/assert"
)

func TestPrintMessages_FallsBackToSenderID(t *testing.T) {
	var buf bytes.Buffer
	printMessages(&buf, []models.Message{
		{SenderUserID: 9, Message: "is it still available?", SentAt: time.Now()},
		{SenderUserID: 7, SenderUsername: "alice", Message: "yes"},
	})

	out := buf.String()
	assert.Contains(t, out, "#9")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "is it still available?")
}

func TestPrintEmptyLists(t *testing.T) {
	tests := []struct {
		name  string
		print func(*bytes.Buffer)
		want  string
	}{
		{name: "books", print: func(b *bytes.Buffer) { printBooks(b, nil) }, want: "no books available"},
		{name: "users", print: func(b *bytes.Buffer) { printUsers(b, nil) }, want: "no other users yet"},
		{name: "transactions", print: func(b *bytes.Buffer) { printTransactions(b, nil) }, want: "no transactions yet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.print(&buf)
			assert.Contains(t, buf.String(), tt.want)
		})
	}
}

func TestFormatHelpers(t *testing.T) {
	assert.Equal(t, "3.50", formatAmount(3.5))
	assert.Equal(t, "-", formatTime(time.Time{}))
	assert.Equal(t, "42", formatID(42))
}
