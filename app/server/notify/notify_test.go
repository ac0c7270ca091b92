package notify

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
	"net/smtp"
	"portfolio-cms/app/server/models"
	"strings"
	"testing"
)

type sentMail struct {
	addr string
	from string
	to   []string
	msg  string
}

func newTestMailer(t *testing.T, opts Options, sendErr error) (*Mailer, *[]sentMail) {
	var sent []sentMail
	m := New(opts, zaptest.NewLogger(t))
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		sent = append(sent, sentMail{addr: addr, from: from, to: to, msg: string(msg)})
		return sendErr
	}
	return m, &sent
}

var testOptions = Options{
	Host:     "smtp.example.com",
	Port:     587,
	User:     "mailer",
	Password: "secret",
	From:     "noreply@portfolio.com",
}

func TestContactMessageSends(t *testing.T) {
	m, sent := newTestMailer(t, testOptions, nil)

	m.ContactMessage("owner@example.com", &models.Message{
		Name:    "Visitor",
		Email:   "visitor@example.com",
		Message: "Hello <script>alert(1)</script>",
	})

	require.Len(t, *sent, 1)
	mail := (*sent)[0]
	assert.Equal(t, "smtp.example.com:587", mail.addr)
	assert.Equal(t, "noreply@portfolio.com", mail.from)
	assert.Equal(t, []string{"owner@example.com"}, mail.to)
	assert.Contains(t, mail.msg, "Subject: New Portfolio Contact Message from Visitor\r\n")
	assert.Contains(t, mail.msg, "multipart/alternative")
	assert.Contains(t, mail.msg, "text/plain")
	assert.Contains(t, mail.msg, "text/html")
	assert.Contains(t, mail.msg, "visitor@example.com")

	plain, html, found := strings.Cut(mail.msg, "Content-Type: text/html")
	require.True(t, found)
	assert.Contains(t, plain, "Hello <script>alert(1)</script>")
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestContactMessagePlainTextUnescaped(t *testing.T) {
	m, sent := newTestMailer(t, testOptions, nil)

	m.ContactMessage("owner@example.com", &models.Message{
		Name:    "O'Brien",
		Email:   "visitor@example.com",
		Message: `x < y & "z"`,
	})

	require.Len(t, *sent, 1)
	plain, _, found := strings.Cut((*sent)[0].msg, "Content-Type: text/html")
	require.True(t, found)
	assert.Contains(t, plain, "From: O'Brien\n")
	assert.Contains(t, plain, `x < y & "z"`)
	assert.NotContains(t, plain, "&#39;")
	assert.NotContains(t, plain, "&lt;")
}

func TestContactMessageSubjectInjection(t *testing.T) {
	m, sent := newTestMailer(t, testOptions, nil)

	m.ContactMessage("owner@example.com", &models.Message{
		Name:    "x\r\nBcc: victim@example.com",
		Email:   "visitor@example.com",
		Message: "hi",
	})

	require.Len(t, *sent, 1)
	assert.False(t, strings.Contains((*sent)[0].msg, "\r\nBcc:"))
}

func TestContactMessageSkippedWithoutCredentials(t *testing.T) {
	opts := testOptions
	opts.Password = ""
	m, sent := newTestMailer(t, opts, nil)

	assert.False(t, m.Enabled())
	m.ContactMessage("owner@example.com", &models.Message{Name: "a", Email: "a@example.com", Message: "b"})
	assert.Empty(t, *sent)
}

func TestContactMessageSkippedWithoutRecipient(t *testing.T) {
	m, sent := newTestMailer(t, testOptions, nil)

	m.ContactMessage("", &models.Message{Name: "a", Email: "a@example.com", Message: "b"})
	assert.Empty(t, *sent)
}

func TestContactMessageSendFailureIsSwallowed(t *testing.T) {
	m, sent := newTestMailer(t, testOptions, errors.New("connection refused"))

	assert.NotPanics(t, func() {
		m.ContactMessage("owner@example.com", &models.Message{Name: "a", Email: "a@example.com", Message: "b"})
	})
	assert.Len(t, *sent, 1)
}
