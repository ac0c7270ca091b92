// Package notify mails the site owner when a visitor submits the contact form.
package notify

import (
	"bytes"
	"fmt"
	"go.uber.org/zap"
	"html/template"
	"io"
	"mime"
	"mime/multipart"
	"net"
	"net/smtp"
	"net/textproto"
	"portfolio-cms/app/server/models"
	"strconv"
	texttemplate "text/template"
	"time"
)

type Options struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

type Mailer struct {
	opts Options
	l    *zap.Logger
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func New(opts Options, l *zap.Logger) *Mailer {
	return &Mailer{
		opts: opts,
		l:    l,
		send: smtp.SendMail,
	}
}

// Enabled 在没有配置 SMTP 凭据时为 false ，此时不发送邮件
func (m *Mailer) Enabled() bool {
	return m.opts.User != "" && m.opts.Password != ""
}

// ContactMessage 发送留言通知；失败只记录日志，不影响留言本身
func (m *Mailer) ContactMessage(to string, msg *models.Message) {
	if !m.Enabled() {
		m.l.Warn("smtp credentials not configured, contact notification not sent", zap.Uint("messageID", msg.ID))
		return
	}
	if to == "" {
		m.l.Warn("no recipient for contact notification", zap.Uint("messageID", msg.ID))
		return
	}

	body, err := buildContactMail(m.opts.From, to, msg)
	if err != nil {
		m.l.Error("failed to build contact notification", zap.Uint("messageID", msg.ID), zap.Error(err))
		return
	}

	addr := net.JoinHostPort(m.opts.Host, strconv.Itoa(m.opts.Port))
	auth := smtp.PlainAuth("", m.opts.User, m.opts.Password, m.opts.Host)
	if err = m.send(addr, auth, m.opts.From, []string{to}, body); err != nil {
		m.l.Error("failed to send contact notification", zap.Uint("messageID", msg.ID), zap.Error(err))
		return
	}

	m.l.Info("contact notification sent", zap.Uint("messageID", msg.ID), zap.String("to", to))
}

var textTemplate = texttemplate.Must(texttemplate.New("text").Parse(`New Contact Form Submission

From: {{.Name}}
Email: {{.Email}}

Message:
{{.Message}}

---
Received: {{.Received}}
`))

var htmlTemplate = template.Must(template.New("html").Parse(`<html>
  <body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
    <div style="max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 5px;">
      <h2 style="color: #C778DD; border-bottom: 2px solid #C778DD; padding-bottom: 10px;">New Contact Form Submission</h2>
      <p><strong>From:</strong> {{.Name}}</p>
      <p><strong>Email:</strong> <a href="mailto:{{.Email}}">{{.Email}}</a></p>
      <div style="background-color: #f5f5f5; padding: 15px; border-left: 4px solid #C778DD; margin: 20px 0;">
        <h3 style="margin-top: 0;">Message:</h3>
        <p>{{.Message}}</p>
      </div>
      <p style="font-size: 12px; color: #777;">Received: {{.Received}}</p>
    </div>
  </body>
</html>
`))

type contactView struct {
	Name     string
	Email    string
	Message  string
	Received string
}

func buildContactMail(from, to string, msg *models.Message) ([]byte, error) {
	received := msg.CreatedAt
	if received.IsZero() {
		received = time.Now()
	}
	view := contactView{
		Name:     msg.Name,
		Email:    msg.Email,
		Message:  msg.Message,
		Received: received.Format("2006-01-02 15:04:05"),
	}

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	// 邮件头
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", "New Portfolio Contact Message from "+msg.Name))
	fmt.Fprintf(&buf, "Date: %s\r\n", received.Format(time.RFC1123Z))
	buf.WriteString("MIME-Version: 1.0\r\n")
	fmt.Fprintf(&buf, "Content-Type: multipart/alternative; boundary=%s\r\n\r\n", mw.Boundary())

	// 纯文本原样输出，只有 HTML 版本需要转义
	for _, part := range []struct {
		contentType string
		tmpl        interface{ Execute(io.Writer, any) error }
	}{
		{"text/plain; charset=utf-8", textTemplate},
		{"text/html; charset=utf-8", htmlTemplate},
	} {
		w, err := mw.CreatePart(textproto.MIMEHeader{"Content-Type": {part.contentType}})
		if err != nil {
			return nil, fmt.Errorf("create mime part: %w", err)
		}
		if err = part.tmpl.Execute(w, view); err != nil {
			return nil, fmt.Errorf("render %s: %w", part.contentType, err)
		}
	}

	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	return buf.Bytes(), nil
}
