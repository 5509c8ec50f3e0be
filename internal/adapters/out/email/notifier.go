// Package email delivers return request notifications over SMTP: the
// admin alert on every new request, the customer update when a review
// decision changes the status, and the daily digest of requests still
// awaiting review.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"net/smtp"
	"strings"

	"returns/internal/core/ports"

	"github.com/labstack/gommon/email"
)

// sender abstracts the SMTP client so rendering can be tested without a
// mail server.
type sender interface {
	Send(*email.Message) error
}

// Config carries the addressing side of the notifier. SMTP transport
// settings live on the client passed to NewSMTPNotifier.
type Config struct {
	// From is the sender address on every outgoing mail.
	From string

	// AdminEmail receives the new-request alerts.
	AdminEmail string

	// AdminBaseURL is the root of the staff panel, used to build the
	// "view order" link. May be empty, which drops the link.
	AdminBaseURL string
}

// SMTPNotifier implements ports.Notifier over a gommon email client.
type SMTPNotifier struct {
	client sender
	config Config
}

// NewSMTPNotifier creates a notifier sending through the given SMTP
// endpoint. Username may be empty for unauthenticated relays.
func NewSMTPNotifier(smtpAddress, username, password string, config Config) *SMTPNotifier {
	client := email.New(smtpAddress)
	if username != "" {
		host := smtpAddress
		if i := strings.LastIndex(smtpAddress, ":"); i >= 0 {
			host = smtpAddress[:i]
		}
		client.Auth = smtp.PlainAuth("", username, password, host)
	}

	return &SMTPNotifier{
		client: client,
		config: config,
	}
}

// NotifyRequestSubmitted mails the shop admin about a new return request.
func (n *SMTPNotifier) NotifyRequestSubmitted(_ context.Context, event ports.RequestSubmitted) error {
	body, err := renderAdminBody(event, n.config.AdminBaseURL)
	if err != nil {
		return err
	}

	return n.client.Send(&email.Message{
		From:     n.config.From,
		To:       n.config.AdminEmail,
		Subject:  fmt.Sprintf("New Return Request: %s", event.Code),
		BodyHTML: body,
	})
}

// NotifyRequestStatusChanged mails the customer about a review decision.
// A missing recipient address drops the mail without error, matching the
// best-effort contract of the notifier port.
func (n *SMTPNotifier) NotifyRequestStatusChanged(_ context.Context, event ports.RequestStatusChanged) error {
	if event.RecipientEmail == "" {
		return nil
	}

	body, err := renderCustomerBody(event)
	if err != nil {
		return err
	}

	return n.client.Send(&email.Message{
		From:     n.config.From,
		To:       event.RecipientEmail,
		Subject:  fmt.Sprintf("Your Return Request Was Updated: %s", event.Code),
		BodyHTML: body,
	})
}

// NotifyPendingReviewDigest mails the shop admin the daily summary of
// requests still awaiting review. An empty digest is never sent; the
// caller skips dispatch when nothing is pending.
func (n *SMTPNotifier) NotifyPendingReviewDigest(_ context.Context, event ports.PendingReviewDigest) error {
	body, err := renderDigestBody(event)
	if err != nil {
		return err
	}

	return n.client.Send(&email.Message{
		From:     n.config.From,
		To:       n.config.AdminEmail,
		Subject:  fmt.Sprintf("Return Requests Awaiting Review: %d", event.Count),
		BodyHTML: body,
	})
}

var adminTemplate = template.Must(template.New("admin").Parse(
	`<div style="font-family:Arial,Helvetica,sans-serif;font-size:14px;line-height:1.5;color:#222;">` +
		`<h2 style="margin:0 0 12px;">A new return request was created.</h2>` +
		`<p><strong>Return Code:</strong> {{.Code}}</p>` +
		`{{if .OrderNumber}}<p><strong>Order:</strong> #{{.OrderNumber}}</p>{{end}}` +
		`<p><strong>Reason:</strong><br>{{.Reason}}</p>` +
		`<h3 style="margin:16px 0 8px;">Order Items</h3>` +
		`<ul style="margin:0 0 12px 18px;padding:0;">` +
		`{{range .Lines}}<li>{{.Name}} &times; {{.Quantity}} &mdash; {{printf "%.2f" .Subtotal}}</li>{{end}}` +
		`</ul>` +
		`<p><strong>Order Total:</strong> {{printf "%.2f" .OrderTotal}}</p>` +
		`{{if .OrderLink}}<p><a href="{{.OrderLink}}">View order</a></p>{{end}}` +
		`</div>`))

var customerTemplate = template.Must(template.New("customer").Parse(
	`<div style="font-family:Arial,Helvetica,sans-serif;font-size:14px;line-height:1.5;color:#222;">` +
		`<h2 style="margin:0 0 12px;">The status of your return request was updated.</h2>` +
		`<p><strong>Return Code:</strong> {{.Code}}</p>` +
		`<p><strong>New Status:</strong> {{.StatusLabel}}</p>` +
		`<p><strong>Order:</strong> #{{.OrderNumber}}</p>` +
		`{{if .Lines}}<h3 style="margin:16px 0 8px;">Order Items</h3>` +
		`<ul style="margin:0 0 12px 18px;padding:0;">` +
		`{{range .Lines}}<li>{{.Name}} &times; {{.Quantity}} &mdash; {{printf "%.2f" .Subtotal}}</li>{{end}}` +
		`</ul>{{end}}` +
		`</div>`))

var digestTemplate = template.Must(template.New("digest").Parse(
	`<div style="font-family:Arial,Helvetica,sans-serif;font-size:14px;line-height:1.5;color:#222;">` +
		`<h2 style="margin:0 0 12px;">{{.Count}} return request{{if ne .Count 1}}s{{end}} awaiting review.</h2>` +
		`<ul style="margin:0 0 12px 18px;padding:0;">` +
		`{{range .Items}}<li><strong>{{.Code}}</strong>{{if .OrderNumber}} &mdash; Order #{{.OrderNumber}}{{end}}: {{.Reason}}</li>{{end}}` +
		`</ul>` +
		`</div>`))

func renderAdminBody(event ports.RequestSubmitted, adminBaseURL string) (string, error) {
	var orderLink string
	if adminBaseURL != "" {
		orderLink = fmt.Sprintf("%s/orders/%d", strings.TrimRight(adminBaseURL, "/"), event.OrderID)
	}

	var buf bytes.Buffer
	err := adminTemplate.Execute(&buf, struct {
		ports.RequestSubmitted
		OrderLink string
	}{RequestSubmitted: event, OrderLink: orderLink})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderDigestBody(event ports.PendingReviewDigest) (string, error) {
	var buf bytes.Buffer
	if err := digestTemplate.Execute(&buf, event); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderCustomerBody(event ports.RequestStatusChanged) (string, error) {
	orderNumber := event.OrderNumber
	if orderNumber == "" {
		orderNumber = "-"
	}

	var buf bytes.Buffer
	err := customerTemplate.Execute(&buf, struct {
		ports.RequestStatusChanged
		StatusLabel string
		OrderNumber string
	}{RequestStatusChanged: event, StatusLabel: event.Status.Label(), OrderNumber: orderNumber})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
