package service

import (
	"fmt"
	"net/smtp"

	"github.com/rs/zerolog/log"

	"github.com/Isaac25-lgtm/MOTION-INPRINTS-SYSTEM/internal/model"
)

type EmailService interface{ Send(to, subject, body string) error }

type SMTPConfig struct {
	Host string
	Port string
	From string
}

type smtpEmail struct{ cfg SMTPConfig }

func NewEmailService(cfg SMTPConfig) EmailService { return &smtpEmail{cfg: cfg} }

func (s *smtpEmail) Send(to, subject, body string) error {
	addr := s.cfg.Host + ":" + s.cfg.Port

	msg := "From: " + s.cfg.From + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"MIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n" +
		body

	return smtp.SendMail(addr, nil, s.cfg.From, []string{to}, []byte(msg))
}

// Notifier delivers best-effort order notifications. Implementations never
// return errors to the caller; delivery failures are logged and dropped.
type Notifier interface {
	InquiryReceived(o model.Order)
	OrderConfirmed(o model.Order)
}

type emailNotifier struct {
	email      EmailService
	adminEmail string
	configured bool
}

func NewEmailNotifier(email EmailService, adminEmail string, configured bool) Notifier {
	return &emailNotifier{email: email, adminEmail: adminEmail, configured: configured}
}

func (n *emailNotifier) InquiryReceived(o model.Order) {
	if !n.configured {
		log.Debug().Msg("mail not configured, skipping inquiry notification")
		return
	}
	name, email := o.CustomerName(), o.CustomerEmail()

	n.send(n.adminEmail, fmt.Sprintf("New Order %s from %s", o.Ref, name),
		fmt.Sprintf("New order received on the Motion website.\n\n"+
			"Order Ref: %s\nCustomer: %s\nEmail: %s\nService: %s\n\nDetails:\n%s\n",
			o.Ref, name, email, o.ServiceType, o.Details))

	if email == "" {
		return
	}
	n.send(email, "Your Order Request - Motion",
		fmt.Sprintf("Dear %s,\n\n"+
			"Thank you for your order request! We have received your inquiry and will get back to you shortly.\n\n"+
			"Order Reference: %s\nService: %s\n\nBest regards,\nMotion Team\n",
			name, o.Ref, o.ServiceType))
}

func (n *emailNotifier) OrderConfirmed(o model.Order) {
	if !n.configured {
		log.Debug().Msg("mail not configured, skipping confirmation notification")
		return
	}
	name, email := o.CustomerName(), o.CustomerEmail()

	n.send(n.adminEmail, fmt.Sprintf("Quote accepted: order %s confirmed", o.Ref),
		fmt.Sprintf("A quote was accepted and converted to a confirmed order.\n\n"+
			"Order Ref: %s\nCustomer: %s\nEmail: %s\nTotal: %.2f\n",
			o.Ref, name, email, float64(o.TotalCents)/100.0))

	if email == "" {
		return
	}
	n.send(email, "Your Order Confirmation - Motion",
		fmt.Sprintf("Dear %s,\n\n"+
			"Your quote has been accepted and your order is confirmed.\n\n"+
			"Order Reference: %s\nTotal: %.2f\n\n"+
			"We will be in touch about production and delivery.\n\nBest regards,\nMotion Team\n",
			name, o.Ref, float64(o.TotalCents)/100.0))
}

func (n *emailNotifier) send(to, subject, body string) {
	if err := n.email.Send(to, subject, body); err != nil {
		log.Warn().Err(err).Str("to", to).Str("subject", subject).
			Msg("notification send failed")
	}
}
