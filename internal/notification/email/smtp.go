package email

import (
	"context"
	"fmt"
	"net"
	"time"

	gomail "github.com/wneessen/go-mail"

	"github.com/FIKE110/inverta/platform/config"
)

// SMTPSender implements Sender over a direct SMTP connection via go-mail.
type SMTPSender struct {
	host      string
	port      int
	username  string
	password  string
	fromName  string
	fromEmail string
}

// NewSMTPSender creates a sender from the SMTP configuration.
func NewSMTPSender(cfg config.EmailConfig) *SMTPSender {
	return &SMTPSender{
		host:      cfg.GetSMTPHost(),
		port:      cfg.GetSMTPPort(),
		username:  cfg.GetSMTPUsername(),
		password:  cfg.GetSMTPPassword(),
		fromName:  cfg.GetEmailFromName(),
		fromEmail: cfg.GetEmailFromAddress(),
	}
}

var _ Sender = (*SMTPSender)(nil)

func (s *SMTPSender) send(ctx context.Context, toEmail, subject, htmlContent string) error {
	msg := gomail.NewMsg()
	if err := msg.FromFormat(s.fromName, s.fromEmail); err != nil {
		return fmt.Errorf("smtp from: %w", err)
	}
	if err := msg.To(toEmail); err != nil {
		return fmt.Errorf("smtp to: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, htmlContent)

	client, err := gomail.NewClient(s.host,
		gomail.WithPort(s.port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(s.username),
		gomail.WithPassword(s.password),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
		gomail.WithTimeout(15*time.Second),
		gomail.WithDialContextFunc(func(dctx context.Context, _ string, addr string) (net.Conn, error) {
			return (&net.Dialer{}).DialContext(dctx, "tcp4", addr)
		}),
	)
	if err != nil {
		return fmt.Errorf("smtp client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}

	return nil
}

func (s *SMTPSender) SendEstimateEmail(ctx context.Context, toEmail, name, systemSizeLabel string, dailyEnergyKWh float64, totalCost int64) error {
	content, err := renderEmailTemplate("estimate.html", estimateEmailData{
		baseEmailData: baseEmailData{
			Title:   subjectEstimate,
			Heading: "Your solar estimate",
		},
		Name:            name,
		SystemSizeLabel: systemSizeLabel,
		DailyEnergyKWh:  dailyEnergyKWh,
		TotalFormatted:  formatCurrencyNGN(totalCost),
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subjectEstimate, content)
}

func (s *SMTPSender) SendLeadAlertEmail(ctx context.Context, toEmail, leadName, leadEmail, leadPhone, systemSizeLabel string, totalCost int64) error {
	subject := fmt.Sprintf(subjectLeadAlertFmt, leadName, systemSizeLabel)
	content, err := renderEmailTemplate("lead_alert.html", leadAlertEmailData{
		baseEmailData: baseEmailData{
			Title:   subject,
			Heading: "New lead",
		},
		LeadName:        leadName,
		LeadEmail:       leadEmail,
		LeadPhone:       leadPhone,
		SystemSizeLabel: systemSizeLabel,
		TotalFormatted:  formatCurrencyNGN(totalCost),
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subject, content)
}

func (s *SMTPSender) SendFollowUpEmail(ctx context.Context, toEmail, name string) error {
	content, err := renderEmailTemplate("follow_up.html", followUpEmailData{
		baseEmailData: baseEmailData{
			Title:   subjectFollowUp,
			Heading: "Your solar estimate is waiting",
		},
		Name: name,
	})
	if err != nil {
		return err
	}
	return s.send(ctx, toEmail, subjectFollowUp, content)
}
