// Package email renders and delivers the transactional emails the lead
// pipeline produces.
package email

import (
	"context"
	"strconv"
)

// Sender delivers the three lead emails. Implementations must be safe for
// concurrent use; the notification module calls them from event handlers.
type Sender interface {
	// SendEstimateEmail sends the sizing summary to the prospect.
	SendEstimateEmail(ctx context.Context, toEmail, name, systemSizeLabel string, dailyEnergyKWh float64, totalCost int64) error
	// SendLeadAlertEmail notifies the sales inbox about a fresh lead.
	SendLeadAlertEmail(ctx context.Context, toEmail, leadName, leadEmail, leadPhone, systemSizeLabel string, totalCost int64) error
	// SendFollowUpEmail nudges a prospect that went quiet.
	SendFollowUpEmail(ctx context.Context, toEmail, name string) error
}

// NoopSender drops every email. Used when SMTP is not configured so the
// rest of the pipeline keeps working in development.
type NoopSender struct{}

func (NoopSender) SendEstimateEmail(context.Context, string, string, string, float64, int64) error {
	return nil
}

func (NoopSender) SendLeadAlertEmail(context.Context, string, string, string, string, string, int64) error {
	return nil
}

func (NoopSender) SendFollowUpEmail(context.Context, string, string) error {
	return nil
}

var _ Sender = NoopSender{}

// formatCurrencyNGN renders a whole-naira amount with thousands separators.
func formatCurrencyNGN(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	negative := false
	if len(digits) > 0 && digits[0] == '-' {
		negative = true
		digits = digits[1:]
	}

	var grouped []byte
	for i, d := range []byte(digits) {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped = append(grouped, ',')
		}
		grouped = append(grouped, d)
	}

	result := "₦" + string(grouped)
	if negative {
		result = "-" + result
	}
	return result
}
