package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"gymgate/internal/shared/biztime"
	"gymgate/internal/shared/config"
	"gymgate/internal/shared/logger"
)

// AlertMailer notifies operators when the access decision engine cannot
// reach storage. The turnstile keeps fail-closed behavior either way; the
// mail exists so someone unlocks the door manually.
type AlertMailer struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewAlertMailer(cfg *config.EmailConfig) *AlertMailer {
	return &AlertMailer{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger: logger.NewLogger().With("component", "email.alerts"),
	}
}

// Enabled reports whether alerting is configured. An empty recipient list
// turns the mailer into a no-op.
func (m *AlertMailer) Enabled() bool {
	return m.cfg.SMTPHost != "" && len(m.cfg.AlertRecipients) > 0
}

// SendStorageFailureAlert reports a failed access decision to operators.
func (m *AlertMailer) SendStorageFailureAlert(deviceID, faceToken string, cause error) error {
	if !m.Enabled() {
		return nil
	}

	occurredAt := biztime.FormatInBizTimezone(biztime.NowUTC(), time.RFC3339)

	subject := "gymgate: turnstile decision failed, gate held closed"
	plainBody := fmt.Sprintf(`A turnstile access decision could not be completed and the gate stayed closed.

Time:       %s
Device:     %s
Face token: %s
Error:      %v

Check database connectivity. Members at the door may need to be let in manually.
`, occurredAt, deviceID, faceToken, cause)

	msg := gomail.NewMessage()
	msg.SetHeader("From", msg.FormatAddress(m.cfg.FromAddress, m.cfg.FromName))
	msg.SetHeader("To", m.cfg.AlertRecipients...)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", plainBody)
	msg.SetHeader("Date", time.Now().Format(time.RFC1123Z))

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Errorw("failed to send storage failure alert", "error", err)
		return fmt.Errorf("failed to send alert email: %w", err)
	}

	m.logger.Infow("storage failure alert sent",
		"recipients", len(m.cfg.AlertRecipients),
		"device_id", deviceID)
	return nil
}
