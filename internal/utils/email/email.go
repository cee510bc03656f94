package email

import (
	"fmt"
	"net/smtp"
	"time"

	"github.com/jordan-wright/email"
	"github.com/sirupsen/logrus"

	"github.com/dealgrind/underwriting-service/internal/config"
)

// Sender handles sending emails via SMTP
type Sender struct {
	cfg    *config.Config
	logger *logrus.Logger
}

// NewSender creates a new email sender
func NewSender(cfg *config.Config, logger *logrus.Logger) *Sender {
	return &Sender{
		cfg:    cfg,
		logger: logger,
	}
}

// SendBalloonReminder notifies a deal owner that a balloon refinance is
// coming due, including the payment jump their stored metrics predict.
func (s *Sender) SendBalloonReminder(to, username, dealName string, dueDate time.Time, currentPayment, newPayment float64) error {
	e := email.NewEmail()
	e.From = s.cfg.SenderEmail
	e.To = []string{to}
	e.Subject = fmt.Sprintf("Balloon payment coming due: %s", dealName)

	body := fmt.Sprintf(
		"Dear %s,\n\n", username,
	)
	body += fmt.Sprintf(
		"The balloon payment on your deal %q is due on %s.\n"+
			"Your current monthly payment is $%.2f; after the refinance it is projected at $%.2f (a change of $%.2f per month).\n"+
			"Start lining up your refinance now to avoid a forced sale at the due date.\n",
		dealName, dueDate.Format("2006-01-02"), currentPayment, newPayment, newPayment-currentPayment,
	)
	body += "\nBest regards,\nDealGrind Underwriting"
	e.Text = []byte(body)

	addr := fmt.Sprintf("%s:%s", s.cfg.SMTPHost, s.cfg.SMTPPort)
	auth := smtp.PlainAuth("", s.cfg.SMTPUsername, s.cfg.SMTPPassword, s.cfg.SMTPHost)
	if err := e.Send(addr, auth); err != nil {
		s.logger.Errorf("Failed to send email to %s: %v", to, err)
		return fmt.Errorf("failed to send email: %w", err)
	}

	s.logger.Infof("Email sent to %s: %s", to, e.Subject)
	return nil
}
