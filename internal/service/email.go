package service

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"vivaha-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) send(to, subject, body string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *emailService) SendOrderConfirmation(ctx context.Context, email, name, orderID string, total int64) error {
	body := fmt.Sprintf("Hello %s,\n\nThank you for your order!\n\nOrder ID: %s\nTotal: ₹%.2f\n\nWe will notify you as your order progresses.\n\nBest regards,\nThe Vivaha Team",
		name, orderID, float64(total)/100)
	return s.send(email, fmt.Sprintf("Order Confirmation - %s", orderID), body)
}

func (s *emailService) SendOrderStatusUpdate(ctx context.Context, email, name, orderID string, status domain.OrderStatus) error {
	greeting := "Hello,"
	if name != "" {
		greeting = fmt.Sprintf("Hello %s,", name)
	}
	body := fmt.Sprintf("%s\n\nYour order %s is now: %s.\n\nBest regards,\nThe Vivaha Team", greeting, orderID, status)
	return s.send(email, fmt.Sprintf("Order Update - %s", orderID), body)
}

func (s *emailService) SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error {
	body := fmt.Sprintf("Hello %s,\n\nYour account status has been updated to: %s.", name, status)
	if reason != "" {
		body += fmt.Sprintf("\n\nReason: %s", reason)
	}
	body += "\n\nBest regards,\nThe Vivaha Team"
	return s.send(email, "Account Status Update", body)
}

func (s *emailService) SendUnreadDigest(ctx context.Context, email, name string, unread int32) error {
	body := fmt.Sprintf("Hello %s,\n\nYou have %d unread notifications waiting for you.\n\nBest regards,\nThe Vivaha Team", name, unread)
	return s.send(email, "You have unread notifications", body)
}

// noopEmailService drops every message. Wired when SMTP is disabled so the
// rest of the system never has to nil-check the email dependency.
type noopEmailService struct{}

func NewNoopEmailService() EmailService {
	return noopEmailService{}
}

func (noopEmailService) SendOrderConfirmation(ctx context.Context, email, name, orderID string, total int64) error {
	return nil
}

func (noopEmailService) SendOrderStatusUpdate(ctx context.Context, email, name, orderID string, status domain.OrderStatus) error {
	return nil
}

func (noopEmailService) SendAccountStatusNotification(ctx context.Context, email, name, status, reason string) error {
	return nil
}

func (noopEmailService) SendUnreadDigest(ctx context.Context, email, name string, unread int32) error {
	return nil
}
