package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/Semavi7/who-estate-backend-different/pkg/config"
)

type EmailService struct {
	dialer       *gomail.Dialer
	from         string
	contactEmail string
	intakeEmail  string
	templates    *template.Template
}

// Template data structures
type PasswordResetData struct {
	ResetURL string
}

type ContactMessageData struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type ClientIntakeData struct {
	Name         string
	Email        string
	Phone        string
	PropertyType string
	Budget       string
	Location     string
	Timeline     string
	Message      string
}

var GlobalEmailService *EmailService

func InitEmailService(cfg config.SMTPConfig) error {
	svc, err := NewEmailService(cfg)
	if err != nil {
		return err
	}
	GlobalEmailService = svc
	return nil
}

func NewEmailService(cfg config.SMTPConfig) (*EmailService, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}

	port, err := strconv.Atoi(cfg.Port)
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP port %q: %v", cfg.Port, err)
	}

	templates, err := loadTemplates()
	if err != nil {
		return nil, fmt.Errorf("error loading email templates: %v", err)
	}

	return &EmailService{
		dialer:       gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password),
		from:         cfg.From,
		contactEmail: cfg.ContactEmail,
		intakeEmail:  cfg.IntakeEmail,
		templates:    templates,
	}, nil
}

func (s *EmailService) sendTemplateEmail(to, subject, templateName string, data interface{}) error {
	var body bytes.Buffer
	if err := s.templates.ExecuteTemplate(&body, templateName, data); err != nil {
		return fmt.Errorf("template execution error: %v", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body.String())

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}
	return nil
}

// SendResetPasswordMail şifre sıfırlama bağlantısını gönderir
func (s *EmailService) SendResetPasswordMail(to, resetURL string) error {
	return s.sendTemplateEmail(to, "Şifre Sıfırlama Talebi", "reset-password.html", PasswordResetData{
		ResetURL: resetURL,
	})
}

// SendContactMail iletişim formu bildirimini site sahibine gönderir
func (s *EmailService) SendContactMail(data ContactMessageData) error {
	return s.sendTemplateEmail(s.contactEmail, "Yeni İletişim Formu Mesajı", "contact-message.html", data)
}

// SendClientIntakeMail müşteri kayıt formu bildirimini gönderir
func (s *EmailService) SendClientIntakeMail(data ClientIntakeData) error {
	return s.sendTemplateEmail(s.intakeEmail, "Yeni Müşteri Kaydı", "client-intake.html", data)
}
