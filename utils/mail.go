package utils

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"os"

	"github.com/botanika-shop/botanika-api/models"
)

var orderConfirmationTemplate = template.Must(template.New("orderConfirmation").Parse(`
<html>
  <body>
    <p>Bonjour {{.Nom}},</p>
    <p>Merci pour votre commande <strong>{{.Reference}}</strong> d'un montant de {{printf "%.2f" .Total}} DH.</p>
    <p>Nous la préparons et vous tiendrons informé de son expédition.</p>
    <p>— L'équipe Botanika</p>
  </body>
</html>`))

func SendEmail(emailTo string, emailSubject string, body string) error {
	message := fmt.Sprintf(
		"From: %s\r\nSubject: %s\r\nMIME-version: 1.0;\r\nContent-Type: text/html; charset=\"UTF-8\";\r\n\r\n%s",
		os.Getenv("FROM_EMAIL"),
		emailSubject,
		body,
	)

	auth := smtp.PlainAuth(
		"",
		os.Getenv("FROM_EMAIL"),
		os.Getenv("FROM_EMAIL_PASSWORD"),
		os.Getenv("FROM_EMAIL_SMTP"),
	)

	if err := smtp.SendMail(os.Getenv("SMTP_ADDRESS"), auth, os.Getenv("FROM_EMAIL"), []string{emailTo}, []byte(message)); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func SendOrderConfirmationEmail(user models.User, order models.Order) error {
	var body bytes.Buffer
	err := orderConfirmationTemplate.Execute(&body, struct {
		Nom       string
		Reference string
		Total     float64
	}{Nom: user.Nom, Reference: order.Reference, Total: order.TotalAmount})
	if err != nil {
		return fmt.Errorf("template execution error: %w", err)
	}
	return SendEmail(user.Email, "Confirmation de votre commande", body.String())
}
