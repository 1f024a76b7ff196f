package utils

import (
	"fmt"
	"log"

	"microlearn/config"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

// SendEmail delivers a single HTML email through SendGrid.
func SendEmail(toName, toEmail, subject, htmlBody string) error {
	from := sgmail.NewEmail("Microlearn", config.AppConfig.EmailSender)
	to := sgmail.NewEmail(toName, toEmail)
	message := sgmail.NewSingleEmail(from, subject, to, "", htmlBody)

	client := sendgrid.NewSendClient(config.AppConfig.SendgridApiKey)
	resp, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email to %s: %v", toEmail, err)
		return err
	}
	if resp.StatusCode >= 400 {
		log.Printf("Error sending email to %s - status: %d - body: %s", toEmail, resp.StatusCode, resp.Body)
		return fmt.Errorf("email delivery failed with status %d", resp.StatusCode)
	}
	return nil
}

// SendInviteEmail notifies an invited user of their temporary credentials.
func SendInviteEmail(email, role, tempPassword string) error {
	body := fmt.Sprintf(`
	<div style="font-family: Helvetica, Arial, sans-serif; max-width: 600px; margin: 0 auto;">
		<h2>You've been invited to Microlearn</h2>
		<p>An administrator has created an account for you with the <b>%s</b> role.</p>
		<p>Sign in with this temporary password and change it right away:</p>
		<p style="font-size: 18px; font-weight: bold; letter-spacing: 1px;">%s</p>
	</div>`, role, tempPassword)

	return SendEmail("", email, "Your Microlearn account", body)
}
