package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"certify/config"

	"github.com/sirupsen/logrus"
)

// SendEmail sends an HTML mail through the configured SMTP account.
// Callers treat delivery as best effort.
func SendEmail(to []string, subject string, htmlBody string) error {
	smtpHost := "smtp.gmail.com"
	smtpPort := "587"

	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password

	if from == "" || password == "" {
		logrus.Warn("Email sender not configured, skipping mail: ", subject)
		return nil
	}

	msg := "MIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n"
	msg += fmt.Sprintf("From: CertifyHub <%s>\r\n", from)
	msg += fmt.Sprintf("To: %s\r\n", strings.Join(to, ","))
	msg += fmt.Sprintf("Subject: %s\r\n\r\n", subject)
	msg += htmlBody

	auth := smtp.PlainAuth("", from, password, smtpHost)

	if err := smtp.SendMail(smtpHost+":"+smtpPort, auth, from, to, []byte(msg)); err != nil {
		logrus.Errorf("Error sending email to %v: %v", to, err)
		return err
	}
	return nil
}

// SendCertificateEmail notifies a student that their payment was approved
// and the certificate issued
func SendCertificateEmail(email, studentName, domain, certificateNumber string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Certificate Issued</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">Your payment has been verified and your internship certificate for <b>%s</b> is ready.</p>
					<div style="background-color: #f8f9fa; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center;">
						<p style="font-size: 14px; color: #666666; margin-bottom: 10px;">Your Certificate Number:</p>
						<h2 style="color: #2196F3; margin: 0;">%s</h2>
					</div>
					<p style="font-size: 14px; color: #666666;">You can download the certificate from your dashboard. Anyone can verify it online using the number above.</p>
				</div>
			</body>
		</html>
	`, studentName, domain, certificateNumber)

	return SendEmail([]string{email}, "Your Internship Certificate Is Ready", body)
}

// SendPaymentRejectedEmail tells a student why verification failed so
// they can resubmit the proof
func SendPaymentRejectedEmail(email, studentName, reason string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Payment Verification Failed</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">We could not verify your payment:</p>
					<p style="font-size: 15px; color: #c0392b; text-align: center;"><b>%s</b></p>
					<p style="font-size: 14px; color: #666666;">Please check the transaction details and submit the payment proof again from the payment page.</p>
				</div>
			</body>
		</html>
	`, studentName, reason)

	return SendEmail([]string{email}, "Payment Verification Failed", body)
}
