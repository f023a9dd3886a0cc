package mailing

import (
	"fmt"
)

// ResetPasswordEmail renders the HTML body for the reset-password mail.
func ResetPasswordEmail(fullName, resetLink string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 480px; margin: 0 auto;">
  <h2>Password Reset</h2>
  <p>Hi %s,</p>
  <p>We received a request to reset your password. Click the button below to choose a new one. The link expires in 15 minutes.</p>
  <p style="text-align: center; margin: 24px 0;">
    <a href="%s" style="background-color: #e8590c; color: #ffffff; padding: 12px 24px; text-decoration: none; border-radius: 6px;">Reset Password</a>
  </p>
  <p>If you did not request this, you can safely ignore this email.</p>
</div>`, fullName, resetLink)
}
