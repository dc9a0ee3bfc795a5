package notifications

import "fmt"

const verificationTemplate = `<p>Hello,</p>
<p>Thank you for signing up. Your verification code is:</p>
<p style="font-size: 24px; font-weight: bold; letter-spacing: 4px;">%s</p>
<p>Enter this code on the verification page to confirm your email address.</p>
<p>The code expires in 24 hours. If you did not create an account, you can ignore this email.</p>`

const welcomeTemplate = `<p>Hi %s,</p>
<p>Your email address has been verified and your account is ready to use.</p>
<p>Welcome aboard!</p>`

const passwordResetTemplate = `<p>Hello,</p>
<p>We received a request to reset the password for your account.</p>
<p>Click the link below to choose a new password:</p>
<p><a href="%s">%s</a></p>
<p>The link expires in 1 hour. If you did not request a password reset, you can safely ignore this email.</p>`

const resetSuccessTemplate = `<p>Hello,</p>
<p>Your password has been changed successfully.</p>
<p>If you did not perform this change, contact support immediately.</p>`

func verificationBody(code string) string {
	return fmt.Sprintf(verificationTemplate, code)
}

func welcomeBody(name string) string {
	return fmt.Sprintf(welcomeTemplate, name)
}

func passwordResetBody(resetURL string) string {
	return fmt.Sprintf(passwordResetTemplate, resetURL, resetURL)
}

func resetSuccessBody() string {
	return resetSuccessTemplate
}
