// Package mail provides SMTP delivery for the dashboard: a gomail based
// sender with connection verification, the predefined template catalog and
// the rendered configuration test email.
package mail
