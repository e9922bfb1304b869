package handlers

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Validation limits for form fields.
const (
	maxTopicLen       = 200
	maxEmailLen       = 254
	maxDisplayNameLen = 100
	minPasswordLen    = 8
	maxPasswordLen    = 128
)

// validateTopic checks the generation form topic and returns the first
// error found.
func validateTopic(topic string) string {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "Please enter a topic."
	}
	if utf8.RuneCountInString(topic) > maxTopicLen {
		return "Topic is too long (max 200 characters)."
	}
	return ""
}

// validateSignup checks signup form inputs and returns the first error found.
func validateSignup(email, password, displayName string) string {
	email = strings.TrimSpace(email)
	if email == "" {
		return "Email is required."
	}
	if len(email) > maxEmailLen {
		return "Email is too long."
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "Please enter a valid email address."
	}
	if utf8.RuneCountInString(password) < minPasswordLen {
		return "Password must be at least 8 characters."
	}
	if utf8.RuneCountInString(password) > maxPasswordLen {
		return "Password is too long (max 128 characters)."
	}
	if utf8.RuneCountInString(displayName) > maxDisplayNameLen {
		return "Name is too long (max 100 characters)."
	}
	return ""
}
