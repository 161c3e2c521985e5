// Package whatsapp builds outbound WhatsApp deep links for order inquiries.
// There is no API integration: the storefront hands the customer a wa.me
// link and the conversation continues outside the system.
package whatsapp

import (
	"net/url"
	"regexp"
	"strings"
)

// BaseURL is the wa.me click-to-chat endpoint.
const BaseURL = "https://wa.me"

var nonDigits = regexp.MustCompile(`\D`)

// waNumber matches an Indonesian number in international form: 62 followed
// by 8-13 digits.
var waNumber = regexp.MustCompile(`^62\d{8,13}$`)

// NormalizePhone converts a raw phone input to international dialing digits
// with the Indonesian country code and no "+" prefix. "0812..." and "812..."
// both become "62812..."; an already-international "62..." is kept as is.
func NormalizePhone(input string) string {
	digits := nonDigits.ReplaceAllString(input, "")
	switch {
	case strings.HasPrefix(digits, "0"):
		return "62" + digits[1:]
	case strings.HasPrefix(digits, "62"):
		return digits
	case strings.HasPrefix(digits, "8"):
		return "62" + digits
	default:
		return digits
	}
}

// IsValidNumber reports whether the input normalizes to a plausible
// Indonesian WhatsApp number.
func IsValidNumber(input string) bool {
	return waNumber.MatchString(NormalizePhone(input))
}

// Link returns the click-to-chat URL for a phone number carrying a
// pre-filled message. The phone is interpolated as given; normalize first.
func Link(phone, text string) string {
	return BaseURL + "/" + phone + "?text=" + url.QueryEscape(text)
}
