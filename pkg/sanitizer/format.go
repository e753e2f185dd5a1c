package sanitizer

import "strings"

// NormalizeEmail lowercases and trims an address and collapses repeated dots in
// the local part. Values that are not shaped like an address are only trimmed
// and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, found := strings.Cut(email, "@")
	if !found || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}

// NormalizePhone keeps the digits of a phone number and a leading plus sign.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	digits := KeepDigits(phone)
	if strings.HasPrefix(phone, "+") && digits != "" {
		return "+" + digits
	}
	return digits
}

// NormalizePostalCode uppercases a postal code and drops inner whitespace.
func NormalizePostalCode(code string) string {
	return strings.ToUpper(strings.Join(strings.Fields(code), ""))
}
