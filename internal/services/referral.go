package crm

import (
	"crypto/rand"
	"strings"
)

const (
	referralAlphabet  = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	referralFallback  = "CRM"
	referralPrefixLen = 5
	referralSuffixLen = 4
)

// Реферальный код: до 5 символов имени без пробелов + случайный суффикс
func GenerateReferralCode(name string) (string, error) {
	prefix := []rune(strings.ToUpper(strings.ReplaceAll(name, " ", "")))
	if len(prefix) > referralPrefixLen {
		prefix = prefix[:referralPrefixLen]
	}
	if len(prefix) == 0 {
		prefix = []rune(referralFallback)
	}

	buf := make([]byte, referralSuffixLen)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	suffix := make([]byte, referralSuffixLen)
	for i, b := range buf {
		suffix[i] = referralAlphabet[int(b)%len(referralAlphabet)]
	}

	return string(prefix) + "-" + string(suffix), nil
}
