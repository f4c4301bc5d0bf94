package pagination

import (
	"encoding/base64"
	"fmt"
	"regexp"
	"strings"
)

var monthPattern = regexp.MustCompile(`^\d{4}-\d{2}$`)

// EncodeMonthToken creates a base64 encoded cursor from a payroll month label.
// Salary log listings page backwards through history month by month.
func EncodeMonthToken(month string) string {
	return base64.StdEncoding.EncodeToString([]byte(month))
}

// DecodeMonthToken parses a cursor back into its "YYYY-MM" month label.
func DecodeMonthToken(token string) (string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return "", fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	month := string(decodedBytes)
	if !monthPattern.MatchString(month) {
		return "", fmt.Errorf("invalid pagination token format (month parse)")
	}
	return month, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
