package utils

import "time"

const dateLayout = "2006-01-02"

// Today returns the local calendar day as YYYY-MM-DD. Only the handler
// layer calls this; the ledger always receives an explicit date.
func Today() string {
	return time.Now().Format(dateLayout)
}

func ValidDate(s string) bool {
	_, err := time.Parse(dateLayout, s)
	return err == nil
}
