// Package timezone pins every server-side timestamp to the configured APP_TIMEZONE.
//
// Review dates and audit timestamps are stamped with Now and Today, so two instances
// configured with the same zone agree on what "today" is:
//
//	reviewDate := timezone.Today()
//	t, err := timezone.Parse(time.DateOnly, "2025-01-10")
//
// Only IANA names are accepted ("UTC", "Asia/Kolkata", "Europe/London"); anything else
// falls back to UTC with an error log.
package timezone
