package application

import "expvar"

// Process-wide counters published on /api/debug/vars.
var (
	contactSubmissions      = expvar.NewInt("contact_submissions")
	contactFailures         = expvar.NewInt("contact_failures")
	newsletterSubscriptions = expvar.NewInt("newsletter_subscriptions")
	newsletterDuplicates    = expvar.NewInt("newsletter_duplicates")
	notificationFailures    = expvar.NewInt("notification_failures")
)
