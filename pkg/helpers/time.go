package helpers

import (
	"context"
	"strings"

	mailtpl "github.com/makemate/agency-backend/pkg/mailer/templates"
)

// LocalizeContactData resolves the submitter location from the recorded IP and
// rewrites the submission time in the submitter's timezone.
// Lookup failures leave d untouched.
func LocalizeContactData(ctx context.Context, resolver mailtpl.GeoResolver, d *mailtpl.ContactData) {
	if resolver == nil || strings.TrimSpace(d.IP) == "" || d.Location != "" {
		return
	}
	g, err := resolver.Lookup(ctx, d.IP)
	if err != nil {
		return
	}
	mailtpl.WithGeo(g)(d)
}
