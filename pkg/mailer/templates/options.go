package templates

import (
	"context"
	"strings"
	"time"
)

const timeLayout = "02 January 2006, 15:04 MST"

// Option pattern
type Option func(*ContactData)

func WithIP(ip string) Option        { return func(d *ContactData) { d.IP = strings.TrimSpace(ip) } }
func WithUserAgent(ua string) Option { return func(d *ContactData) { d.UserAgent = ua } }
func WithTime(t time.Time) Option {
	return func(d *ContactData) {
		utc := t.UTC()
		d.SubmittedAt = utc
		d.SubmittedAtText = utc.Format(timeLayout)
	}
}

func setLocation(d *ContactData, loc string) {
	if s := strings.TrimSpace(loc); s != "" {
		d.Location = s
	}
}

func WithLocation(loc string) Option {
	return func(d *ContactData) { setLocation(d, loc) }
}

// WithGeo records the location and, when the timezone is known,
// prints the submission time in the submitter's local time.
func WithGeo(g Geo) Option {
	return func(d *ContactData) {
		setLocation(d, FormatGeo(g))
		localize(d, g.Timezone)
	}
}

func WithGeoFromIP(ctx context.Context, r GeoResolver, ip string) Option {
	return func(d *ContactData) {
		if r == nil || strings.TrimSpace(ip) == "" {
			return
		}
		if g, err := r.Lookup(ctx, ip); err == nil {
			WithGeo(g)(d)
		}
	}
}

func localize(d *ContactData, tz string) {
	if d.SubmittedAt.IsZero() || strings.TrimSpace(tz) == "" {
		return
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return
	}
	d.SubmittedAtText = d.SubmittedAt.In(loc).Format(timeLayout)
}

// NewContactData fills the site-wide fields and applies opts in order.
// Apply WithTime before any geo option so the time can be localized.
func NewContactData(appName, companyName string, contactID int64, name, email, company, subject, message string, opts ...Option) ContactData {
	d := ContactData{
		ContactID:   contactID,
		Name:        name,
		Email:       email,
		Company:     company,
		Subject:     subject,
		Message:     message,
		AppName:     appName,
		CompanyName: companyName,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
