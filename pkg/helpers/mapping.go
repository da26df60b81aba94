package helpers

import (
	"fmt"
	"strings"

	"github.com/makemate/agency-backend/pkg/mailer"
	mailtpl "github.com/makemate/agency-backend/pkg/mailer/templates"
)

// template names accepted from older producers
var templateAliases = map[string]string{
	"contact":      mailtpl.ContactNotification,
	"contact_form": mailtpl.ContactNotification,
}

// NormalizeEmailJob cleans a job decoded from the queue before it is rendered or sent.
func NormalizeEmailJob(job *mailer.EmailJob) {
	job.To = strings.TrimSpace(job.To)
	job.From = strings.TrimSpace(job.From)
	job.ReplyTo = strings.TrimSpace(job.ReplyTo)

	job.Template = strings.ToLower(strings.TrimSpace(job.Template))
	if name, ok := templateAliases[job.Template]; ok {
		job.Template = name
	}
	if job.Template == "" {
		return
	}
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	// the submitter is the reply address when the producer only set Data.Email
	if job.ReplyTo == "" {
		if v, ok := job.Data["Email"]; ok && fmt.Sprintf("%v", v) != "" {
			job.ReplyTo = fmt.Sprintf("%v", v)
		}
	}
}

// ContactDataFromJob decodes the template data of a contact notification job.
func ContactDataFromJob(job mailer.EmailJob) (mailtpl.ContactData, error) {
	return mailtpl.FromMap(job.Data)
}
