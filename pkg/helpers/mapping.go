package helpers

import (
	"fmt"
	"strings"

	"github.com/oksasatya/go-jobboard/pkg/mailer"
	mailtpl "github.com/oksasatya/go-jobboard/pkg/mailer/templates"
)

// KnownTemplate reports whether name has an embedded template set.
func KnownTemplate(name string) bool {
	switch strings.ToLower(name) {
	case mailtpl.Watched, mailtpl.Commented:
		return true
	default:
		return false
	}
}

// EnsureRecipientAndEmail fills Email/RecipientEmail from the job recipient when the publisher left them blank.
func EnsureRecipientAndEmail(job *mailer.EmailJob) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["Email"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["Email"] = job.To
	}
	if v, ok := job.Data["RecipientEmail"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["RecipientEmail"] = job.To
	}
}

// WithAppName stamps the application name used in template footers.
func WithAppName(job *mailer.EmailJob, appName string) {
	if job.Data == nil {
		job.Data = map[string]any{}
	}
	if v, ok := job.Data["AppName"]; !ok || fmt.Sprintf("%v", v) == "" {
		job.Data["AppName"] = appName
	}
}
