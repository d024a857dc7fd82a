package templates

import (
	"strings"
	"time"
)

// Option pattern
type Option func(*EmailData)

func WithTime(t time.Time) Option {
	return func(d *EmailData) {
		utc := t.UTC()
		d.TimeAt = utc
		d.Time = utc.Format("02 January 2006, 15:04")
	}
}

func WithNow() Option { return WithTime(time.Now()) }

func WithJob(title string) Option { return func(d *EmailData) { d.JobTitle = strings.TrimSpace(title) } }

func WithComment(comment string) Option { return func(d *EmailData) { d.Comment = comment } }

func WithAppName(name string) Option { return func(d *EmailData) { d.AppName = name } }

// NewEmailData builds the payload for a notification of type kind sent to the recipient.
func NewEmailData(kind, name, email, actorName, actorEmail string, opts ...Option) EmailData {
	d := EmailData{
		Name:           name,
		Email:          email,
		RecipientEmail: email,
		Type:           kind,
		ActorName:      actorName,
		ActorEmail:     actorEmail,
	}
	for _, o := range opts {
		o(&d)
	}
	return d
}
