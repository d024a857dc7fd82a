package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oksasatya/go-jobboard/pkg/mailer"
)

func TestRender_Template(t *testing.T) {
	job := &mailer.EmailJob{
		To:       "betty@email.com",
		Template: "Watched",
		Data:     map[string]any{"Name": "Betty", "ActorName": "James"},
	}
	subject, text, _, err := render(job, "jobboard")
	require.NoError(t, err)
	assert.Equal(t, "James is now watching you", subject)
	assert.Contains(t, text, "Betty")
	assert.Equal(t, "jobboard", job.Data["AppName"])
}

func TestRender_Raw(t *testing.T) {
	job := &mailer.EmailJob{To: "x@y.z", Subject: "s", Text: "t", HTML: "h"}
	subject, text, html, err := render(job, "jobboard")
	require.NoError(t, err)
	assert.Equal(t, []string{"s", "t", "h"}, []string{subject, text, html})
}

func TestRender_Unknown(t *testing.T) {
	_, _, _, err := render(&mailer.EmailJob{To: "x@y.z", Template: "otp"}, "jobboard")
	assert.EqualError(t, err, "unknown template otp")
}
