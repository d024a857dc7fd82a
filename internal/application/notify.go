package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-jobboard/internal/domain/entity"
	"github.com/oksasatya/go-jobboard/pkg/helpers"
	"github.com/oksasatya/go-jobboard/pkg/mailer"
	tpl "github.com/oksasatya/go-jobboard/pkg/mailer/templates"
)

// Publisher enqueues JSON messages. helpers.RabbitPublisher satisfies it.
type Publisher interface {
	PublishJSON(ctx context.Context, body any) error
}

func notification(kind string, recipient, actor *entity.User, opts ...tpl.Option) mailer.EmailJob {
	data := tpl.NewEmailData(kind, recipient.Name, recipient.Email, actor.Name, actor.Email, opts...)
	return mailer.EmailJob{To: recipient.Email, Template: kind, Data: tpl.ToMap(data)}
}

// publish runs after the lock is released. Delivery is best effort: a broker
// outage never fails the request that triggered it.
func (s *Store) publish(ctx context.Context, jobs []mailer.EmailJob) {
	if s.Publisher == nil {
		return
	}
	for _, job := range jobs {
		if err := s.Publisher.PublishJSON(ctx, job); err != nil {
			helpers.LogWarn(s.Logger, "failed to publish email job", err, logrus.Fields{"template": job.Template})
		}
	}
}
