package application

import (
	"context"
	"strconv"

	"github.com/oksasatya/go-jobboard/internal/domain/entity"
	"github.com/oksasatya/go-jobboard/pkg/mailer"
	tpl "github.com/oksasatya/go-jobboard/pkg/mailer/templates"
)

// GetUser returns the public projection of userID with its watchers and expanded jobs.
func (s *Store) GetUser(ctx context.Context, userID string) (*entity.UserView, error) {
	var view *entity.UserView
	err := s.read(func(st *entity.Snapshot) error {
		u, err := requireUser(st, userID)
		if err != nil {
			return err
		}
		intID := atoi(userID)
		watchers := make([]int, 0, len(u.WatchedByUserIDs))
		for _, id := range sortedIDs(u.WatchedByUserIDs) {
			watchers = append(watchers, atoi(id))
		}
		jobs := []entity.JobView{}
		for _, pid := range sortedIDs(st.Posts) {
			if p := st.Posts[pid]; p.CreatorID == intID {
				jobs = append(jobs, expandJob(st, p))
			}
		}
		view = &entity.UserView{
			ID:             intID,
			Email:          u.Email,
			Name:           u.Name,
			Image:          u.Image,
			WatcheeUserIDs: watchers,
			Jobs:           jobs,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return view, nil
}

// UserIDByEmail returns the id registered with email, or "" when there is none.
func (s *Store) UserIDByEmail(ctx context.Context, email string) string {
	var id string
	_ = s.read(func(st *entity.Snapshot) error {
		id = findUserIDByEmail(st, email)
		return nil
	})
	return id
}

// ProfileUpdate fields left empty are not applied, so a field cannot be cleared.
type ProfileUpdate struct {
	Email    string
	Password string
	Name     string
	Image    string
}

// UpdateProfile applies the non-empty fields of in to authUserID.
// The email is checked first so a rejected update changes nothing.
func (s *Store) UpdateProfile(ctx context.Context, authUserID string, in ProfileUpdate) error {
	var summary entity.UserSummary
	err := s.mutate(ctx, func(st *entity.Snapshot) error {
		u, err := requireUser(st, authUserID)
		if err != nil {
			return err
		}
		if in.Email != "" {
			if owner := findUserIDByEmail(st, in.Email); owner != "" && owner != authUserID {
				return ErrEmailTaken
			}
		}
		var pwd string
		if in.Password != "" {
			if pwd, err = s.storedPassword(in.Password); err != nil {
				return err
			}
		}
		if in.Name != "" {
			u.Name = in.Name
		}
		if pwd != "" {
			u.Password = pwd
		}
		if in.Image != "" {
			u.Image = in.Image
		}
		if in.Email != "" {
			u.Email = in.Email
		}
		summary = entity.UserSummary{ID: atoi(authUserID), Email: u.Email, Name: u.Name}
		return nil
	})
	if err != nil {
		return err
	}
	_ = s.indexUser(ctx, summary)
	return nil
}

// WatchUser adds or removes watcherID from watcheeID's watcher set. Both directions are idempotent.
func (s *Store) WatchUser(ctx context.Context, watcherID, watcheeID string, turnon *bool) error {
	var jobs []mailer.EmailJob
	err := s.mutate(ctx, func(st *entity.Snapshot) error {
		watchee, err := requireUser(st, watcheeID)
		if err != nil {
			return err
		}
		if turnon == nil {
			return ErrTurnonMissing
		}
		if !*turnon {
			delete(watchee.WatchedByUserIDs, watcherID)
			return nil
		}
		if watchee.WatchedByUserIDs[watcherID] {
			return nil
		}
		watchee.WatchedByUserIDs[watcherID] = true
		if watcher, ok := st.Users[watcherID]; ok && watcherID != watcheeID {
			jobs = append(jobs, notification(tpl.Watched, watchee, watcher, tpl.WithNow()))
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(ctx, jobs)
	return nil
}

func userSummary(id string, u *entity.User) entity.UserSummary {
	n, _ := strconv.Atoi(id)
	return entity.UserSummary{ID: n, Email: u.Email, Name: u.Name}
}
