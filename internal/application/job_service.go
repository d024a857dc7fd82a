package application

import (
	"context"
	"sort"
	"strconv"
	"strings"

	"github.com/oksasatya/go-jobboard/internal/domain/entity"
	"github.com/oksasatya/go-jobboard/pkg/mailer"
	tpl "github.com/oksasatya/go-jobboard/pkg/mailer/templates"
)

// FeedPageSize is the number of posts returned per feed page.
const FeedPageSize = 5

// JobInput carries job content. A nil field was not sent by the client.
type JobInput struct {
	Image       *string
	Title       *string
	Start       *string
	Description *string
}

func (in JobInput) complete() bool {
	return in.Image != nil && in.Title != nil && in.Start != nil && in.Description != nil
}

// expandJob resolves likes and comments against the user table.
func expandJob(st *entity.Snapshot, p *entity.JobPost) entity.JobView {
	likes := make([]entity.LikeView, 0, len(p.Likes))
	for _, uid := range sortedIDs(p.Likes) {
		lv := entity.LikeView{UserID: atoi(uid)}
		if u, ok := st.Users[uid]; ok {
			lv.UserEmail, lv.UserName = u.Email, u.Name
		}
		likes = append(likes, lv)
	}
	comments := make([]entity.CommentView, 0, len(p.Comments))
	for _, c := range p.Comments {
		cv := entity.CommentView{UserID: atoi(c.UserID), Comment: c.Comment}
		if u, ok := st.Users[c.UserID]; ok {
			cv.UserEmail, cv.UserName = u.Email, u.Name
		}
		comments = append(comments, cv)
	}
	return entity.JobView{
		ID:          p.ID,
		CreatorID:   p.CreatorID,
		Image:       p.Image,
		Title:       p.Title,
		Start:       p.Start,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		Likes:       likes,
		Comments:    comments,
	}
}

// PostJob stores a new post owned by authUserID and returns its id.
func (s *Store) PostJob(ctx context.Context, authUserID string, in JobInput) (string, error) {
	if !in.complete() {
		return "", ErrMissingJobFields
	}
	var jobID string
	err := s.mutate(ctx, func(st *entity.Snapshot) error {
		if _, err := requireUser(st, authUserID); err != nil {
			return err
		}
		id, err := GenerateID(func(id string) bool {
			_, ok := st.Posts[id]
			return ok
		}, len(st.Posts), maxJobID)
		if err != nil {
			return err
		}
		st.Posts[id] = &entity.JobPost{
			ID:          id,
			CreatorID:   atoi(authUserID),
			Image:       *in.Image,
			Title:       *in.Title,
			Start:       *in.Start,
			Description: *in.Description,
			CreatedAt:   s.createdAtNow(),
			Likes:       map[string]bool{},
			Comments:    []entity.Comment{},
		}
		jobID = id
		return nil
	})
	if err != nil {
		return "", err
	}
	return jobID, nil
}

// UpdateJobPost applies the non-empty fields of in. Only the creator may update.
func (s *Store) UpdateJobPost(ctx context.Context, authUserID, jobID string, in JobInput) error {
	return s.mutate(ctx, func(st *entity.Snapshot) error {
		p, err := requireJob(st, jobID)
		if err != nil {
			return err
		}
		if err := requireCreator(p, authUserID); err != nil {
			return err
		}
		set := func(dst *string, v *string) {
			if v != nil && *v != "" {
				*dst = *v
			}
		}
		set(&p.Image, in.Image)
		set(&p.Title, in.Title)
		set(&p.Start, in.Start)
		set(&p.Description, in.Description)
		return nil
	})
}

// CommentOnJobPost appends a comment. The commenter must watch the post author.
func (s *Store) CommentOnJobPost(ctx context.Context, authUserID, jobID, comment string) error {
	var jobs []mailer.EmailJob
	err := s.mutate(ctx, func(st *entity.Snapshot) error {
		p, err := requireJob(st, jobID)
		if err != nil {
			return err
		}
		if err := requireWatcher(st, p, authUserID); err != nil {
			return err
		}
		p.Comments = append(p.Comments, entity.Comment{UserID: authUserID, Comment: comment})

		author := st.Users[strconv.Itoa(p.CreatorID)]
		if commenter, ok := st.Users[authUserID]; ok && strconv.Itoa(p.CreatorID) != authUserID {
			jobs = append(jobs, notification(tpl.Commented, author, commenter,
				tpl.WithNow(), tpl.WithJob(p.Title), tpl.WithComment(comment)))
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.publish(ctx, jobs)
	return nil
}

// LikeJobPost adds or removes authUserID from the post's likes. A nil turnon unlikes.
func (s *Store) LikeJobPost(ctx context.Context, authUserID, jobID string, turnon *bool) error {
	return s.mutate(ctx, func(st *entity.Snapshot) error {
		p, err := requireJob(st, jobID)
		if err != nil {
			return err
		}
		if err := requireWatcher(st, p, authUserID); err != nil {
			return err
		}
		if turnon != nil && *turnon {
			p.Likes[authUserID] = true
		} else {
			delete(p.Likes, authUserID)
		}
		return nil
	})
}

// DeleteJobPost removes the post. Only the creator may delete.
func (s *Store) DeleteJobPost(ctx context.Context, authUserID, jobID string) error {
	return s.mutate(ctx, func(st *entity.Snapshot) error {
		p, err := requireJob(st, jobID)
		if err != nil {
			return err
		}
		if err := requireCreator(p, authUserID); err != nil {
			return err
		}
		delete(st.Posts, jobID)
		return nil
	})
}

// ParseStart converts the feed offset query value.
func ParseStart(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, ErrInvalidStart
	}
	return n, nil
}

// GetJobs returns one page of the feed: posts by users that authUserID watches,
// newest first. Posts with equal createdAt keep ascending id order.
func (s *Store) GetJobs(ctx context.Context, authUserID string, start int) ([]entity.JobView, error) {
	if start < 0 {
		return nil, ErrNegativeStart
	}
	var page []entity.JobView
	err := s.read(func(st *entity.Snapshot) error {
		feed := []entity.JobView{}
		for _, pid := range sortedIDs(st.Posts) {
			p := st.Posts[pid]
			author, ok := st.Users[strconv.Itoa(p.CreatorID)]
			if !ok || !author.WatchedByUserIDs[authUserID] {
				continue
			}
			feed = append(feed, expandJob(st, p))
		}
		sort.SliceStable(feed, func(i, j int) bool {
			return feed[i].CreatedAt > feed[j].CreatedAt
		})
		if start >= len(feed) {
			page = []entity.JobView{}
			return nil
		}
		end := min(start+FeedPageSize, len(feed))
		page = feed[start:end]
		return nil
	})
	if err != nil {
		return nil, err
	}
	return page, nil
}
