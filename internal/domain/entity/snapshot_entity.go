package entity

import "fmt"

// Snapshot is the full persisted state.
// NextMessageID is carried for format compatibility only; nothing reads it.
type Snapshot struct {
	Users         map[string]*User    `json:"users"`
	Posts         map[string]*JobPost `json:"posts"`
	NextMessageID int                 `json:"nextMessageId"`
}

// NewSnapshot returns an empty first-run state.
func NewSnapshot() *Snapshot {
	return &Snapshot{
		Users:         map[string]*User{},
		Posts:         map[string]*JobPost{},
		NextMessageID: 1,
	}
}

// Normalize fills nil collections left by older or hand-edited snapshots.
// A null user or post entry cannot be repaired and is reported as an error.
func (s *Snapshot) Normalize() error {
	if s.Users == nil {
		s.Users = map[string]*User{}
	}
	if s.Posts == nil {
		s.Posts = map[string]*JobPost{}
	}
	for id, u := range s.Users {
		if u == nil {
			return fmt.Errorf("user %s is null", id)
		}
		if u.WatchedByUserIDs == nil {
			u.WatchedByUserIDs = map[string]bool{}
		}
	}
	for id, p := range s.Posts {
		if p == nil {
			return fmt.Errorf("post %s is null", id)
		}
		if p.ID == "" {
			p.ID = id
		}
		if p.Likes == nil {
			p.Likes = map[string]bool{}
		}
		if p.Comments == nil {
			p.Comments = []Comment{}
		}
	}
	return nil
}
