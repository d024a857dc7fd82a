package application

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8/esapi"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-jobboard/internal/domain/entity"
	"github.com/oksasatya/go-jobboard/pkg/helpers"
)

func (s *Store) indexUser(ctx context.Context, u entity.UserSummary) error {
	if s.ES == nil || s.ESUsersIndex == "" {
		return nil
	}
	b, _ := json.Marshal(u)
	id := strconv.Itoa(u.ID)
	req := esapi.IndexRequest{Index: s.ESUsersIndex, DocumentID: id, Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, s.ES)
	if err != nil {
		helpers.LogWarn(s.Logger, "es index failed", err, logrus.Fields{"user_id": id})
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		s.Logger.WithField("status", res.Status()).WithField("user_id", id).Warn("es index response error")
	}
	return nil
}

// SearchUsers matches q against email and name. Without Elasticsearch it scans
// the in-memory users instead.
func (s *Store) SearchUsers(ctx context.Context, q string, size int) ([]entity.UserSummary, error) {
	if size <= 0 || size > 50 {
		size = 10
	}
	q = strings.TrimSpace(q)
	if q == "" {
		return []entity.UserSummary{}, nil
	}
	if s.ES == nil || s.ESUsersIndex == "" {
		return s.searchLocal(q, size), nil
	}

	query := map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":  q,
				"fields": []string{"email^2", "name"},
			},
		},
		"size": size,
	}
	b, _ := json.Marshal(query)

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := s.ES.Search(s.ES.Search.WithContext(c), s.ES.Search.WithIndex(s.ESUsersIndex), s.ES.Search.WithBody(strings.NewReader(string(b))))
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = res.Body.Close()
	}()
	if res.IsError() {
		return nil, fmt.Errorf("es search %s: %s", s.ESUsersIndex, res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source entity.UserSummary `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]entity.UserSummary, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}

func (s *Store) searchLocal(q string, size int) []entity.UserSummary {
	needle := strings.ToLower(q)
	out := []entity.UserSummary{}
	_ = s.read(func(st *entity.Snapshot) error {
		for _, id := range sortedIDs(st.Users) {
			u := st.Users[id]
			if strings.Contains(strings.ToLower(u.Email), needle) || strings.Contains(strings.ToLower(u.Name), needle) {
				out = append(out, userSummary(id, u))
				if len(out) == size {
					break
				}
			}
		}
		return nil
	})
	return out
}
