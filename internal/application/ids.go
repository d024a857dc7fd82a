package application

import (
	"math/rand/v2"
	"sort"
	"strconv"
)

const (
	maxUserID = 99999
	maxJobID  = 999999
)

// GenerateID draws a random id in [max/10, max] until taken reports it free.
// Skipping the lowest decile keeps ids short but sparse. count is the number of
// ids already issued; once the range is full it fails instead of spinning.
func GenerateID(taken func(string) bool, count, max int) (string, error) {
	lo := max / 10
	if count >= max-lo+1 {
		return "", ErrIDSpaceExhausted
	}
	for {
		id := strconv.Itoa(lo + rand.IntN(max-lo+1))
		if !taken(id) {
			return id, nil
		}
	}
}

// atoi converts a stored id; ids are always numeric strings.
func atoi(id string) int {
	n, _ := strconv.Atoi(id)
	return n
}

// sortedIDs returns map keys in ascending numeric order; non-numeric keys sort last.
func sortedIDs[V any](m map[string]V) []string {
	ids := make([]string, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool {
		a, errA := strconv.Atoi(ids[i])
		b, errB := strconv.Atoi(ids[j])
		if errA == nil && errB == nil {
			return a < b
		}
		if errA == nil || errB == nil {
			return errA == nil
		}
		return ids[i] < ids[j]
	})
	return ids
}
