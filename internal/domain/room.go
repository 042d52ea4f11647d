package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"
)

const MaxRoomNameLength = 64

const privateRoomNameFormat = "Private chat between %s and %s"

// Room is a named conversation. Rooms are immutable after creation.
type Room struct {
	ID      uuid.UUID
	Name    string
	Members []uuid.UUID
}

// NewRoom validates the name and member list and returns a room with a fresh
// ID. Members are deduplicated keeping the first occurrence order.
func NewRoom(name string, members []uuid.UUID) (Room, error) {
	name = strings.TrimSpace(name)

	var verr ValidationError
	switch {
	case name == "":
		verr.Add("name", "required")
	case utf8.RuneCountInString(name) > MaxRoomNameLength:
		verr.Add("name", "too long")
	}

	unique := DedupeIDs(members)
	if len(unique) == 0 {
		verr.Add("members", "at least one required")
	}
	for i, id := range unique {
		if id == uuid.Nil {
			verr.Add(fmt.Sprintf("members[%d]", i), "invalid uuid")
		}
	}

	if err := verr.Err(); err != nil {
		return Room{}, err
	}

	return Room{
		ID:      uuid.New(),
		Name:    name,
		Members: unique,
	}, nil
}

// PrivateRoomName is the display name of a room created between two users.
// Long usernames are abbreviated so the result always fits MaxRoomNameLength.
func PrivateRoomName(a, b string) string {
	name := fmt.Sprintf(privateRoomNameFormat, a, b)
	if utf8.RuneCountInString(name) <= MaxRoomNameLength {
		return name
	}

	budget := MaxRoomNameLength - utf8.RuneCountInString(fmt.Sprintf(privateRoomNameFormat, "", ""))
	ra, rb := []rune(a), []rune(b)
	// Give each side half the budget; a short name leaves its spare to the other.
	la, lb := budget/2, budget-budget/2
	switch {
	case len(ra) < la:
		lb = budget - len(ra)
	case len(rb) < lb:
		la = budget - len(rb)
	}
	return fmt.Sprintf(privateRoomNameFormat, abbreviate(ra, la), abbreviate(rb, lb))
}

// abbreviate shortens r to at most n runes, marking the cut with an ellipsis.
func abbreviate(r []rune, n int) string {
	if len(r) <= n {
		return string(r)
	}
	if n <= 1 {
		return string(r[:n])
	}
	return string(r[:n-1]) + "…"
}

// DedupeIDs returns ids without duplicates, preserving first occurrence order.
func DedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
