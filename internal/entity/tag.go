package entity

import "strings"

// Tag marks what an entity is.
type Tag uint8

const (
	TagPlayer Tag = 1 << iota
	TagEnemy
)

// String returns the tag name.
func (t Tag) String() string {
	switch t {
	case TagPlayer:
		return "player"
	case TagEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// allTags lists every defined tag, in bit order.
var allTags = []Tag{TagPlayer, TagEnemy}

// TagSet is a bitset of tags.
type TagSet uint8

// Has reports whether t is in the set.
func (s TagSet) Has(t Tag) bool {
	return s&TagSet(t) != 0
}

// With returns the set with t added.
func (s TagSet) With(t Tag) TagSet {
	return s | TagSet(t)
}

// String lists the tags in the set, e.g. "player|enemy".
func (s TagSet) String() string {
	var names []string
	for _, t := range allTags {
		if s.Has(t) {
			names = append(names, t.String())
		}
	}
	return strings.Join(names, "|")
}
