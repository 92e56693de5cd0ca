package repo

import (
	"strings"
)

// Fixed-field record layout requested from "git for-each-ref refs/tags".
// Every tag is printed as tagFieldCount lines; the object hash field
// dereferences annotated tags to the commit they point at.
const (
	tagObjectType  = "%(objecttype)"
	tagObjectHash  = "%(if)%(object)%(then)%(object)%(else)%(objectname)%(end)"
	tagRefName     = "%(refname:short)"
	tagTaggerName  = "%(taggername)"
	tagTaggerEmail = "%(taggeremail)"
	tagSubject     = "%(subject)"

	tagFieldCount = 6

	// tagsPattern restricts the ref listing to tags
	tagsPattern = "refs/tags"
)

// tagFormat is the --format record layout, one field per line
var tagFormat = strings.Join([]string{
	tagObjectType,
	tagObjectHash,
	tagRefName,
	tagTaggerName,
	tagTaggerEmail,
	tagSubject,
}, "%0a")

// ParseTags reconstructs the tag collection from raw "git for-each-ref"
// output produced with tagFormat. A record whose object type is "commit" is
// a lightweight tag; any other type is an annotated tag carrying tagger and
// subject. Every tag registers itself on its target commit in the arena.
func ParseTags(output string, commits *Commits) *Tags {
	tags := NewTags()
	output = strings.TrimSpace(output)
	if output == "" {
		return tags
	}
	lines := strings.Split(output, "\n")
	for start := 0; start+tagFieldCount <= len(lines); start += tagFieldCount {
		record := lines[start : start+tagFieldCount]
		tags.Add(parseTagRecord(record, commits))
	}
	return tags
}

// parseTagRecord builds one Tag from a fixed-size field group
func parseTagRecord(record []string, commits *Commits) *Tag {
	objectType := record[0]
	hash := record[1]
	name := record[2]
	if objectType == "commit" {
		return NewLightweightTag(name, hash, commits)
	}
	tagger := Author{
		Name:  record[3],
		Email: strings.TrimSuffix(strings.TrimPrefix(record[4], "<"), ">"),
	}
	return NewAnnotatedTag(name, hash, tagger, record[5], commits)
}
