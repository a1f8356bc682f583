package source

import (
	"github.com/vod-cli/vod/metadata"
)

// Summary is the listing projection of a show.
type Summary struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	ImageURL string `json:"image_url,omitempty"`
}

func (s *Summary) String() string {
	return s.Title
}

// EntryKind tells how a summary entry should be presented.
type EntryKind string

const (
	EntryPlain EntryKind = "plain"
	EntryLink  EntryKind = "link"
	EntryImage EntryKind = "image"
)

// Entry is one line of the show summary.
type Entry struct {
	Key   string    `json:"key"`
	Value string    `json:"value"`
	Kind  EntryKind `json:"kind"`
}

// CrewMember credits one person, for example ("Réalisation", "director", "Jane Doe").
type CrewMember struct {
	Role       string `json:"role"`
	PersonKind string `json:"person_kind"`
	Name       string `json:"name"`
}

// Show is the full description of a show. It is not modified after the Source returns it.
type Show struct {
	ID       string         `json:"id"`
	Title    string         `json:"title"`
	ImageURL string         `json:"image_url,omitempty"`
	Metadata *metadata.Tree `json:"metadata"`
	Summary  []Entry        `json:"summary"`
	Crew     []CrewMember   `json:"crew"`
	Synopsis []string       `json:"synopsis"`

	Source Source `json:"-"`
}

func (s *Show) String() string {
	return s.Title
}

// Keys lists the top-level metadata keys in catalog order.
func (s *Show) Keys() []string {
	return s.Metadata.Keys()
}

// Stream locates the media of a show.
type Stream struct {
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers,omitempty"`
}
