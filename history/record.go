package history

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/vod-cli/vod/source"
)

// Record is a completed transfer.
type Record struct {
	SourceID string    `json:"source_id"`
	ShowID   string    `json:"show_id"`
	Title    string    `json:"title"`
	Path     string    `json:"path"`
	Size     int64     `json:"size"`
	SavedAt  time.Time `json:"saved_at"`
}

func (r *Record) encode() string {
	return r.SourceID + "\x00" + r.ShowID
}

func (r *Record) String() string {
	return fmt.Sprintf("%s (%s, %s)", r.Title, humanize.Bytes(uint64(max(r.Size, 0))), humanize.Time(r.SavedAt))
}

func newRecord(show *source.Show, path string, size int64) *Record {
	r := &Record{
		ShowID:  show.ID,
		Title:   show.Title,
		Path:    path,
		Size:    size,
		SavedAt: time.Now(),
	}
	if show.Source != nil {
		r.SourceID = show.Source.ID()
	}
	return r
}
