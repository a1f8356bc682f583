// Package source defines the catalog service contract and the shapes it returns.
package source

import "io"

// Source is a catalog service. Implementations are not required to be safe for
// concurrent use; a Source is opened, used and then closed by a single owner.
type Source interface {
	io.Closer

	// Name is the human readable name of the catalog.
	Name() string

	// ID uniquely identifies the catalog among installed ones.
	ID() string

	Categories() ([]string, error)
	Channels() ([]string, error)

	// List returns one page of shows matching q. q is already normalized.
	List(q Query) ([]*Summary, error)

	// Show fetches the full description of a show.
	Show(id string) (*Show, error)

	// Stream resolves where the media of a show can be downloaded from.
	Stream(show *Show) (*Stream, error)
}
