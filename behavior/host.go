package behavior

import (
	"time"

	fs "github.com/ungerik/go-fs"
	"golang.org/x/net/html"
)

// Host provides the capabilities of the environment
// a page is displayed in.
// Implementations are called from the single event loop
// of a Page and don't have to be safe for concurrent use.
type Host interface {
	// Path returns the path of the current page location.
	Path() string
	// Navigate loads url as new page location.
	Navigate(url string)
	// Reload loads the current page location again.
	Reload()
	// Hidden reports if the page is currently not visible to the user.
	Hidden() bool
	// SubmitForm sends a form after all submit handlers accepted it.
	SubmitForm(form *html.Node)

	// Confirm asks the user to confirm message.
	Confirm(message string) bool
	// Print opens the print dialog of the page.
	Print()

	// CreateObjectURL returns a transient URL referencing blob
	// that must be released with RevokeObjectURL.
	CreateObjectURL(blob *Blob) (string, error)
	// RevokeObjectURL releases a URL returned by CreateObjectURL.
	RevokeObjectURL(url string)
	// Download saves the resource at url as filename.
	Download(url, filename string) error

	// SetTimeout calls fn once after d.
	SetTimeout(d time.Duration, fn func())
	// SetInterval calls fn every d.
	SetInterval(d time.Duration, fn func())

	// Reflow forces a layout of n so that restarted
	// CSS animations play again.
	Reflow(n *html.Node)
	// BoundingRect returns the viewport rectangle of n.
	BoundingRect(n *html.Node) Rect
}

// Blob is in-memory file data with a MIME type.
type Blob struct {
	fs.MemFile
	ContentType string
}

// NewBlob returns a Blob for data.
func NewBlob(filename, contentType string, data []byte) *Blob {
	return &Blob{MemFile: fs.NewMemFile(filename, data), ContentType: contentType}
}

// Rect is a rectangle in viewport coordinates.
type Rect struct {
	Left, Top     float64
	Width, Height float64
}
