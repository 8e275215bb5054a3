// Package host implements the behavior.Host interface
// for running pages outside of a browser.
package host

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"golang.org/x/net/html"

	"github.com/domonda/go-pagetable/behavior"
)

// Download is a file saved through Host.Download.
type Download struct {
	URL      string
	Filename string
	Blob     *behavior.Blob
}

type timer struct {
	id       int
	due      time.Duration
	interval time.Duration
	fn       func()
}

// Memory is a behavior.Host that records every interaction
// and runs timers on a virtual clock advanced with Advance.
//
// Confirm prompts are answered from ConfirmAnswers in order,
// when no answers are left DefaultConfirm is returned.
type Memory struct {
	Location string
	IsHidden bool

	ConfirmAnswers []bool
	DefaultConfirm bool
	Rects          map[*html.Node]behavior.Rect

	Navigations []string
	Reloads     int
	Prints      int
	Prompts     []string
	Submitted   []*html.Node
	Downloads   []Download
	Revoked     []string
	Reflows     []*html.Node

	// DownloadFunc is called by Download if not nil.
	DownloadFunc func(download Download) error

	objects map[string]*behavior.Blob
	timers  []*timer
	nextID  int
	now     time.Duration
}

var _ behavior.Host = new(Memory)

// NewMemory returns a Memory host at location.
// Confirm prompts are accepted by default.
func NewMemory(location string) *Memory {
	return &Memory{
		Location:       location,
		DefaultConfirm: true,
		Rects:          make(map[*html.Node]behavior.Rect),
		objects:        make(map[string]*behavior.Blob),
	}
}

func (m *Memory) Path() string { return m.Location }

func (m *Memory) Navigate(url string) {
	m.Navigations = append(m.Navigations, url)
}

func (m *Memory) Reload() { m.Reloads++ }

func (m *Memory) Hidden() bool { return m.IsHidden }

func (m *Memory) SubmitForm(form *html.Node) {
	m.Submitted = append(m.Submitted, form)
}

func (m *Memory) Confirm(message string) bool {
	m.Prompts = append(m.Prompts, message)
	if len(m.ConfirmAnswers) == 0 {
		return m.DefaultConfirm
	}
	answer := m.ConfirmAnswers[0]
	m.ConfirmAnswers = m.ConfirmAnswers[1:]
	return answer
}

func (m *Memory) Print() { m.Prints++ }

func (m *Memory) CreateObjectURL(blob *behavior.Blob) (string, error) {
	if blob == nil {
		return "", errors.New("<nil> blob")
	}
	url := "blob:" + uuid.NewString()
	m.objects[url] = blob
	return url, nil
}

func (m *Memory) RevokeObjectURL(url string) {
	delete(m.objects, url)
	m.Revoked = append(m.Revoked, url)
}

// Object returns the blob of a not yet revoked object URL or nil.
func (m *Memory) Object(url string) *behavior.Blob {
	return m.objects[url]
}

// NumObjects returns the number of object URLs not yet revoked.
func (m *Memory) NumObjects() int {
	return len(m.objects)
}

func (m *Memory) Download(url, filename string) error {
	blob, ok := m.objects[url]
	if !ok {
		return fmt.Errorf("unknown object URL %s", url)
	}
	download := Download{URL: url, Filename: filename, Blob: blob}
	if m.DownloadFunc != nil {
		if err := m.DownloadFunc(download); err != nil {
			return err
		}
	}
	m.Downloads = append(m.Downloads, download)
	return nil
}

func (m *Memory) SetTimeout(d time.Duration, fn func()) {
	m.addTimer(d, 0, fn)
}

func (m *Memory) SetInterval(d time.Duration, fn func()) {
	m.addTimer(d, d, fn)
}

func (m *Memory) addTimer(d, interval time.Duration, fn func()) {
	m.nextID++
	m.timers = append(m.timers, &timer{id: m.nextID, due: m.now + max(d, 0), interval: interval, fn: fn})
}

// NumTimers returns the number of pending timers.
func (m *Memory) NumTimers() int {
	return len(m.timers)
}

// Advance moves the virtual clock forward by d and runs
// every timer falling due in order of due time.
// Intervals run as often as they fall due.
func (m *Memory) Advance(d time.Duration) {
	end := m.now + d
	for {
		slices.SortFunc(m.timers, func(a, b *timer) int {
			return cmp.Or(cmp.Compare(a.due, b.due), cmp.Compare(a.id, b.id))
		})
		if len(m.timers) == 0 || m.timers[0].due > end {
			break
		}
		t := m.timers[0]
		m.now = t.due
		if t.interval > 0 {
			t.due += t.interval
		} else {
			m.timers = m.timers[1:]
		}
		t.fn()
	}
	m.now = end
}

func (m *Memory) Reflow(n *html.Node) {
	m.Reflows = append(m.Reflows, n)
}

// BoundingRect returns the rectangle set in Rects
// or a zero Rect at the viewport origin.
func (m *Memory) BoundingRect(n *html.Node) behavior.Rect {
	return m.Rects[n]
}
