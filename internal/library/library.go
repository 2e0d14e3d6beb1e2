// Package library holds the song list the player browses.
//
// Songs are addressed by their position in the current view, which is the
// whole library or the subset matching a search. Playback state (current
// song, queued next song, blacklist) follows songs across searches and
// shuffles.
package library

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Errors returned by library operations.
var (
	// ErrBlacklisted indicates an attempt to play a blacklisted song.
	ErrBlacklisted = errors.New("song is blacklisted")

	// ErrOutOfRange indicates a view position with no song.
	ErrOutOfRange = errors.New("no song at position")

	// ErrNothingPlayable indicates every song is blacklisted.
	ErrNothingPlayable = errors.New("no playable song")
)

// Unknown is shown for missing metadata.
const Unknown = "Unknown"

// Song is one track.
type Song struct {
	Path     string
	Name     string
	Artist   string
	Playlist string
	Duration time.Duration
}

// Scan lists files matching pattern in dir, sorted by path. Each song gets
// length as its duration.
func Scan(dir, pattern string, length time.Duration) ([]Song, error) {
	paths, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", dir, err)
	}
	sort.Strings(paths)

	songs := make([]Song, len(paths))
	for i, p := range paths {
		songs[i] = Song{
			Path:     p,
			Name:     DisplayName(p),
			Artist:   Unknown,
			Duration: length,
		}
	}
	return songs, nil
}

// DisplayName strips the directory and extension from a path.
func DisplayName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Library is the song list plus playback bookkeeping. Song indexes below
// refer to the songs slice; positions refer to the current view.
type Library struct {
	songs []Song
	view  []int
	query string

	current   int
	next      int
	paused    bool
	blacklist map[int]bool
}

// New creates a library over songs.
func New(songs []Song) *Library {
	l := &Library{
		songs:     songs,
		current:   -1,
		next:      -1,
		paused:    true,
		blacklist: make(map[int]bool),
	}
	l.Search("")
	return l
}

// Len returns the number of songs in the view.
func (l *Library) Len() int {
	return len(l.view)
}

// Total returns the number of songs in the library.
func (l *Library) Total() int {
	return len(l.songs)
}

// At returns the song at view position pos.
func (l *Library) At(pos int) (Song, bool) {
	i, ok := l.index(pos)
	if !ok {
		return Song{}, false
	}
	return l.songs[i], true
}

// Query returns the active search.
func (l *Library) Query() string {
	return l.query
}

// Search narrows the view to songs whose name contains q, ignoring case.
// An empty query shows everything.
func (l *Library) Search(q string) {
	l.query = q
	l.view = l.view[:0]
	needle := strings.ToLower(q)
	for i, s := range l.songs {
		if needle == "" || strings.Contains(strings.ToLower(s.Name), needle) {
			l.view = append(l.view, i)
		}
	}
}

// Play makes the song at pos current and unpauses.
func (l *Library) Play(pos int) error {
	i, ok := l.index(pos)
	if !ok {
		return fmt.Errorf("%w %d", ErrOutOfRange, pos)
	}
	if l.blacklist[i] {
		return ErrBlacklisted
	}
	l.start(i)
	return nil
}

// Current returns the current song, if any.
func (l *Library) Current() (Song, bool) {
	if l.current < 0 {
		return Song{}, false
	}
	return l.songs[l.current], true
}

// Playing reports whether a current song is playing.
func (l *Library) Playing() bool {
	return l.current >= 0 && !l.paused
}

// Pause stops playback, keeping the current song.
func (l *Library) Pause() {
	l.paused = true
}

// Resume continues the current song. It reports false when there is none.
func (l *Library) Resume() bool {
	if l.current < 0 {
		return false
	}
	l.paused = false
	return true
}

// Advance moves to the queued song, or else the next playable song after
// the current one, wrapping around.
func (l *Library) Advance() error {
	if l.next >= 0 && !l.blacklist[l.next] {
		i := l.next
		l.next = -1
		l.start(i)
		return nil
	}
	n := len(l.songs)
	for step := 1; step <= n; step++ {
		i := (l.current + step) % n
		if i < 0 {
			i += n
		}
		if !l.blacklist[i] {
			l.start(i)
			return nil
		}
	}
	return ErrNothingPlayable
}

// SetNext queues the song at pos to play after the current one. Queuing
// the already queued song clears it.
func (l *Library) SetNext(pos int) {
	i, ok := l.index(pos)
	if !ok {
		return
	}
	if l.next == i {
		l.next = -1
		return
	}
	l.next = i
}

// ToggleBlacklist adds or removes the song at pos from the blacklist.
func (l *Library) ToggleBlacklist(pos int) {
	i, ok := l.index(pos)
	if !ok {
		return
	}
	if l.blacklist[i] {
		delete(l.blacklist, i)
		return
	}
	l.blacklist[i] = true
}

// IsCurrent reports whether pos holds the current song.
func (l *Library) IsCurrent(pos int) bool {
	i, ok := l.index(pos)
	return ok && i == l.current
}

// IsNext reports whether pos holds the queued song.
func (l *Library) IsNext(pos int) bool {
	i, ok := l.index(pos)
	return ok && i == l.next
}

// IsBlacklisted reports whether pos holds a blacklisted song.
func (l *Library) IsBlacklisted(pos int) bool {
	i, ok := l.index(pos)
	return ok && l.blacklist[i]
}

// SetArtist changes the artist of the current song.
func (l *Library) SetArtist(name string) bool {
	if l.current < 0 {
		return false
	}
	l.songs[l.current].Artist = name
	return true
}

// SetPlaylist changes the playlist of the current song.
func (l *Library) SetPlaylist(name string) bool {
	if l.current < 0 {
		return false
	}
	l.songs[l.current].Playlist = name
	return true
}

// Shuffle reorders the library with r. Playback state follows the songs.
func (l *Library) Shuffle(r *rand.Rand) {
	l.reorder(r.Perm(len(l.songs)))
}

// Sort restores path order.
func (l *Library) Sort() {
	perm := make([]int, len(l.songs))
	for i := range perm {
		perm[i] = i
	}
	sort.SliceStable(perm, func(a, b int) bool {
		return l.songs[perm[a]].Path < l.songs[perm[b]].Path
	})
	l.reorder(perm)
}

// reorder moves song perm[i] to index i.
func (l *Library) reorder(perm []int) {
	songs := make([]Song, len(l.songs))
	moved := make([]int, len(l.songs))
	for to, from := range perm {
		songs[to] = l.songs[from]
		moved[from] = to
	}

	blacklist := make(map[int]bool, len(l.blacklist))
	for i := range l.blacklist {
		blacklist[moved[i]] = true
	}
	if l.current >= 0 {
		l.current = moved[l.current]
	}
	if l.next >= 0 {
		l.next = moved[l.next]
	}
	l.songs = songs
	l.blacklist = blacklist
	l.Search(l.query)
}

func (l *Library) start(i int) {
	l.current = i
	l.paused = false
}

func (l *Library) index(pos int) (int, bool) {
	if pos < 0 || pos >= len(l.view) {
		return 0, false
	}
	return l.view[pos], true
}
