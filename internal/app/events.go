package app

import (
	"time"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"

	"github.com/dshills/neocrystal/internal/player"
)

// HandleEvent processes one terminal event and queues the fields it
// changes. It returns ErrQuit when the player should exit.
func (p *Player) HandleEvent(ev tcell.Event) error {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		p.display.Sync()
		p.Redraw()
	case *tcell.EventKey:
		return p.handleKey(ev)
	case *tcell.EventMouse:
		p.handleMouse(ev)
	}
	return nil
}

func (p *Player) handleKey(ev *tcell.EventKey) error {
	if ev.Key() == tcell.KeyCtrlC {
		return ErrQuit
	}
	if p.prompt != player.PromptNone {
		p.handlePromptKey(ev)
		return nil
	}

	switch ev.Key() {
	case tcell.KeyUp:
		p.moveSelection(true)
	case tcell.KeyDown:
		p.moveSelection(false)
	case tcell.KeyLeft:
		p.seek(-p.cfg.Seek())
	case tcell.KeyRight:
		p.seek(p.cfg.Seek())
	case tcell.KeyPgUp:
		p.changePage(true)
	case tcell.KeyPgDn:
		p.changePage(false)
	case tcell.KeyEnter:
		p.play()
	case tcell.KeyRune:
		return p.handleRune(ev.Rune())
	}
	return nil
}

func (p *Player) handleRune(r rune) error {
	switch r {
	case KeyQuit:
		return ErrQuit
	case KeyUp:
		p.moveSelection(true)
	case KeyDown:
		p.moveSelection(false)
	case KeySeekBack:
		p.seek(-p.cfg.Seek())
	case KeySeekFwd:
		p.seek(p.cfg.Seek())
	case KeyPlay:
		p.play()
	case KeyStop:
		p.lib.Pause()
		p.screen.DrawIndicators(p.View())
	case KeyResume:
		if p.lib.Resume() {
			p.screen.DrawIndicators(p.View())
		}
	case KeyLoop:
		p.toggleLoop()
	case KeyShuffle:
		p.toggleShuffle()
	case KeyBlacklist:
		p.lib.ToggleBlacklist(p.pager.Absolute())
		p.screen.DrawIndicators(p.View())
	case KeySetNext:
		p.lib.SetNext(p.pager.Absolute())
		p.screen.DrawIndicators(p.View())
	case KeyVolume:
		p.volumeMode = !p.volumeMode
	case KeyHighlight:
		p.highlight = !p.highlight
		p.screen.DrawSongs(p.View())
	case KeySearch:
		p.openPrompt(player.PromptSearch)
	case KeyArtist:
		p.openPrompt(player.PromptArtist)
	case KeyPlaylist:
		p.openPrompt(player.PromptPlaylist)
	case KeyRedraw:
		p.display.Sync()
		p.Redraw()
	case KeyMouse:
		p.mouse = !p.mouse
		p.display.EnableMouse(p.mouse)
	}
	return nil
}

func (p *Player) openPrompt(kind player.Prompt) {
	p.prompt = kind
	p.query = ""
	p.notice = ""
	p.screen.DrawHeader(p.View())
}

func (p *Player) handlePromptKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		p.commitPrompt()
	case tcell.KeyEscape:
		p.prompt = player.PromptNone
		p.query = ""
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if p.query != "" {
			_, n := utf8.DecodeLastRuneInString(p.query)
			p.query = p.query[:len(p.query)-n]
		}
	case tcell.KeyRune:
		p.query += string(ev.Rune())
	default:
		return
	}
	p.screen.DrawHeader(p.View())
}

func (p *Player) commitPrompt() {
	kind, query := p.prompt, p.query
	p.prompt = player.PromptNone
	p.query = ""

	switch kind {
	case player.PromptSearch:
		p.lib.Search(query)
		p.pager.Reset()
		v := p.View()
		p.screen.DrawSongs(v)
		p.screen.DrawIndicators(v)
		p.screen.DrawPage(v)
		p.logger.Debug("search", zap.String("query", query), zap.Int("matches", p.lib.Len()))
	case player.PromptArtist:
		if p.lib.SetArtist(query) {
			p.screen.DrawArtist(p.View())
		}
	case player.PromptPlaylist:
		if p.lib.SetPlaylist(query) {
			p.screen.DrawPlaylist(p.View())
		}
	}
}

func (p *Player) moveSelection(up bool) {
	if p.volumeMode {
		if up {
			p.volume.Up()
		} else {
			p.volume.Down()
		}
		p.screen.DrawVolume(p.View())
		return
	}

	var paged bool
	if up {
		paged = p.pager.Up()
	} else {
		paged = p.pager.Down(p.lib.Len())
	}
	v := p.View()
	if paged {
		p.screen.DrawPage(v)
		p.screen.DrawIndicators(v)
	}
	p.screen.DrawSongs(v)
}

func (p *Player) changePage(prev bool) {
	var paged bool
	if prev {
		paged = p.pager.PrevPage()
	} else {
		paged = p.pager.NextPage(p.lib.Len())
	}
	if !paged {
		return
	}
	v := p.View()
	p.screen.DrawPage(v)
	p.screen.DrawSongs(v)
	p.screen.DrawIndicators(v)
}

func (p *Player) play() {
	pos := p.pager.Absolute()
	if err := p.lib.Play(pos); err != nil {
		p.notify(NewOperationError("play", "", err).Error())
		return
	}
	p.startSong()
}

// startSong rewinds the clock for the current song and queues every field
// that describes it.
func (p *Player) startSong() {
	s, _ := p.lib.Current()
	p.elapsed = 0
	p.seconds = 0
	p.resetMarquee(s.Name)

	v := p.View()
	p.cells = player.ProgressCells(v.Total, v.Total, p.progressWidth())
	p.screen.DrawTitle(v)
	p.screen.DrawArtist(v)
	p.screen.DrawPlaylist(v)
	p.screen.DrawTimes(v)
	p.screen.DrawProgress(v)
	p.screen.DrawIndicators(v)
	p.logger.Debug("playing", zap.String("song", s.Path))
}

func (p *Player) seek(d time.Duration) {
	s, ok := p.lib.Current()
	if !ok {
		return
	}
	p.elapsed = max(0, min(p.elapsed+d, s.Duration))
	p.drawClock(true)
}

func (p *Player) toggleLoop() {
	p.loop = !p.loop
	p.screen.DrawLoop(p.View())
}

func (p *Player) toggleShuffle() {
	p.shuffle = !p.shuffle
	if p.shuffle {
		p.lib.Shuffle(p.rng)
	} else {
		p.lib.Sort()
	}
	v := p.View()
	p.screen.DrawShuffle(v)
	p.screen.DrawSongs(v)
	p.screen.DrawIndicators(v)
}

func (p *Player) handleMouse(ev *tcell.EventMouse) {
	if !p.mouse || ev.Buttons()&tcell.Button1 == 0 {
		return
	}
	x, y := ev.Position()
	f, lx, ly, ok := p.screen.Hit(x, y)
	if !ok {
		return
	}

	switch f {
	case player.SongList, player.Indicators:
		if p.pager.Select(ly, p.lib.Len()) {
			p.screen.DrawSongs(p.View())
			p.play()
		}
	case player.Page:
		p.changePage(lx < 3)
	case player.Shuffle:
		p.toggleShuffle()
	case player.Loop:
		p.toggleLoop()
	}
}

// Tick advances the playback clock to now and queues whatever changed:
// the elapsed time each second, the progress rule each cell, the title
// each marquee step, and the header when a notice expires.
func (p *Player) Tick(now time.Time) {
	dt := now.Sub(p.lastTick)
	p.lastTick = now

	if p.lib.Playing() && dt > 0 {
		p.elapsed += dt
		if s, _ := p.lib.Current(); p.elapsed >= s.Duration {
			p.songEnded()
		} else {
			p.drawClock(false)
		}
	}

	if title := p.marquee.Visible(now); title != p.title {
		p.title = title
		p.screen.DrawTitle(p.View())
	}

	if p.notice != "" && !now.Before(p.noticeUntil) {
		p.notice = ""
		p.screen.DrawHeader(p.View())
	}
}

func (p *Player) songEnded() {
	if !p.loop {
		if err := p.lib.Advance(); err != nil {
			p.lib.Pause()
			p.notify(err.Error())
			p.screen.DrawIndicators(p.View())
			return
		}
	}
	p.startSong()
}

// drawClock queues the elapsed time and progress rule when they changed,
// or unconditionally when force is set.
func (p *Player) drawClock(force bool) {
	v := p.View()
	if secs := int(p.elapsed / time.Second); force || secs != p.seconds {
		p.seconds = secs
		p.screen.DrawTimeCur(v)
	}
	if cells := player.ProgressCells(v.Total, v.Total-p.elapsed, p.progressWidth()); force || cells != p.cells {
		p.cells = cells
		p.screen.DrawProgress(v)
	}
}

func (p *Player) progressWidth() int {
	w, _ := p.screen.UI().RegionWidth(player.Progress)
	return w
}
