package app

// Key bindings.
const (
	KeyUp        = 'u'
	KeyDown      = 'j'
	KeySeekBack  = 'n'
	KeySeekFwd   = 'm'
	KeyShuffle   = 'f'
	KeyPlay      = 'p'
	KeyBlacklist = 'b'
	KeyStop      = 's'
	KeyResume    = 'r'
	KeyLoop      = 'l'
	KeyVolume    = 'o'
	KeyQuit      = 'q'
	KeySearch    = 'h'
	KeyRedraw    = 'g'
	KeyArtist    = 'c'
	KeySetNext   = 'e'
	KeyHighlight = 'd'
	KeyPlaylist  = 'v'
	KeyMouse     = 't'
)
