package player

// Field identifies a region of the player screen.
type Field uint8

// Screen fields.
const (
	SongList Field = iota
	Indicators
	Page
	Header
	Title
	Artist
	Playlist
	TimeCur
	TimeMax
	Progress
	Loop
	Shuffle
	Volume
	Version

	fieldCount
)

var fieldNames = [fieldCount]string{
	SongList:   "song_list",
	Indicators: "indicators",
	Page:       "page",
	Header:     "header",
	Title:      "title",
	Artist:     "artist",
	Playlist:   "playlist",
	TimeCur:    "time_cur",
	TimeMax:    "time_max",
	Progress:   "progress",
	Loop:       "loop",
	Shuffle:    "shuffle",
	Volume:     "volume",
	Version:    "version",
}

// String returns the field's layout name.
func (f Field) String() string {
	if f < fieldCount {
		return fieldNames[f]
	}
	return "unknown"
}

// ParseField resolves a layout name.
func ParseField(name string) (Field, bool) {
	for i, n := range fieldNames {
		if n == name {
			return Field(i), true
		}
	}
	return 0, false
}

// Fields returns every field.
func Fields() []Field {
	out := make([]Field, fieldCount)
	for i := range out {
		out[i] = Field(i)
	}
	return out
}
