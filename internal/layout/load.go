package layout

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	lua "github.com/yuin/gopher-lua"
	"gopkg.in/yaml.v3"
)

// Errors returned by the loaders.
var (
	// ErrUnsupportedFormat indicates a file extension with no loader.
	ErrUnsupportedFormat = errors.New("unsupported layout format")

	// ErrBadScript indicates a Lua layout that did not return a region list.
	ErrBadScript = errors.New("layout script must return a list of regions")
)

// ScriptTimeout bounds how long a Lua layout may run.
const ScriptTimeout = time.Second

// ParseError is a layout file that could not be decoded or whose script
// failed. Line is zero when the decoder gave no position.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("layout %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("layout %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads a layout file, choosing the decoder by extension. Lua scripts
// see the grid size as the globals width and height.
func Load(path string, width, height int) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("reading layout %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return ParseTOML(path, data)
	case ".yaml", ".yml":
		return ParseYAML(path, data)
	case ".lua":
		return ParseLua(path, string(data), width, height)
	default:
		return Layout{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
	}
}

// ParseTOML decodes a layout written as [[region]] tables.
func ParseTOML(source string, data []byte) (Layout, error) {
	var l Layout
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&l); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			pe.Line, _ = derr.Position()
		}
		return Layout{}, pe
	}
	return l, nil
}

// ParseYAML decodes a layout written as a regions: sequence.
func ParseYAML(source string, data []byte) (Layout, error) {
	var l Layout
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&l); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}
		var terr *yaml.TypeError
		if errors.As(err, &terr) {
			pe.Message = strings.Join(terr.Errors, "; ")
		}
		return Layout{}, pe
	}
	return l, nil
}

// ParseLua runs a layout script in a sandboxed state with only the base,
// table, string, and math libraries.
func ParseLua(source, code string, width, height int) (Layout, error) {
	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	lua.OpenBase(L)
	lua.OpenTable(L)
	lua.OpenString(L)
	lua.OpenMath(L)
	for _, name := range []string{"dofile", "loadfile", "load", "loadstring"} {
		L.SetGlobal(name, lua.LNil)
	}

	ctx, cancel := context.WithTimeout(context.Background(), ScriptTimeout)
	defer cancel()
	L.SetContext(ctx)

	L.SetGlobal("width", lua.LNumber(width))
	L.SetGlobal("height", lua.LNumber(height))

	top := L.GetTop()
	if err := L.DoString(code); err != nil {
		return Layout{}, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	if L.GetTop() == top {
		return Layout{}, &ParseError{Path: source, Message: ErrBadScript.Error(), Err: ErrBadScript}
	}
	ret := L.Get(top + 1)

	tbl, ok := ret.(*lua.LTable)
	if !ok {
		return Layout{}, &ParseError{
			Path:    source,
			Message: fmt.Sprintf("%s, got %s", ErrBadScript, ret.Type()),
			Err:     ErrBadScript,
		}
	}

	var l Layout
	for i := 1; i <= tbl.Len(); i++ {
		entry, ok := tbl.RawGetInt(i).(*lua.LTable)
		if !ok {
			return Layout{}, &ParseError{
				Path:    source,
				Message: fmt.Sprintf("region %d is not a table", i),
				Err:     ErrBadScript,
			}
		}
		r, err := regionFromTable(entry)
		if err != nil {
			return Layout{}, &ParseError{
				Path:    source,
				Message: fmt.Sprintf("region %d: %v", i, err),
				Err:     err,
			}
		}
		l.Regions = append(l.Regions, r)
	}
	return l, nil
}

func regionFromTable(t *lua.LTable) (RegionSpec, error) {
	var r RegionSpec
	var err error

	name, ok := t.RawGetString("name").(lua.LString)
	if !ok {
		return r, errors.New("name must be a string")
	}
	r.Name = string(name)

	if r.X, err = intField(t, "x"); err != nil {
		return r, err
	}
	if r.Y, err = intField(t, "y"); err != nil {
		return r, err
	}
	if r.W, err = intField(t, "w"); err != nil {
		return r, err
	}
	if r.H, err = intField(t, "h"); err != nil {
		return r, err
	}

	switch fill := t.RawGetString("fill").(type) {
	case lua.LString:
		r.Fill = string(fill)
	case *lua.LNilType:
	default:
		return r, fmt.Errorf("fill must be a string, got %s", fill.Type())
	}
	return r, nil
}

func intField(t *lua.LTable, key string) (int, error) {
	n, ok := t.RawGetString(key).(lua.LNumber)
	if !ok {
		return 0, fmt.Errorf("%s must be a number", key)
	}
	f := float64(n)
	if f != math.Trunc(f) {
		return 0, fmt.Errorf("%s must be a whole number, got %v", key, f)
	}
	return int(f), nil
}
