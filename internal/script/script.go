// Package script reads line-oriented event scripts.
//
// Each non-blank line that does not start with '#' holds one event:
//
//	add.name Buy milk
//	add.description "2% gal"
//	add.submit
//	select 1
//	edit.name ""
//	save
//
// Text arguments are the rest of the line, or a Go-quoted string when the
// value needs leading/trailing spaces or is empty.
package script

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/idilsaglam/todos/internal/app"
)

// Line is a parsed event and where it came from.
type Line struct {
	Num   int
	Event app.Event
}

// ParseError points at the offending line.
type ParseError struct {
	Name string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %v", e.Name, e.Line, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// maxLineBytes bounds a single event line.
const maxLineBytes = 1 << 20

var kinds = func() map[string]app.EventKind {
	m := make(map[string]app.EventKind, len(app.EventKinds))
	for _, k := range app.EventKinds {
		m[string(k)] = k
	}
	return m
}()

// Parse reads every event from r. name is used in error messages.
func Parse(name string, r io.Reader) ([]Line, error) {
	var out []Line
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	num := 0
	for sc.Scan() {
		num++
		raw := strings.TrimSpace(sc.Text())
		if raw == "" || strings.HasPrefix(raw, "#") {
			continue
		}
		ev, err := ParseLine(raw)
		if err != nil {
			return nil, &ParseError{Name: name, Line: num, Err: err}
		}
		out = append(out, Line{Num: num, Event: ev})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return out, nil
}

// ParseLine parses a single trimmed event line.
func ParseLine(s string) (app.Event, error) {
	word, rest := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		word, rest = s[:i], s[i:]
	}
	kind, ok := kinds[word]
	if !ok {
		return app.Event{}, fmt.Errorf("unknown event %q", word)
	}
	rest = strings.TrimSpace(rest)
	ev := app.Event{Kind: kind}

	switch {
	case kind.TakesID():
		if rest == "" {
			return app.Event{}, fmt.Errorf("%s: missing id", kind)
		}
		id, err := strconv.Atoi(rest)
		if err != nil {
			return app.Event{}, fmt.Errorf("%s: not a number: %s", kind, rest)
		}
		ev.ID = id
	case kind.TakesText():
		text, err := unquote(rest)
		if err != nil {
			return app.Event{}, fmt.Errorf("%s: %w", kind, err)
		}
		ev.Text = text
	default:
		if rest != "" {
			return app.Event{}, fmt.Errorf("%s takes no argument", kind)
		}
	}
	return ev, nil
}

func unquote(s string) (string, error) {
	if !strings.HasPrefix(s, `"`) {
		return s, nil
	}
	v, err := strconv.Unquote(s)
	if err != nil {
		return "", fmt.Errorf("bad quoted text %s", s)
	}
	return v, nil
}

// Replay dispatches every line into sess. after, when non-nil, is called
// after each event.
func Replay(sess *app.Session, lines []Line, after func(Line)) error {
	for _, ln := range lines {
		if err := sess.Dispatch(ln.Event); err != nil {
			return fmt.Errorf("line %d: %w", ln.Num, err)
		}
		if after != nil {
			after(ln)
		}
	}
	return nil
}
