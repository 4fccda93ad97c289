package core

import "strings"

// Key is a host-independent key identifier. Hosts translate their native
// key events into these names before handing them to the game.
type Key string

const (
	KeyNone   Key = ""
	KeyLeft   Key = "left"
	KeyRight  Key = "right"
	KeyUp     Key = "up"
	KeyDown   Key = "down"
	KeySpace  Key = "space"
	KeyEscape Key = "esc"
	KeyEnter  Key = "enter"
	KeyTheme  Key = "t"
	KeyA      Key = "a"
	KeyB      Key = "b"
)

// ParseKey normalizes a key name as produced by terminal libraries
// (" " for space, "escape" for esc, upper-case letters) into a Key.
func ParseKey(name string) Key {
	switch name {
	case " ", "space":
		return KeySpace
	case "esc", "escape":
		return KeyEscape
	case "left", "right", "up", "down", "enter":
		return Key(name)
	}
	if len(name) == 1 {
		return Key(strings.ToLower(name))
	}
	return KeyNone
}

// String returns the key name.
func (k Key) String() string {
	if k == KeyNone {
		return "none"
	}
	return string(k)
}
