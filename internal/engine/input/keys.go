// Package input turns key and pointer events into camera movement and scene
// toggles. It holds no global state: the caller owns a Controller and feeds
// it events from whichever frontend is running.
package input

// Symbol is a logical key, independent of the windowing backend.
type Symbol int

const (
	KeyNone Symbol = iota
	KeyForward
	KeyBackward
	KeyLeft
	KeyRight
	KeyToggleCapture
	KeyToggleTextures
	KeyQuit
)

var symbolNames = [...]string{
	KeyNone:           "none",
	KeyForward:        "forward",
	KeyBackward:       "backward",
	KeyLeft:           "left",
	KeyRight:          "right",
	KeyToggleCapture:  "toggle-capture",
	KeyToggleTextures: "toggle-textures",
	KeyQuit:           "quit",
}

func (s Symbol) String() string {
	if s < 0 || int(s) >= len(symbolNames) {
		return "unknown"
	}
	return symbolNames[s]
}

// KeySet is the set of currently held symbols.
type KeySet uint32

// Press marks sym as held and reports whether it was up before.
func (k *KeySet) Press(sym Symbol) bool {
	was := k.Held(sym)
	*k |= 1 << uint(sym)
	return !was
}

// Release marks sym as up.
func (k *KeySet) Release(sym Symbol) {
	*k &^= 1 << uint(sym)
}

// Held reports whether sym is down.
func (k KeySet) Held(sym Symbol) bool {
	return k&(1<<uint(sym)) != 0
}
