package imgpoison

import (
	"fmt"
	"strings"
)

// Mode selects how the watermark is embedded.
type Mode int

const (
	// PatchMode stamps a resized watermark at a random position and fades the
	// base image underneath it.
	PatchMode Mode = iota
	// BlendMode stretches the watermark over the whole frame at reduced opacity.
	BlendMode
)

var modeNames = map[Mode]string{
	PatchMode: "patch",
	BlendMode: "blend",
}

func (m Mode) String() string {
	if s, ok := modeNames[m]; ok {
		return s
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) valid() bool {
	_, ok := modeNames[m]
	return ok
}

// ParseMode parses "patch" or "blend" case-insensitively.
func ParseMode(s string) (Mode, error) {
	for m, name := range modeNames {
		if strings.EqualFold(s, name) {
			return m, nil
		}
	}
	return -1, fmt.Errorf("%w: %q, must be 'patch' or 'blend'", ErrInvalidMode, s)
}

// MarshalText implements encoding.TextMarshaler.
func (m Mode) MarshalText() ([]byte, error) {
	if !m.valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidMode, int(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Mode) UnmarshalText(text []byte) (err error) {
	*m, err = ParseMode(string(text))
	return
}
