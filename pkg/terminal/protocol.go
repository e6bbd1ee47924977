package terminal

import "strings"

// GraphicsProtocol identifies how inline images are written.
type GraphicsProtocol int

const (
	ProtocolNone       GraphicsProtocol = iota // images disabled
	ProtocolKitty                              // Kitty graphics protocol (Ghostty, Kitty, WezTerm)
	ProtocolITerm2                             // iTerm2 inline images protocol
	ProtocolSixel                              // Sixel graphics protocol
	ProtocolHalfblocks                         // Unicode half-block characters with ANSI color
)

var protocolNames = [...]string{
	ProtocolNone:       "none",
	ProtocolKitty:      "kitty",
	ProtocolITerm2:     "iterm2",
	ProtocolSixel:      "sixel",
	ProtocolHalfblocks: "halfblocks",
}

// String returns the protocol name as used in config files.
func (p GraphicsProtocol) String() string {
	if int(p) < len(protocolNames) {
		return protocolNames[p]
	}
	return "unknown"
}

// SelectProtocol returns the best protocol for term. Over SSH every
// graphics protocol degrades to halfblocks.
func SelectProtocol(term Terminal) GraphicsProtocol {
	proto := ProtocolHalfblocks
	switch term {
	case TermGhostty, TermKitty, TermWezTerm:
		proto = ProtocolKitty
	case TermITerm2:
		proto = ProtocolITerm2
	}
	if isSSH() {
		return ProtocolHalfblocks
	}
	return proto
}

// SelectProtocolWithOverride honours a configured protocol name. An empty
// or "auto" override, or an unknown name, falls back to SelectProtocol.
func SelectProtocolWithOverride(term Terminal, override string) GraphicsProtocol {
	switch strings.ToLower(override) {
	case "kitty":
		return ProtocolKitty
	case "iterm2":
		return ProtocolITerm2
	case "sixel":
		return ProtocolSixel
	case "halfblocks", "unicode", "half-blocks":
		return ProtocolHalfblocks
	case "none", "off", "disabled":
		return ProtocolNone
	default:
		return SelectProtocol(term)
	}
}
