package core

import (
	"slices"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding ties keys to an action in a set of scopes. No scopes, or "*",
// means every scope.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// KeyRegistry resolves key presses against the active page or overlay scope.
// The setup and chat pages own a focused text input, so a key that types a
// character there is always text and never an action.
type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// BindingsForScope lists the bindings that can fire in scope, minus any
// keys swallowed by a text input.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	typing := isTypingScope(scope)
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		if typing {
			b.Keys = slices.DeleteFunc(slices.Clone(b.Keys), typeableKey)
			if len(b.Keys) == 0 {
				continue
			}
		}
		out = append(out, b)
	}
	return out
}

// KeyFor returns the first key that triggers action in scope, or "".
func (r *KeyRegistry) KeyFor(action, scope string) string {
	for _, b := range r.BindingsForScope(scope) {
		if b.Action == action {
			return b.Keys[0]
		}
	}
	return ""
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	_, ok := r.lookup(msg, action, scope)
	return ok
}

// ActionFor returns the first action bound to the pressed key in scope.
func (r *KeyRegistry) ActionFor(msg tea.KeyMsg, scope string) (string, bool) {
	b, ok := r.lookup(msg, "", scope)
	return b.Action, ok
}

func (r *KeyRegistry) lookup(msg tea.KeyMsg, action, scope string) (KeyBinding, bool) {
	if isTypingScope(scope) && typesText(msg) {
		return KeyBinding{}, false
	}
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if action != "" && b.Action != action {
			continue
		}
		if !scopeMatch(scope, b.Scopes) {
			continue
		}
		if slices.ContainsFunc(b.Keys, func(k string) bool { return normalizeKey(k) == pressed }) {
			return b, true
		}
	}
	return KeyBinding{}, false
}

// ApplyActionKeybindings swaps in user-configured keys per action.
//
// An override equal to the action's default keys is ignored, which keeps a
// config written by init-config from flattening per-scope extras such as the
// progress page's "h". Inside the setup and chat scopes only keys that cannot
// type text are taken; when none are left the binding keeps its defaults there.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	defaults := DefaultKeybindingsByAction(bindings)
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		keys := actionKeys[b.Action]
		if len(keys) == 0 || sameKeys(keys, defaults[b.Action]) {
			out = append(out, withKeys(b, b.Keys, b.Scopes))
			continue
		}
		typing, plain := splitScopes(b.Scopes)
		if len(typing) == 0 {
			out = append(out, withKeys(b, keys, b.Scopes))
			continue
		}
		if len(plain) > 0 {
			out = append(out, withKeys(b, keys, plain))
		}
		safe := slices.DeleteFunc(slices.Clone(keys), typeableKey)
		if len(safe) == 0 {
			safe = b.Keys
		}
		out = append(out, withKeys(b, safe, typing))
	}
	return out
}

func withKeys(b KeyBinding, keys, scopes []string) KeyBinding {
	return KeyBinding{
		Keys:        slices.Clone(keys),
		Action:      b.Action,
		Description: b.Description,
		Scopes:      slices.Clone(scopes),
	}
}

// splitScopes separates text-input scopes from the rest. Wildcard bindings
// stay whole; lookup already filters typed keys for them.
func splitScopes(scopes []string) (typing, plain []string) {
	if len(scopes) == 0 || slices.Contains(scopes, "*") {
		return nil, scopes
	}
	for _, s := range scopes {
		if isTypingScope(s) {
			typing = append(typing, s)
		} else {
			plain = append(plain, s)
		}
	}
	return typing, plain
}

func sameKeys(a, b []string) bool {
	return slices.EqualFunc(a, b, func(x, y string) bool { return normalizeKey(x) == normalizeKey(y) })
}

func isTypingScope(scope string) bool {
	return slices.Contains(typingScope, scope)
}

// typesText reports whether msg would insert text into a focused input.
func typesText(msg tea.KeyMsg) bool {
	return !msg.Alt && (msg.Type == tea.KeyRunes || msg.Type == tea.KeySpace)
}

// typeableKey is typesText for a configured key name.
func typeableKey(k string) bool {
	if k == " " {
		return true
	}
	k = normalizeKey(k)
	return k == "space" || utf8.RuneCountInString(k) == 1
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	return slices.Contains(scopes, "*") || slices.Contains(scopes, scope)
}
