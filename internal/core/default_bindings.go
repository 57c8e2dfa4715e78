package core

import "strings"

const (
	ScopeWelcome         = "page:welcome"
	ScopeNewConversation = "page:new-conversation"
	ScopeChat            = "page:chat"
	ScopeProgress        = "page:progress"
	ScopePremium         = "page:premium"
	ScopeCommand         = "screen:command"
)

// Pages without a text input accept bare digits for navigation; pages with
// one only get the function keys.
var (
	plainScopes = []string{ScopeWelcome, ScopeProgress, ScopePremium}
	typingScope = []string{ScopeNewConversation, ScopeChat}
	backScopes  = []string{ScopeNewConversation, ScopeChat, ScopeProgress, ScopePremium}
)

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: plainScopes},
		{Keys: []string{"enter"}, Action: "get-started", Description: "get started", Scopes: []string{ScopeWelcome}},
		{Keys: []string{"esc"}, Action: "back", Description: "back", Scopes: backScopes},
		{Keys: []string{"1", "f1"}, Action: "nav-home", Description: "home", Scopes: plainScopes},
		{Keys: []string{"2", "f2"}, Action: "nav-chat", Description: "chat", Scopes: plainScopes},
		{Keys: []string{"3", "f3"}, Action: "nav-progress", Description: "progress", Scopes: plainScopes},
		{Keys: []string{"4", "f4"}, Action: "nav-premium", Description: "premium", Scopes: plainScopes},
		{Keys: []string{"f1"}, Action: "nav-home", Description: "home", Scopes: typingScope},
		{Keys: []string{"f2"}, Action: "nav-chat", Description: "chat", Scopes: typingScope},
		{Keys: []string{"f3"}, Action: "nav-progress", Description: "progress", Scopes: typingScope},
		{Keys: []string{"f4"}, Action: "nav-premium", Description: "premium", Scopes: typingScope},
		{Keys: []string{"tab"}, Action: "next-field", Description: "next field", Scopes: []string{ScopeNewConversation}},
		{Keys: []string{"shift+tab"}, Action: "prev-field", Description: "prev field", Scopes: []string{ScopeNewConversation}},
		{Keys: []string{"left"}, Action: "option-prev", Description: "choose", Scopes: []string{ScopeNewConversation, ScopePremium}},
		{Keys: []string{"right"}, Action: "option-next", Description: "choose", Scopes: []string{ScopeNewConversation, ScopePremium}},
		{Keys: []string{"enter"}, Action: "create", Description: "start conversation", Scopes: []string{ScopeNewConversation}},
		{Keys: []string{"enter"}, Action: "send", Description: "send", Scopes: []string{ScopeChat}},
		{Keys: []string{"alt+1"}, Action: "quick-action-1", Description: "track calories", Scopes: []string{ScopeChat}},
		{Keys: []string{"alt+2"}, Action: "quick-action-2", Description: "start workout", Scopes: []string{ScopeChat}},
		{Keys: []string{"alt+3"}, Action: "quick-action-3", Description: "ask question", Scopes: []string{ScopeChat}},
		{Keys: []string{"pgup"}, Action: "scroll-up", Description: "scroll", Scopes: []string{ScopeChat}},
		{Keys: []string{"pgdown"}, Action: "scroll-down", Description: "scroll", Scopes: []string{ScopeChat}},
		{Keys: []string{"h"}, Action: "nav-home", Description: "home", Scopes: []string{ScopeProgress}},
		{Keys: []string{"w"}, Action: "weekly-summary", Description: "weekly summary", Scopes: []string{ScopeProgress}},
		{Keys: []string{"enter"}, Action: "choose-plan", Description: "choose plan", Scopes: []string{ScopePremium}},
		{Keys: []string{"t"}, Action: "start-trial", Description: "free trial", Scopes: []string{ScopePremium}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{ScopeWelcome, ScopeNewConversation, ScopeChat, ScopeProgress, ScopePremium}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeCommand}},
		{Keys: []string{"enter"}, Action: "select", Description: "run", Scopes: []string{ScopeCommand}},
	}
}

// DefaultKeybindingsByAction maps each action to the keys of its first
// binding. init-config writes it out as the [keys] table.
func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}
