package core

import (
	"errors"
	"fmt"
	"strings"
)

// ScreenID names one full-page view. The set is closed.
type ScreenID string

const (
	ScreenWelcome         ScreenID = "welcome"
	ScreenNewConversation ScreenID = "new-conversation"
	ScreenChat            ScreenID = "chat"
	ScreenProgress        ScreenID = "progress"
	ScreenPremium         ScreenID = "premium"
)

// Screens lists every ScreenID in navigation order.
var Screens = []ScreenID{ScreenWelcome, ScreenNewConversation, ScreenChat, ScreenProgress, ScreenPremium}

func (s ScreenID) Valid() bool {
	for _, id := range Screens {
		if id == s {
			return true
		}
	}
	return false
}

var (
	ErrTransitionNotAllowed = errors.New("transition not allowed")
	ErrInvalidConversation  = errors.New("invalid conversation")
)

// Conversation identifies the active coaching chat.
type Conversation struct {
	Name     string
	Category string
	Mode     string
}

// Validate requires a non-blank name and a chosen category.
func (c Conversation) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidConversation)
	}
	if strings.TrimSpace(c.Category) == "" {
		return fmt.Errorf("%w: category is required", ErrInvalidConversation)
	}
	return nil
}

type TriggerKind int

const (
	TriggerGetStarted TriggerKind = iota
	TriggerCreate
	TriggerBack
	TriggerNavigate
)

func (k TriggerKind) String() string {
	switch k {
	case TriggerGetStarted:
		return "get-started"
	case TriggerCreate:
		return "create-conversation"
	case TriggerBack:
		return "back"
	case TriggerNavigate:
		return "navigate"
	default:
		return fmt.Sprintf("trigger(%d)", int(k))
	}
}

// Trigger is a user action the router reacts to. Target is only read for
// TriggerNavigate, Conversation only for TriggerCreate.
type Trigger struct {
	Kind         TriggerKind
	Target       ScreenID
	Conversation Conversation
}

func GetStarted() Trigger { return Trigger{Kind: TriggerGetStarted} }

func Create(c Conversation) Trigger { return Trigger{Kind: TriggerCreate, Conversation: c} }

func Back() Trigger { return Trigger{Kind: TriggerBack} }

func Navigate(target ScreenID) Trigger { return Trigger{Kind: TriggerNavigate, Target: target} }

func NavigateHome() Trigger { return Navigate(ScreenWelcome) }

func (t Trigger) String() string {
	if t.Kind == TriggerNavigate {
		return "navigate:" + string(t.Target)
	}
	return t.Kind.String()
}

// Transition reports what Apply did.
type Transition struct {
	From    ScreenID
	To      ScreenID
	Trigger Trigger
	Created bool
	Cleared bool
}

// Router is the top-level navigation state machine. The zero value is not
// usable; start from NewRouter.
//
// Entering welcome always drops the conversation, and every path into chat
// requires one, so chat can never be shown without a descriptor.
type Router struct {
	current      ScreenID
	conversation *Conversation
}

func NewRouter() Router {
	return Router{current: ScreenWelcome}
}

func (r Router) Current() ScreenID { return r.current }

func (r Router) Conversation() (Conversation, bool) {
	if r.conversation == nil {
		return Conversation{}, false
	}
	return *r.conversation, true
}

// Apply runs one trigger. On error the router is unchanged.
func (r *Router) Apply(t Trigger) (Transition, error) {
	from := r.current
	to, err := r.target(t)
	if err != nil {
		return Transition{}, fmt.Errorf("%s from %s: %w", t, from, err)
	}
	tr := Transition{From: from, To: to, Trigger: t}
	if t.Kind == TriggerCreate {
		c := Conversation{Name: strings.TrimSpace(t.Conversation.Name), Category: t.Conversation.Category, Mode: t.Conversation.Mode}
		r.conversation = &c
		tr.Created = true
	}
	if to == ScreenWelcome {
		tr.Cleared = r.conversation != nil
		r.conversation = nil
	}
	r.current = to
	return tr, nil
}

func (r Router) target(t Trigger) (ScreenID, error) {
	switch t.Kind {
	case TriggerGetStarted:
		if r.current != ScreenWelcome {
			return "", ErrTransitionNotAllowed
		}
		return ScreenNewConversation, nil
	case TriggerCreate:
		if r.current != ScreenNewConversation {
			return "", ErrTransitionNotAllowed
		}
		if err := t.Conversation.Validate(); err != nil {
			return "", err
		}
		return ScreenChat, nil
	case TriggerBack:
		switch r.current {
		case ScreenNewConversation, ScreenProgress, ScreenPremium:
			return ScreenWelcome, nil
		case ScreenChat:
			return ScreenNewConversation, nil
		default:
			return "", ErrTransitionNotAllowed
		}
	case TriggerNavigate:
		if !t.Target.Valid() {
			return "", fmt.Errorf("%w: unknown screen %q", ErrTransitionNotAllowed, t.Target)
		}
		if t.Target == ScreenChat && r.conversation == nil {
			return ScreenNewConversation, nil
		}
		return t.Target, nil
	default:
		return "", ErrTransitionNotAllowed
	}
}
