package core

import (
	"cmp"
	"slices"
	"strings"

	"github.com/agnivade/levenshtein"
	tea "github.com/charmbracelet/bubbletea"
)

type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Disabled  bool
	Reason    string
}

type CommandRegistry struct {
	commands map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{commands: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	r.commands[c.ID] = c
}

// typoBudget is the edit distance a query word may be from a command word
// and still match.
const typoBudget = 2

// Search matches by substring first; a query that hits nothing that way
// falls back to per-word edit distance so "progres" or "premuim" still land.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.ToLower(strings.TrimSpace(query))
	results := make([]CommandResult, 0, len(r.commands))
	var fuzzy []Command
	for _, c := range r.commands {
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		h := strings.ToLower(c.Name + " " + c.Description + " " + c.ID)
		if q != "" && !strings.Contains(h, q) {
			if nearMatch(q, h) {
				fuzzy = append(fuzzy, c)
			}
			continue
		}
		results = append(results, r.result(c, m))
	}
	if len(results) == 0 {
		for _, c := range fuzzy {
			results = append(results, r.result(c, m))
		}
	}
	slices.SortFunc(results, func(a, b CommandResult) int {
		if a.Disabled != b.Disabled {
			if !a.Disabled {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return results
}

func (r *CommandRegistry) result(c Command, m *Model) CommandResult {
	disabled := false
	reason := ""
	if c.Disabled != nil {
		disabled, reason = c.Disabled(m)
	}
	return CommandResult{
		CommandID: c.ID,
		Name:      c.Name,
		Desc:      c.Description,
		Disabled:  disabled,
		Reason:    reason,
	}
}

func nearMatch(query, haystack string) bool {
	words := strings.FieldsFunc(haystack, func(r rune) bool { return r == ' ' || r == '-' })
	for _, qw := range strings.Fields(query) {
		found := false
		for _, w := range words {
			if levenshtein.ComputeDistance(qw, w) <= typoBudget {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.commands[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		disabled, reason := c.Disabled(m)
		if disabled {
			if reason == "" {
				reason = "command is disabled"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	return c.Execute(m)
}
