// Package launcher resolves the app name given on the command line,
// tolerating aliases and small typos.
package launcher

import (
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

type AppID string

const (
	AppRunner AppID = "runner"
	AppCube   AppID = "cube"
	AppCalc   AppID = "calc"
)

type App struct {
	ID      AppID
	Title   string
	Summary string
	Aliases []string
	// Graphical apps need the cgo/raylib build.
	Graphical bool
}

type alias struct {
	id   AppID
	name string
}

type Registry struct {
	apps    map[AppID]App
	order   []AppID
	aliases []alias
}

func NewRegistry() *Registry {
	return &Registry{apps: make(map[AppID]App)}
}

func (r *Registry) Register(app App) {
	id := AppID(normalise(string(app.ID)))
	if id == "" {
		return
	}
	app.ID = id
	if _, exists := r.apps[id]; !exists {
		r.order = append(r.order, id)
	}
	r.apps[id] = app
	r.aliases = append(r.aliases, alias{id: id, name: string(id)})
	for _, a := range app.Aliases {
		if n := normalise(a); n != "" {
			r.aliases = append(r.aliases, alias{id: id, name: n})
		}
	}
}

// Apps lists registered apps in registration order.
func (r *Registry) Apps() []App {
	out := make([]App, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.apps[id])
	}
	return out
}

// UnknownAppError is returned by Resolve when nothing matches. Suggestion
// is the closest app within typo distance, if any.
type UnknownAppError struct {
	Name       string
	Suggestion AppID
}

func (e *UnknownAppError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("unknown app %q (did you mean %q?)", e.Name, e.Suggestion)
	}
	return fmt.Sprintf("unknown app %q", e.Name)
}

// Resolve matches exact names and aliases first, then a unique prefix of
// at least two characters. Anything else is an *UnknownAppError.
func (r *Registry) Resolve(name string) (App, error) {
	in := normalise(name)
	if in == "" {
		return App{}, &UnknownAppError{Name: name}
	}
	for _, a := range r.aliases {
		if a.name == in {
			return r.apps[a.id], nil
		}
	}

	if len(in) >= 2 {
		var hit AppID
		unique := true
		for _, a := range r.aliases {
			if !strings.HasPrefix(a.name, in) {
				continue
			}
			if hit != "" && hit != a.id {
				unique = false
				break
			}
			hit = a.id
		}
		if hit != "" && unique {
			return r.apps[hit], nil
		}
	}

	return App{}, &UnknownAppError{Name: name, Suggestion: r.suggest(in)}
}

type candidate struct {
	id   AppID
	dist int
}

func (r *Registry) suggest(in string) AppID {
	var cands []candidate
	for _, a := range r.aliases {
		dist := levenshtein.ComputeDistance(in, a.name)
		if dist > levenshteinLimit(len(a.name)) {
			continue
		}
		cands = append(cands, candidate{id: a.id, dist: dist})
	}
	if len(cands) == 0 {
		return ""
	}
	sort.SliceStable(cands, func(i, j int) bool {
		if cands[i].dist == cands[j].dist {
			return cands[i].id < cands[j].id
		}
		return cands[i].dist < cands[j].dist
	})
	return cands[0].id
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalise(raw string) string {
	raw = strings.TrimSpace(strings.ToLower(raw))
	var b strings.Builder
	for _, r := range raw {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(App{
		ID:        AppRunner,
		Title:     "Lane Runner",
		Summary:   "dodge oncoming blocks; arrows/WASD or drag to move",
		Aliases:   []string{"lane", "lanerunner", "lane-runner", "game", "dodge"},
		Graphical: true,
	})
	r.Register(App{
		ID:        AppCube,
		Title:     "Cube",
		Summary:   "drag to spin, scroll to zoom, R to reset",
		Aliases:   []string{"spin", "box", "3d"},
		Graphical: true,
	})
	r.Register(App{
		ID:      AppCalc,
		Title:   "Calculator",
		Summary: "terminal calculator; digits, + - * /, Enter, Esc",
		Aliases: []string{"calculator", "calculate", "math"},
	})
	return r
}
