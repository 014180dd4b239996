package display

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/pixil98/go-mud-rules/internal/commands"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = func() template.FuncMap {
	fm := sprig.TxtFuncMap()
	fm["name"] = Name
	fm["damageVerb"] = DamageVerb
	fm["capitalize"] = Capitalize
	return fm
}()

// DefaultTemplates narrate every event the rules declare. Templates see the
// event itself: {{ .Actor }}, {{ .Location }} and the typed {{ .Payload }}.
var DefaultTemplates = map[commands.EventType]string{
	commands.EventSessionCreated: `A fight breaks out in {{ .Payload.Location }}.`,
	commands.EventSessionStarted: `Round {{ .Payload.Round }} begins. {{ name .Payload.Current }} acts first.`,
	commands.EventSessionPaused:  `The fight pauses.`,
	commands.EventSessionResumed: `The fight resumes with {{ name .Payload.Current }} to act.`,

	commands.EventCombatJoined:        `{{ name .Actor }} joins the fight on team {{ .Payload.Team | lower }}.`,
	commands.EventCombatLeft:          `{{ name .Actor }} leaves the fight.`,
	commands.EventCombatAttacked:      `{{ name .Payload.Attacker }} {{ damageVerb .Payload.Damage }} {{ name .Payload.Target }}{{ if .Payload.Blocked }} through a guard{{ end }}.`,
	commands.EventCombatStruck:        `{{ name .Payload.Attacker }} swings hard and {{ damageVerb .Payload.Damage }} {{ name .Payload.Target }}{{ if .Payload.Blocked }} through a guard{{ end }}.`,
	commands.EventCombatShot:          `{{ name .Payload.Attacker }} fires and {{ damageVerb .Payload.Damage }} {{ name .Payload.Target }}{{ if .Payload.Blocked }} through a guard{{ end }}.`,
	commands.EventCombatDefended:      `{{ name .Actor }} {{ if .Payload.Ally }}guards {{ name .Payload.Ally }}{{ else }}raises a guard{{ end }}.`,
	commands.EventCombatRetreated:     `{{ name .Actor }} falls back to {{ printf "%.1f" .Payload.Position }}.`,
	commands.EventCombatMoved:         `{{ name .Actor }} moves to {{ printf "%.1f" .Payload.Position }}.`,
	commands.EventCombatTargeted:      `{{ name .Actor }} fixes on {{ name .Payload.Target }}.`,
	commands.EventCombatDone:          `{{ name .Actor }} ends the turn.`,
	commands.EventCombatIncapacitated: `{{ name .Actor }} collapses!`,
	commands.EventTurnStarted:         `{{ if .Payload.NewRound }}Round {{ .Payload.Round }}. {{ end }}{{ name .Payload.Current }} is up.`,

	commands.EventEquipped:   `{{ name .Actor }} readies the {{ .Payload.Schema }} ({{ .Payload.Slot }}).`,
	commands.EventUnequipped: `{{ name .Actor }} puts away the {{ .Payload.Schema }}.`,
	commands.EventActorMoved: `{{ name .Actor }} heads {{ .Payload.Direction }} to {{ .Payload.To }}.`,

	commands.EventPartyCreated:      `{{ name .Actor }} forms a party.`,
	commands.EventPartyInvited:      `{{ name .Actor }} invites {{ name .Payload.Member }} to the party.`,
	commands.EventPartyJoined:       `{{ name .Actor }} joins the party of {{ name .Payload.Owner }}.`,
	commands.EventPartyRejected:     `{{ name .Actor }} turns down {{ name .Payload.Owner }}.`,
	commands.EventPartyLeft:         `{{ name .Actor }} leaves the party.`,
	commands.EventPartyOwnerChanged: `{{ name .Payload.Owner }} now leads the party.`,
	commands.EventPartyKicked:       `{{ name .Actor }} removes {{ name .Payload.Member }} from the party.`,
	commands.EventPartyDisbanded:    `The party of {{ name .Payload.Owner }} disbands.`,
	commands.EventPartyInspected:    `Party of {{ name .Payload.Owner }}: {{ .Payload.Members.Ids | join ", " }}.`,
}

// Narrator renders events as wrapped prose.
type Narrator struct {
	width     int
	overrides map[commands.EventType]string
	templates map[commands.EventType]*template.Template
}

type NarratorOpt func(*Narrator)

func WithWidth(width int) NarratorOpt {
	return func(n *Narrator) {
		n.width = width
	}
}

// WithTemplate replaces the template for one event type. An empty text
// silences that type.
func WithTemplate(t commands.EventType, text string) NarratorOpt {
	return func(n *Narrator) {
		n.overrides[t] = text
	}
}

func NewNarrator(opts ...NarratorOpt) (*Narrator, error) {
	n := &Narrator{
		width:     DefaultWidth,
		overrides: map[commands.EventType]string{},
		templates: map[commands.EventType]*template.Template{},
	}

	for _, opt := range opts {
		opt(n)
	}

	texts := make(map[commands.EventType]string, len(DefaultTemplates))
	for t, text := range DefaultTemplates {
		texts[t] = text
	}
	for t, text := range n.overrides {
		texts[t] = text
	}

	for t, text := range texts {
		if text == "" {
			continue
		}
		tmpl, err := template.New(string(t)).Funcs(templateFuncs).Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parsing template for %s: %w", t, err)
		}
		n.templates[t] = tmpl
	}

	return n, nil
}

// Narrate renders an event. ok is false for types without a template.
func (n *Narrator) Narrate(ev commands.Event) (text string, ok bool, err error) {
	tmpl, ok := n.templates[ev.Type]
	if !ok {
		return "", false, nil
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, ev); err != nil {
		return "", true, fmt.Errorf("executing template for %s: %w", ev.Type, err)
	}

	return Wrap(Capitalize(strings.TrimSpace(buf.String())), n.width), true, nil
}

// NarrateError renders a rejection for the actor who issued it.
func (n *Narrator) NarrateError(e commands.DeclaredError) string {
	return Wrap(Capitalize(e.Message)+".", n.width)
}
