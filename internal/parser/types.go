package parser

import "strings"

// Verb is a canonical console command.
type Verb string

const (
	VerbHelp   Verb = "help"
	VerbFeed   Verb = "feed"
	VerbLight  Verb = "light"
	VerbTake   Verb = "take"
	VerbStatus Verb = "status"
	VerbLook   Verb = "look"
	VerbQuit   Verb = "quit"
)

type Kind int

const (
	KindAction Kind = iota
	KindQuery
	KindMeta
)

func (v Verb) Kind() Kind {
	switch v {
	case VerbStatus, VerbLook:
		return KindQuery
	case VerbHelp, VerbQuit:
		return KindMeta
	default:
		return KindAction
	}
}

// Quantity is a count typed after a verb. N is -1 for "all".
type Quantity struct {
	Raw string
	N   int
}

func (q *Quantity) All() bool { return q != nil && q.N < 0 }

// Intent is one parsed console line. A non-nil Clarify means the line could
// not be resolved on its own and Verb should not be acted on.
type Intent struct {
	Raw      string
	Verb     Verb
	Object   string
	Quantity *Quantity
	Score    float64
	Clarify  *Clarify
}

// String renders the intent back as a command line, e.g. "feed 2".
func (i Intent) String() string {
	parts := []string{string(i.Verb)}
	if i.Object != "" {
		parts = append(parts, i.Object)
	}
	if i.Quantity != nil && i.Quantity.Raw != "" {
		parts = append(parts, i.Quantity.Raw)
	}
	return strings.Join(parts, " ")
}

type Clarify struct {
	Prompt  string
	Options []Intent
}

// ParseContext is what the console knows about the clearing when a line is
// typed.
type ParseContext struct {
	Nearby     []string
	LastObject string
}
