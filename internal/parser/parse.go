package parser

import (
	"fmt"
	"strings"
)

const (
	minVerbScore   = 0.5
	tieGap         = 0.05
	tieFloor       = 0.65
	lowConfidence  = 0.52
	argScoreNone   = 0.9
	pronounPenalty = 0.08
	strayWordCost  = 0.02
)

// freeText catches whole sentences that never start with a verb.
var freeText = []struct {
	verb    Verb
	score   float64
	phrases []string
}{
	{VerbStatus, 0.9, []string{"how is the fire", "hows the fire", "how many logs", "what do i have", "check fire", "fire status"}},
	{VerbLight, 0.84, []string{"start the fire", "light the fire", "light it", "set it alight", "get it going", "im cold", "i m cold", "im freezing", "i m freezing"}},
	{VerbFeed, 0.84, []string{"add a log", "add another log", "more wood", "put a log", "throw a log", "keep it going", "feed the fire", "feed it"}},
	{VerbLook, 0.88, []string{"where am i", "look around", "look about", "any logs", "where are the logs"}},
}

type Parser struct {
	vocab *vocabulary
}

func New() *Parser {
	return &Parser{vocab: newVocabulary()}
}

// Verbs lists the canonical commands in help order.
func (p *Parser) Verbs() []Verb {
	return append([]Verb(nil), p.vocab.verbs...)
}

func (p *Parser) Parse(ctx ParseContext, raw string) Intent {
	line := normalise(raw)
	in := Intent{Raw: raw}
	if line == "" {
		in.Clarify = &Clarify{Prompt: "Type a command, or help."}
		return in
	}
	ws := words(line)

	ranked := p.vocab.rank(ws)
	if len(ranked) == 0 || ranked[0].score < minVerbScore {
		if verb, score, ok := matchFreeText(line); ok {
			in.Verb, in.Score = verb, score
			return in
		}
		in.Clarify = &Clarify{Prompt: "I don't know that one. Try " + p.verbList() + "."}
		return in
	}

	best := ranked[0]
	if len(ranked) > 1 && best.score-ranked[1].score < tieGap && ranked[1].score > tieFloor {
		in.Clarify = &Clarify{
			Prompt: "Did you mean:",
			Options: []Intent{
				{Raw: raw, Verb: best.verb, Score: best.score},
				{Raw: raw, Verb: ranked[1].verb, Score: ranked[1].score},
			},
		}
		return in
	}

	in.Verb = best.verb
	rest, q := splitQuantity(ws[best.used:])
	in.Quantity = q

	object, clarify, argScore := p.object(ctx, best.verb, dropFiller(rest))
	if clarify != nil {
		in.Clarify = clarify
		return in
	}
	in.Object = object
	in.Score = clamp(best.score*0.75 + argScore*0.25)
	if in.Score < lowConfidence {
		in.Clarify = &Clarify{Prompt: "Not sure what you meant. Try rephrasing."}
	}
	return in
}

// object resolves the words after the verb. Only take names a thing; other
// verbs tolerate stray words at a small cost.
func (p *Parser) object(ctx ParseContext, verb Verb, rest []string) (string, *Clarify, float64) {
	if len(rest) == 0 {
		return "", nil, argScoreNone
	}
	if isPronoun(rest[0]) {
		if ctx.LastObject == "" {
			return "", &Clarify{Prompt: fmt.Sprintf("%s what?", verb)}, 0
		}
		return normalise(ctx.LastObject), nil, argScoreNone - pronounPenalty
	}
	if verb != VerbTake {
		return "", nil, clamp(argScoreNone - strayWordCost*float64(len(rest)))
	}

	typed := strings.Join(rest, " ")
	names, score := resolveObject(typed, ctx.Nearby)
	switch len(names) {
	case 0:
		return typed, nil, argScoreNone - strayWordCost
	case 1:
		return names[0], nil, min(argScoreNone, score)
	default:
		return "", &Clarify{
			Prompt: "Which one?",
			Options: []Intent{
				{Verb: verb, Object: names[0], Score: score},
				{Verb: verb, Object: names[1], Score: score},
			},
		}, 0
	}
}

func (p *Parser) verbList() string {
	names := make([]string, 0, len(p.vocab.verbs))
	for _, v := range p.vocab.verbs {
		names = append(names, string(v))
	}
	return strings.Join(names, ", ")
}

func matchFreeText(line string) (Verb, float64, bool) {
	padded := " " + line + " "
	for _, rule := range freeText {
		for _, ph := range rule.phrases {
			if strings.Contains(padded, " "+ph+" ") {
				return rule.verb, rule.score, true
			}
		}
	}
	return "", 0, false
}

func clamp(v float64) float64 {
	return max(0, min(1, v))
}
