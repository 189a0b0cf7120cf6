package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match scores, from an exact verb down to a one-edit typo of a long alias.
const (
	scoreExact     = 1.0
	scoreAlias     = 0.97
	scorePrefix    = 0.9
	scoreTypoBase  = 0.72
	scoreTypoEdit  = 0.08
	scoreAliasBump = 0.03
	scoreNearby    = 0.08
)

// verbWords lists each verb with the phrases that also mean it. Order sets
// the order verbs are offered in help and clarify prompts.
var verbWords = []struct {
	verb    Verb
	aliases []string
}{
	{VerbFeed, []string{"add", "add log", "add wood", "stoke", "fuel", "put log", "throw log"}},
	{VerbLight, []string{"ignite", "kindle", "spark", "start", "light fire", "start fire"}},
	{VerbTake, []string{"get", "pickup", "pick up", "grab", "collect", "gather"}},
	{VerbStatus, []string{"stat", "inventory", "inv", "hud", "fire"}},
	{VerbLook, []string{"look around", "scan", "search"}},
	{VerbHelp, []string{"h", "commands", "keys"}},
	{VerbQuit, []string{"exit", "q", "bye", "leave"}},
}

type phrase struct {
	verb  Verb
	text  string
	words []string
	alias bool
}

type candidate struct {
	verb  Verb
	used  int
	score float64
}

// vocabulary holds every verb phrase, canonical and alias, ready to match
// against the first words of a line.
type vocabulary struct {
	phrases []phrase
	verbs   []Verb
}

func newVocabulary() *vocabulary {
	v := &vocabulary{}
	for _, entry := range verbWords {
		v.add(entry.verb, string(entry.verb), false)
		for _, a := range entry.aliases {
			v.add(entry.verb, a, true)
		}
		v.verbs = append(v.verbs, entry.verb)
	}
	return v
}

func (v *vocabulary) add(verb Verb, text string, alias bool) {
	n := normalise(text)
	v.phrases = append(v.phrases, phrase{verb: verb, text: n, words: strings.Fields(n), alias: alias})
}

func typoLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func typoScore(dist int) float64 {
	return scoreTypoBase - scoreTypoEdit*float64(dist)
}

// score rates how well the start of ws spells p.
func (p phrase) score(ws []string) (candidate, bool) {
	if len(ws) >= len(p.words) && strings.Join(ws[:len(p.words)], " ") == p.text {
		s := scoreExact
		if p.alias {
			s = scoreAlias
		}
		return candidate{verb: p.verb, used: len(p.words), score: s}, true
	}
	if len(p.words) == 1 && len(ws[0]) >= 2 && strings.HasPrefix(p.text, ws[0]) {
		return candidate{verb: p.verb, used: 1, score: scorePrefix}, true
	}

	used := min(len(ws), len(p.words))
	typed := strings.Join(ws[:used], " ")
	if len(typed) < 3 {
		return candidate{}, false
	}
	dist := levenshtein.ComputeDistance(typed, p.text)
	if dist > typoLimit(len(p.text)) {
		return candidate{}, false
	}
	s := typoScore(dist)
	if p.alias {
		s += scoreAliasBump
	}
	return candidate{verb: p.verb, used: used, score: s}, true
}

// rank returns the best candidate per verb, best first.
func (v *vocabulary) rank(ws []string) []candidate {
	if len(ws) == 0 {
		return nil
	}
	best := map[Verb]candidate{}
	for _, p := range v.phrases {
		c, ok := p.score(ws)
		if !ok {
			continue
		}
		prev, seen := best[c.verb]
		if !seen || c.score > prev.score || (c.score == prev.score && c.used > prev.used) {
			best[c.verb] = c
		}
	}
	out := make([]candidate, 0, len(best))
	for _, c := range best {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		if out[i].used != out[j].used {
			return out[i].used > out[j].used
		}
		return out[i].verb < out[j].verb
	})
	return out
}

// resolveObject matches a typed object name against what is nearby. Two
// close matches come back as a tie.
func resolveObject(typed string, nearby []string) ([]string, float64) {
	type scored struct {
		name  string
		score float64
	}
	var found []scored
	seen := map[string]bool{}
	for _, raw := range nearby {
		name := normalise(raw)
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		var s float64
		switch {
		case typed == name:
			s = scoreExact
		case len(typed) >= 2 && strings.HasPrefix(name, typed):
			s = scorePrefix
		default:
			dist := levenshtein.ComputeDistance(typed, name)
			if dist > typoLimit(len(name)) {
				continue
			}
			s = typoScore(dist)
		}
		found = append(found, scored{name: name, score: min(1, s+scoreNearby)})
	}
	if len(found) == 0 {
		return nil, 0
	}
	sort.Slice(found, func(i, j int) bool {
		if found[i].score != found[j].score {
			return found[i].score > found[j].score
		}
		return found[i].name < found[j].name
	})
	if len(found) > 1 && found[0].score-found[1].score < 0.05 && found[1].score > 0.6 {
		return []string{found[0].name, found[1].name}, found[0].score
	}
	return []string{found[0].name}, found[0].score
}
