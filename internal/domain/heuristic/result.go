package heuristic

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

type expertiseKind uint8

const (
	expertiseLabels expertiseKind = iota
	expertiseScore
	expertiseNote
)

// Expertise explains why a group's members were put together. It holds
// exactly one of a label set, an aggregate score or a free-text note.
type Expertise struct {
	kind   expertiseKind
	labels map[string]struct{}
	score  int
	note   string
}

// AddLabel adds a skill label, switching the expertise to label-set form.
func (e *Expertise) AddLabel(label string) {
	e.kind = expertiseLabels
	if e.labels == nil {
		e.labels = make(map[string]struct{})
	}
	e.labels[label] = struct{}{}
}

// SetScore replaces the expertise with an aggregate score.
func (e *Expertise) SetScore(score int) {
	e.kind = expertiseScore
	e.score = score
	e.labels = nil
}

// SetNote replaces the expertise with free text.
func (e *Expertise) SetNote(note string) {
	e.kind = expertiseNote
	e.note = note
	e.labels = nil
}

// Labels returns the label set in lexical order. It is empty unless the
// expertise is in label-set form.
func (e Expertise) Labels() []string {
	out := make([]string, 0, len(e.labels))
	for l := range e.labels {
		out = append(out, l)
	}
	sort.Strings(out)
	return out
}

// Score returns the aggregate score and whether the expertise holds one.
func (e Expertise) Score() (int, bool) {
	return e.score, e.kind == expertiseScore
}

// Note returns the free-text note and whether the expertise holds one.
func (e Expertise) Note() (string, bool) {
	return e.note, e.kind == expertiseNote
}

// MarshalJSON renders a list of labels, a number or a string.
func (e Expertise) MarshalJSON() ([]byte, error) {
	switch e.kind {
	case expertiseScore:
		return json.Marshal(e.score)
	case expertiseNote:
		return json.Marshal(e.note)
	default:
		return json.Marshal(e.Labels())
	}
}

// Group is one assigned team. Fields are declared in JSON key order.
type Group struct {
	Expertise Expertise `json:"expertise"`
	// Leader is reserved; no strategy assigns one yet.
	Leader *string `json:"leader"`
	// Members holds member keys in assignment order.
	Members []string `json:"members"`
}

// Result is the outcome of one assignment.
type Result struct {
	Groups  map[int]*Group
	Leaders []string
	Admin   map[string]any
}

func newResult(leaders []string, groups groupSet) *Result {
	if leaders == nil {
		leaders = []string{}
	}
	return &Result{Groups: groups, Leaders: leaders, Admin: map[string]any{}}
}

// Assigned returns the member count of every group in index order.
func (r *Result) Assigned() []int {
	out := make([]int, 0, len(r.Groups))
	for _, x := range r.indices() {
		out = append(out, len(r.Groups[x].Members))
	}
	return out
}

func (r *Result) indices() []int {
	idx := make([]int, 0, len(r.Groups))
	for x := range r.Groups {
		idx = append(idx, x)
	}
	sort.Ints(idx)
	return idx
}

// MarshalJSON renders the canonical document with sorted keys. Group
// indices are emitted in numeric order.
func (r *Result) MarshalJSON() ([]byte, error) {
	var groups bytes.Buffer
	groups.WriteByte('{')
	for i, x := range r.indices() {
		if i > 0 {
			groups.WriteByte(',')
		}
		groups.WriteString(strconv.Quote(strconv.Itoa(x)))
		groups.WriteByte(':')
		g := *r.Groups[x]
		if g.Members == nil {
			g.Members = []string{}
		}
		b, err := json.Marshal(g)
		if err != nil {
			return nil, err
		}
		groups.Write(b)
	}
	groups.WriteByte('}')

	leaders := r.Leaders
	if leaders == nil {
		leaders = []string{}
	}
	admin := r.Admin
	if admin == nil {
		admin = map[string]any{}
	}

	return json.Marshal(struct {
		Admin   map[string]any  `json:"admin"`
		Groups  json.RawMessage `json:"groups"`
		Leaders []string        `json:"leaders"`
	}{admin, groups.Bytes(), leaders})
}

// JSON renders the result indented by four spaces.
func (r *Result) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "    ")
}
