package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownConditionType = errors.New("unknown condition type")
	ErrMalformedCondition   = errors.New("malformed match condition")
	ErrUnknownConditionKey  = errors.New("unknown custom condition key")
)

// Condition is a parsed match condition. The set of implementations is closed:
// ScoreRange, ChoiceRatio, QuizScore and Custom.
type Condition interface {
	Type() ConditionType
	sealed()
}

type ScoreRange struct {
	Min float64
	Max float64
}

type ChoiceRatio struct {
	TargetCode string
	MinRatio   float64
}

type ScoreSource string

const (
	SourceCorrectCount ScoreSource = "correct_count"
	SourceTotalScore   ScoreSource = "total_score"
)

// QuizScore reads Source (correct count unless configured otherwise) and
// matches an inclusive range over it.
type QuizScore struct {
	Min    float64
	Max    float64
	Source ScoreSource
}

type Custom struct {
	Root Node
}

func (ScoreRange) Type() ConditionType  { return ConditionScoreRange }
func (ChoiceRatio) Type() ConditionType { return ConditionChoiceRatio }
func (QuizScore) Type() ConditionType   { return ConditionQuizScore }
func (Custom) Type() ConditionType      { return ConditionCustom }

func (ScoreRange) sealed()  {}
func (ChoiceRatio) sealed() {}
func (QuizScore) sealed()   {}
func (Custom) sealed()      {}

// Node is one node of a custom condition tree.
type Node interface {
	node()
}

// CountNode holds when the count of Code is within the optional bounds.
type CountNode struct {
	Code     string
	MinCount *int
	MaxCount *int
}

type AllNode struct {
	Children []Node
}

// AnyNode with no children never holds.
type AnyNode struct {
	Children []Node
}

type ScoreNode struct {
	Min *float64
	Max *float64
}

type SelectedNode struct {
	Codes []string
}

func (CountNode) node()    {}
func (AllNode) node()      {}
func (AnyNode) node()      {}
func (ScoreNode) node()    {}
func (SelectedNode) node() {}

// ParseCondition decodes a stored match condition for the given type.
func ParseCondition(t ConditionType, raw json.RawMessage) (Condition, error) {
	switch t {
	case ConditionScoreRange:
		var p struct {
			Min *float64 `json:"min"`
			Max *float64 `json:"max"`
		}
		if err := decodeStrict(raw, &p); err != nil {
			return nil, err
		}
		if p.Min == nil || p.Max == nil {
			return nil, fmt.Errorf("%w: score_range requires min and max", ErrMalformedCondition)
		}
		return ScoreRange{Min: *p.Min, Max: *p.Max}, nil

	case ConditionChoiceRatio:
		var p struct {
			TargetCode string   `json:"target_code"`
			MinRatio   *float64 `json:"min_ratio"`
		}
		if err := decodeStrict(raw, &p); err != nil {
			return nil, err
		}
		if p.TargetCode == "" || p.MinRatio == nil {
			return nil, fmt.Errorf("%w: choice_ratio requires target_code and min_ratio", ErrMalformedCondition)
		}
		return ChoiceRatio{TargetCode: p.TargetCode, MinRatio: *p.MinRatio}, nil

	case ConditionQuizScore:
		var p struct {
			Min    *float64    `json:"min"`
			Max    *float64    `json:"max"`
			Source ScoreSource `json:"source"`
		}
		if err := decodeStrict(raw, &p); err != nil {
			return nil, err
		}
		if p.Min == nil || p.Max == nil {
			return nil, fmt.Errorf("%w: quiz_score requires min and max", ErrMalformedCondition)
		}
		switch p.Source {
		case "":
			p.Source = SourceCorrectCount
		case SourceCorrectCount, SourceTotalScore:
		default:
			return nil, fmt.Errorf("%w: unknown quiz_score source %q", ErrMalformedCondition, p.Source)
		}
		return QuizScore{Min: *p.Min, Max: *p.Max, Source: p.Source}, nil

	case ConditionCustom:
		root, err := parseNode(raw)
		if err != nil {
			return nil, err
		}
		return Custom{Root: root}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConditionType, t)
	}
}

// parseNode reads one JSON object; its keys are ANDed.
func parseNode(raw json.RawMessage) (Node, error) {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCondition, err)
	}
	if len(obj) == 0 {
		return nil, fmt.Errorf("%w: empty custom condition", ErrMalformedCondition)
	}

	keys := make([]string, 0, len(obj))
	for k := range obj {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	children := make([]Node, 0, len(keys))
	for _, k := range keys {
		n, err := parseKey(k, obj[k])
		if err != nil {
			return nil, err
		}
		children = append(children, n)
	}

	if len(children) == 1 {
		return children[0], nil
	}
	return AllNode{Children: children}, nil
}

func parseKey(key string, raw json.RawMessage) (Node, error) {
	switch key {
	case "required":
		var req map[string]json.RawMessage
		if err := json.Unmarshal(raw, &req); err != nil {
			return nil, fmt.Errorf("%w: required: %v", ErrMalformedCondition, err)
		}
		if len(req) == 0 {
			return nil, fmt.Errorf("%w: required is empty", ErrMalformedCondition)
		}

		codes := make([]string, 0, len(req))
		for code := range req {
			codes = append(codes, code)
		}
		sort.Strings(codes)

		nodes := make([]Node, 0, len(codes))
		for _, code := range codes {
			var th struct {
				MinCount *int `json:"min_count"`
				MaxCount *int `json:"max_count"`
			}
			if err := decodeStrict(req[code], &th); err != nil {
				return nil, err
			}
			if th.MinCount == nil && th.MaxCount == nil {
				return nil, fmt.Errorf("%w: required.%s has no bounds", ErrMalformedCondition, code)
			}
			nodes = append(nodes, CountNode{Code: code, MinCount: th.MinCount, MaxCount: th.MaxCount})
		}
		if len(nodes) == 1 {
			return nodes[0], nil
		}
		return AllNode{Children: nodes}, nil

	case "all", "any":
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMalformedCondition, key, err)
		}
		children := make([]Node, 0, len(items))
		for _, it := range items {
			n, err := parseNode(it)
			if err != nil {
				return nil, err
			}
			children = append(children, n)
		}
		if key == "all" {
			return AllNode{Children: children}, nil
		}
		return AnyNode{Children: children}, nil

	case "score":
		var p struct {
			Min *float64 `json:"min"`
			Max *float64 `json:"max"`
		}
		if err := decodeStrict(raw, &p); err != nil {
			return nil, err
		}
		if p.Min == nil && p.Max == nil {
			return nil, fmt.Errorf("%w: score has no bounds", ErrMalformedCondition)
		}
		return ScoreNode{Min: p.Min, Max: p.Max}, nil

	case "selected":
		var codes []string
		if err := json.Unmarshal(raw, &codes); err != nil {
			return nil, fmt.Errorf("%w: selected: %v", ErrMalformedCondition, err)
		}
		if len(codes) == 0 {
			return nil, fmt.Errorf("%w: selected is empty", ErrMalformedCondition)
		}
		return SelectedNode{Codes: codes}, nil

	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownConditionKey, key)
	}
}

func decodeStrict(raw json.RawMessage, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCondition, err)
	}
	return nil
}
