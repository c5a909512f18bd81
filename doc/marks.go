package doc

import "fmt"

// Marks are the formatting attributes attached to a span of text.
type Marks struct {
	Bold          bool `json:"bold,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
	Code          bool `json:"code,omitempty"`
	Subscript     bool `json:"subscript,omitempty"`
	Superscript   bool `json:"superscript,omitempty"`
	Kbd           bool `json:"kbd,omitempty"`

	Color           string `json:"color,omitempty"`
	BackgroundColor string `json:"backgroundColor,omitempty"`
	FontSize        string `json:"fontSize,omitempty"`

	Diff          bool           `json:"diff,omitempty"`
	DiffOperation *DiffOperation `json:"diffOperation,omitempty"`
}

type DiffOpType string

const (
	DiffInsert DiffOpType = "insert"
	DiffDelete DiffOpType = "delete"
	DiffUpdate DiffOpType = "update"
)

func (t DiffOpType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

func (t *DiffOpType) UnmarshalText(d []byte) error {
	switch v := DiffOpType(d); v {
	case DiffInsert, DiffDelete, DiffUpdate:
		*t = v
		return nil
	default:
		return fmt.Errorf("%w: unrecognized diff operation %q", ErrBadNode, d)
	}
}

// DiffOperation describes how a span changed. Properties and NewProperties
// are only populated for updates.
type DiffOperation struct {
	Type          DiffOpType `json:"type"`
	Properties    *Marks     `json:"properties,omitempty"`
	NewProperties *Marks     `json:"newProperties,omitempty"`
}

func (d *DiffOperation) Clone() *DiffOperation {
	if d == nil {
		return nil
	}
	res := *d
	if d.Properties != nil {
		p := *d.Properties
		p.DiffOperation = p.DiffOperation.Clone()
		res.Properties = &p
	}
	if d.NewProperties != nil {
		p := *d.NewProperties
		p.DiffOperation = p.DiffOperation.Clone()
		res.NewProperties = &p
	}
	return &res
}

func (d *DiffOperation) Equal(o *DiffOperation) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.Type == o.Type &&
		marksPtrEqual(d.Properties, o.Properties) &&
		marksPtrEqual(d.NewProperties, o.NewProperties)
}

func marksPtrEqual(a, b *Marks) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

func (m Marks) Equal(o Marks) bool {
	a, b := m, o
	a.DiffOperation, b.DiffOperation = nil, nil
	if a != b {
		return false
	}
	return m.DiffOperation.Equal(o.DiffOperation)
}

func (m Marks) IsZero() bool {
	return m.Equal(Marks{})
}

// WithoutDiff returns m with the diff attributes cleared.
func (m Marks) WithoutDiff() Marks {
	m.Diff = false
	m.DiffOperation = nil
	return m
}

// Overlay merges over onto base. Every field set in over wins.
func Overlay(base, over Marks) Marks {
	res := base
	res.Bold = res.Bold || over.Bold
	res.Italic = res.Italic || over.Italic
	res.Underline = res.Underline || over.Underline
	res.Strikethrough = res.Strikethrough || over.Strikethrough
	res.Code = res.Code || over.Code
	res.Subscript = res.Subscript || over.Subscript
	res.Superscript = res.Superscript || over.Superscript
	res.Kbd = res.Kbd || over.Kbd
	if over.Color != "" {
		res.Color = over.Color
	}
	if over.BackgroundColor != "" {
		res.BackgroundColor = over.BackgroundColor
	}
	if over.FontSize != "" {
		res.FontSize = over.FontSize
	}
	res.Diff = res.Diff || over.Diff
	if over.DiffOperation != nil {
		res.DiffOperation = over.DiffOperation
	}
	return res
}
