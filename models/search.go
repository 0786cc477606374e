package models

// SearchKind tells which typeahead endpoint produced a SearchOption.
type SearchKind string

const (
	SearchKindItem     SearchKind = "item"
	SearchKindDocument SearchKind = "document"
)

// SearchOption is an ephemeral typeahead suggestion.
type SearchOption struct {
	ID         int64      `json:"id"`
	Label      string     `json:"label"`
	Title      string     `json:"title,omitempty"`
	DocName    string     `json:"doc_name,omitempty"`
	HeaderID   int64      `json:"header_id,omitempty"`
	ItemID     int64      `json:"item_id,omitempty"`
	HeaderName string     `json:"header_name,omitempty"`
	Kind       SearchKind `json:"-"`
}

// DisplayLabel picks the best human readable label the server provided.
func (o SearchOption) DisplayLabel() string {
	switch {
	case o.Label != "":
		return o.Label
	case o.Title != "":
		return o.Title
	default:
		return o.DocName
	}
}
