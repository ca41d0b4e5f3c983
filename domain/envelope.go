package domain

import "encoding/json"

// Link relations attached to a comment envelope.
const (
	RelParent    = "parent"
	RelInReplyTo = "in-reply-to"
	RelAuthor    = "author"
)

// Link is a hypermedia reference.
type Link struct {
	Href string `json:"href"`
}

type RenderedContent struct {
	Rendered string `json:"rendered"`
}

// CommentEnvelope is the client-facing representation of a comment.
//
// Extra lets prepare_comment filters add keys to the JSON object or replace
// existing ones. A nil value in Extra removes that key from the output.
type CommentEnvelope struct {
	ID      int64           `json:"id"`
	PostID  int64           `json:"post_id"`
	Content RenderedContent `json:"content"`
	Status  string          `json:"status"`
	Type    string          `json:"type"`
	Date    string          `json:"date"`
	DateGMT string          `json:"date_gmt"`
	Links   map[string]Link `json:"_links"`

	Extra map[string]any `json:"-"`
}

// MarshalJSON merges Extra into the encoded object.
func (e CommentEnvelope) MarshalJSON() ([]byte, error) {
	type plain CommentEnvelope
	data, err := json.Marshal(plain(e))
	if err != nil || len(e.Extra) == 0 {
		return data, err
	}

	fields := make(map[string]json.RawMessage)
	if err := json.Unmarshal(data, &fields); err != nil {
		return nil, err
	}
	for k, v := range e.Extra {
		if v == nil {
			delete(fields, k)
			continue
		}
		raw, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		fields[k] = raw
	}
	return json.Marshal(fields)
}

// HookArgs is what an extension filter may inspect besides the value it
// filters.
type HookArgs struct {
	Comment *Comment
	Actor   Actor
	View    string
}
