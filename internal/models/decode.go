package models

import (
	"bytes"
	"encoding/json"
)

// The analysis service response is loosely typed. Decoding coerces each field
// on its own: numbers become strings, and values of any other unexpected type
// count as absent, so one bad field falls back instead of failing the result.

// UnmarshalJSON decodes a result object. Non-array skills or matches decode
// as empty, and non-string skills are skipped.
func (r *Result) UnmarshalJSON(data []byte) error {
	var wire struct {
		Profession json.RawMessage `json:"profession"`
		Skills     json.RawMessage `json:"skills"`
		Matches    json.RawMessage `json:"matches"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}

	profession, _ := scalarString(wire.Profession)
	*r = Result{
		Profession: profession,
		Skills:     stringList(wire.Skills),
	}

	var matches []json.RawMessage
	if err := json.Unmarshal(wire.Matches, &matches); err == nil {
		r.Matches = make([]JobMatch, 0, len(matches))
		for _, raw := range matches {
			var m JobMatch
			_ = m.UnmarshalJSON(raw)
			r.Matches = append(r.Matches, m)
		}
	}
	return nil
}

// UnmarshalJSON decodes one job match. It never fails: a match that is not an
// object decodes with every field absent.
func (m *JobMatch) UnmarshalJSON(data []byte) error {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(data, &fields); err != nil {
		*m = JobMatch{}
		return nil
	}

	*m = JobMatch{
		Title:         optionalString(fields["title"]),
		Company:       optionalString(fields["company"]),
		URL:           optionalString(fields["url"]),
		MatchedSkills: stringList(fields["matched_skills"]),
	}
	var raw map[string]any
	if err := json.Unmarshal(fields["raw"], &raw); err == nil {
		m.Raw = raw
	}
	return nil
}

// scalarString returns a JSON string as-is and a JSON number in its literal form.
func scalarString(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", false
	}
	switch t := v.(type) {
	case string:
		return t, true
	case json.Number:
		return t.String(), true
	default:
		return "", false
	}
}

func optionalString(raw json.RawMessage) *string {
	s, ok := scalarString(raw)
	if !ok {
		return nil
	}
	return &s
}

// stringList decodes an array, keeping string and number items in order.
// Anything that is not an array yields nil.
func stringList(raw json.RawMessage) []string {
	var items []json.RawMessage
	if len(raw) == 0 || json.Unmarshal(raw, &items) != nil {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := scalarString(item); ok {
			out = append(out, s)
		}
	}
	return out
}
