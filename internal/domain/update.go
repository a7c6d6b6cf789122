package domain

import "encoding/json"

// Field is a tri-state optional string: absent (leave unchanged), explicit
// null (clear), or a value. The zero value means absent.
type Field struct {
	Set   bool
	Value *string
}

// UnmarshalJSON is only invoked for keys present in the payload, so Set
// distinguishes "key omitted" from "key: null".
func (f *Field) UnmarshalJSON(b []byte) error {
	f.Set = true
	if string(b) == "null" {
		f.Value = nil
		return nil
	}
	return json.Unmarshal(b, &f.Value)
}

// MarshalJSON round-trips the field for logging and tests.
func (f Field) MarshalJSON() ([]byte, error) {
	if !f.Set || f.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*f.Value)
}

// String builds a set Field holding v.
func String(v string) Field { return Field{Set: true, Value: &v} }

// Null builds a set Field holding explicit null.
func Null() Field { return Field{Set: true} }

// ResponseUpdate carries the writable fields of a response. Absent fields
// are left untouched; null clears.
type ResponseUpdate struct {
	ReviewStatusID Field `json:"reviewStatusId"`
	ArchivedAt     Field `json:"archivedAt"`
}

// Empty reports whether the update touches nothing.
func (u ResponseUpdate) Empty() bool {
	return !u.ReviewStatusID.Set && !u.ArchivedAt.Set
}
