package quickbase

import (
	"bytes"
	"encoding/json"
)

// Value is the `{"value": ...}` wrapper Quickbase puts around every cell.
type Value struct {
	Value any `json:"value"`
}

// Field is one cell of a record keyed by its field id.
type Field struct {
	Id    string
	Value any
}

// Record is an ordered list of cells. It serializes to a JSON object whose
// keys keep the order of the list.
type Record []Field

func (r Record) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, f := range r {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(f.Id)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(Value{Value: f.Value})
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// Get returns the value of a field id.
func (r Record) Get(id string) (any, bool) {
	for _, f := range r {
		if f.Id == id {
			return f.Value, true
		}
	}
	return nil, false
}

type InsertRecordsRequest struct {
	// table id
	To             string   `json:"to"`
	Data           []Record `json:"data"`
	FieldsToReturn []int    `json:"fieldsToReturn,omitempty"`
}

type InsertRecordsMetadata struct {
	CreatedRecordIds              []int               `json:"createdRecordIds"`
	UpdatedRecordIds              []int               `json:"updatedRecordIds"`
	UnchangedRecordIds            []int               `json:"unchangedRecordIds"`
	TotalNumberOfRecordsProcessed int                 `json:"totalNumberOfRecordsProcessed"`
	LineErrors                    map[string][]string `json:"lineErrors,omitempty"`
}

type InsertRecordsResponse struct {
	Data     []map[string]Value    `json:"data"`
	Metadata InsertRecordsMetadata `json:"metadata"`
	// the undecoded body, kept so it can be echoed back verbatim
	Raw json.RawMessage `json:"-"`
}
