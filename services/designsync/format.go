package designsync

import "solarsync/lib/platforms/quickbase"

// DefaultModuleName is written to the module name column of every record.
const DefaultModuleName = "Q.PEAK DUO BLK ML-G10+ 400"

type Formatter struct {
	TableId string
	// omitted from the payload when empty
	FieldsToReturn []int
	// replaces the extracted module name on every record, DefaultModuleName
	// if empty
	ModuleName string
}

func (f Formatter) moduleName() string {
	if f.ModuleName == "" {
		return DefaultModuleName
	}
	return f.ModuleName
}

// Format converts records into a Quickbase insert payload. The module name
// column is always overwritten with the configured literal, whatever Aurora
// reported.
func (f Formatter) Format(records []Record) quickbase.InsertRecordsRequest {
	data := make([]quickbase.Record, len(records))
	for i, r := range records {
		fields := r.Fields()
		for j := range fields {
			if fields[j].Id == ColumnModuleName {
				fields[j].Value = f.moduleName()
			}
		}
		data[i] = fields
	}

	payload := quickbase.InsertRecordsRequest{
		To:   f.TableId,
		Data: data,
	}
	if len(f.FieldsToReturn) > 0 {
		payload.FieldsToReturn = f.FieldsToReturn
	}
	return payload
}
