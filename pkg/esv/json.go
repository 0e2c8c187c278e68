package esv

import (
	"errors"

	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// documentWire is the interchange shape of a Document:
//
//	{"headers": ["name", "age"], "records": [["Alice", "30"]]}
//
// headers is omitted when absent; records is always written and required
// on input.
type documentWire struct {
	Headers *[]string   `json:"headers,omitempty" yaml:"headers,omitempty"`
	Records *[][]string `json:"records" yaml:"records"`
}

var errMissingRecords = errors.New("esv: document is missing \"records\"")

func (d *Document) wire() documentWire {
	w := documentWire{}
	if d.hasHeaders {
		h := copyFields(d.headers)
		w.Headers = &h
	}
	records := make([][]string, len(d.records))
	for i, r := range d.records {
		records[i] = copyFields(r)
	}
	w.Records = &records
	return w
}

func (d *Document) fromWire(w documentWire) error {
	if w.Records == nil {
		return errMissingRecords
	}
	d.ClearHeaders()
	if w.Headers != nil {
		d.SetHeaders(*w.Headers)
	}
	d.records = make([][]string, 0, len(*w.Records))
	for _, r := range *w.Records {
		d.AddRecord(r)
	}
	return nil
}

// MarshalJSON implements json.Marshaler.
func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.wire())
}

// UnmarshalJSON implements json.Unmarshaler. Every field must be a JSON
// string; "records" must be present.
func (d *Document) UnmarshalJSON(data []byte) error {
	var w documentWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	return d.fromWire(w)
}

// MarshalYAML implements yaml.Marshaler with the same shape as MarshalJSON.
func (d *Document) MarshalYAML() (interface{}, error) {
	return d.wire(), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Document) UnmarshalYAML(value *yaml.Node) error {
	var w documentWire
	if err := value.Decode(&w); err != nil {
		return err
	}
	return d.fromWire(w)
}
