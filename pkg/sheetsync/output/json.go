package output

import (
	"bytes"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"gopkg.in/yaml.v2"
)

// ToJSON serializes result as JSON with the same shape and key order as
// the YAML output.
func ToJSON(result *models.SyncResult, layout Layout, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	if err := encodeOrdered(&buf, Document(result, layout)); err != nil {
		return nil, errors.Wrap(err, "marshal json")
	}
	if !pretty {
		return buf.Bytes(), nil
	}

	var indented bytes.Buffer
	if err := json.Indent(&indented, buf.Bytes(), "", "  "); err != nil {
		return nil, errors.Wrap(err, "indent json")
	}
	return indented.Bytes(), nil
}

// encodeOrdered writes v as JSON, keeping yaml.MapSlice key order.
func encodeOrdered(buf *bytes.Buffer, v interface{}) error {
	slice, ok := v.(yaml.MapSlice)
	if !ok {
		data, err := json.Marshal(v)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}

	buf.WriteByte('{')
	for i, item := range slice {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(item.Key)
		if err != nil {
			return err
		}
		buf.Write(key)
		buf.WriteByte(':')
		if err := encodeOrdered(buf, item.Value); err != nil {
			return err
		}
	}
	buf.WriteByte('}')
	return nil
}
