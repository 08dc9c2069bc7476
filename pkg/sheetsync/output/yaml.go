package output

import (
	"bytes"
	"fmt"

	"github.com/pkg/errors"
	"github.com/ukaji3/sheetsync-go/pkg/sheetsync/models"
	"gopkg.in/yaml.v2"
)

// ToYAML serializes result as YAML, preceded by a generated-file notice.
func ToYAML(result *models.SyncResult, layout Layout) ([]byte, error) {
	doc := Document(result, layout)
	body, err := yaml.Marshal(doc)
	if err != nil {
		return nil, errors.Wrap(err, "marshal yaml")
	}

	var buf bytes.Buffer
	buf.WriteString("# Auto-generated from Google Sheet\n")
	fmt.Fprintf(&buf, "# Last updated: %s\n", result.LastUpdated.UTC().Format(TimestampFormat))
	buf.WriteString("# DO NOT EDIT MANUALLY - This file is automatically generated\n\n")
	buf.Write(body)
	return buf.Bytes(), nil
}
