package build

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/engraving-planner/internal/entities/lostark"
	"github.com/KirkDiggler/engraving-planner/internal/errors"
)

// Format is the encoding of a build document
type Format string

// Formats
const (
	FormatAuto Format = ""
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

//go:embed schema/build.schema.json
var schemaSource string

var schema = jsonschema.MustCompileString("build.schema.json", schemaSource)

// FormatFromPath picks the format from a file extension
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatAuto
	}
}

// sniff treats documents starting with an object as JSON and anything else as YAML
func sniff(data []byte) Format {
	if bytes.HasPrefix(bytes.TrimSpace(data), []byte("{")) {
		return FormatJSON
	}
	return FormatYAML
}

// Decode validates a build document against the build schema and decodes it
func Decode(data []byte, format Format) (*lostark.Build, error) {
	if format == FormatAuto {
		format = sniff(data)
	}

	doc, err := toJSON(data, format)
	if err != nil {
		return nil, err
	}

	var raw interface{}
	if err := json.Unmarshal(doc, &raw); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeMalformedInput, "build document is not valid JSON")
	}

	if err := schema.Validate(raw); err != nil {
		return nil, schemaError(err)
	}

	var b lostark.Build
	if err := json.Unmarshal(doc, &b); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeMalformedInput, "failed to decode build")
	}

	if err := Validate(&b); err != nil {
		return nil, err
	}

	return &b, nil
}

// toJSON normalizes a document to JSON so one schema covers both formats
func toJSON(data []byte, format Format) ([]byte, error) {
	switch format {
	case FormatJSON:
		return data, nil
	case FormatYAML:
		var doc interface{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeMalformedInput, "build document is not valid YAML")
		}
		out, err := json.Marshal(doc)
		if err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeMalformedInput, "build document cannot be represented as JSON")
		}
		return out, nil
	default:
		return nil, errors.InvalidArgumentf("unsupported build format %q", format)
	}
}

func schemaError(err error) error {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		return errors.WrapWithCode(err, errors.CodeMalformedInput, "build document does not match the build schema")
	}

	vb := errors.NewValidationBuilder()
	addSchemaCauses(vb, ve)
	return errors.Wrap(vb.BuildWithCode(errors.CodeMalformedInput), "build document does not match the build schema")
}

func addSchemaCauses(vb *errors.ValidationBuilder, ve *jsonschema.ValidationError) {
	if len(ve.Causes) == 0 {
		field := ve.InstanceLocation
		if field == "" {
			field = "/"
		}
		vb.Field(field, ve.Message)
		return
	}
	for _, cause := range ve.Causes {
		addSchemaCauses(vb, cause)
	}
}

// Validate checks the rules a decoded build must follow. Decode runs it
// after the schema; builds created in code should run it before planning.
func Validate(b *lostark.Build) error {
	vb := errors.NewValidationBuilder()

	validateValues(vb, "goal", b.Goal)
	validateValues(vb, "books", b.Books)
	for i, item := range b.Items {
		validateValues(vb, fmt.Sprintf("items[%d].engravings", i), item.Engravings)
	}

	for _, dup := range b.Goal.Duplicates() {
		vb.Fieldf("goal", "declares %s more than once", dup)
	}

	if stones := b.ItemsOfType(lostark.ItemTypeStone); len(stones) > 1 {
		vb.Fieldf("items", "has %d stones, at most one is allowed", len(stones))
	}

	for i, item := range b.Items {
		if item.Type.IsAccessory() && len(item.Engravings) > lostark.MaxEngravingsPerAccessory {
			vb.Fieldf(fmt.Sprintf("items[%d]", i), "%s has %d engravings, at most %d are allowed",
				item.Type, len(item.Engravings), lostark.MaxEngravingsPerAccessory)
		}
	}

	return vb.BuildWithCode(errors.CodeMalformedInput)
}

func validateValues(vb *errors.ValidationBuilder, field string, v lostark.Vector) {
	for i, ev := range v {
		if ev.Value > lostark.MaxEngravingValue || ev.Value < -lostark.MaxEngravingValue {
			vb.Fieldf(fmt.Sprintf("%s[%d]", field, i), "value %d is outside -%d..%d",
				ev.Value, lostark.MaxEngravingValue, lostark.MaxEngravingValue)
		}
	}
}
