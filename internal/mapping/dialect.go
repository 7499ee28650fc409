package mapping

import (
	"bytes"
	"io"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"json2reqif/internal/common"
)

// Dialect identifies the shape a mapping file was written in.
type Dialect int

const (
	// DialectStandard uses plain query strings, attributes keyed by name
	// and tool metadata under "config".
	DialectStandard Dialect = iota + 1
	// DialectCapella wraps queries as {root: "..."}, lists attributes as
	// entries carrying a "key" and keeps tool metadata under "header".
	DialectCapella
)

// Dialects returns the supported dialects in detection order.
func Dialects() []Dialect {
	return []Dialect{DialectStandard, DialectCapella}
}

// String returns the dialect name.
func (d Dialect) String() string {
	switch d {
	case DialectStandard:
		return "standard"
	case DialectCapella:
		return "capella"
	default:
		return common.UnknownStr
	}
}

func (d Dialect) decode(data []byte) (*MappingConfig, error) {
	switch d {
	case DialectStandard:
		var doc standardDocument
		if err := decodeStrict(data, &doc); err != nil {
			return nil, err
		}

		return doc.config(), nil
	case DialectCapella:
		var doc capellaDocument
		if err := decodeStrict(data, &doc); err != nil {
			return nil, err
		}

		return doc.config(), nil
	default:
		return nil, errors.Newf("unknown dialect %d", int(d))
	}
}

// decodeStrict decodes a single YAML (or JSON) document rejecting unknown fields.
func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	if err := dec.Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return errors.New("mapping document is empty")
		}

		return err
	}

	return nil
}

// decodeNodeStrict re-encodes node so nested values get strict decoding too;
// yaml.Node.Decode does not carry KnownFields.
func decodeNodeStrict(node *yaml.Node, out any) error {
	data, err := yaml.Marshal(node)
	if err != nil {
		return err
	}

	return decodeStrict(data, out)
}

type standardDocument struct {
	Version       Scalar                `yaml:"version"`
	Config        Header                `yaml:"config"`
	Specification standardSpecification `yaml:"specification"`
	Requirements  standardRequirements  `yaml:"requirements"`
}

type standardSpecification struct {
	Type          string          `yaml:"type"`
	ID            Query           `yaml:"id"`
	Selector      Query           `yaml:"selector"`
	NameAttribute string          `yaml:"nameAttribute"`
	Attributes    keyedAttributes `yaml:"attributes"`
}

type standardRequirements struct {
	Selector      Query             `yaml:"selector"`
	Variants      []standardVariant `yaml:"variants"`
	ChildrenField string            `yaml:"childrenField"`
	CaptionField  string            `yaml:"captionField"`
}

type standardVariant struct {
	Type       string          `yaml:"type"`
	Match      Query           `yaml:"match"`
	Attributes keyedAttributes `yaml:"attributes"`
}

func (doc *standardDocument) config() *MappingConfig {
	cfg := &MappingConfig{
		Version: doc.Version.String(),
		Dialect: DialectStandard,
		Header:  doc.Config,
		Specification: SpecificationMapping{
			Type:          doc.Specification.Type,
			ID:            doc.Specification.ID,
			Selector:      doc.Specification.Selector,
			NameAttribute: doc.Specification.NameAttribute,
			Attributes:    Attributes(doc.Specification.Attributes),
		},
		Requirements: RequirementsMapping{
			Selector:      doc.Requirements.Selector,
			ChildrenField: doc.Requirements.ChildrenField,
			CaptionField:  doc.Requirements.CaptionField,
		},
	}

	for _, v := range doc.Requirements.Variants {
		cfg.Requirements.Variants = append(cfg.Requirements.Variants, VariantMapping{
			Type:       v.Type,
			Match:      v.Match,
			Attributes: Attributes(v.Attributes),
		})
	}

	return cfg
}

type capellaDocument struct {
	Version       Scalar               `yaml:"version"`
	Header        Header               `yaml:"header"`
	Specification capellaSpecification `yaml:"specification"`
	Requirements  capellaRequirements  `yaml:"requirements"`
}

type capellaSpecification struct {
	Type          string           `yaml:"type"`
	ID            rootQuery        `yaml:"id"`
	Selector      rootQuery        `yaml:"selector"`
	NameAttribute string           `yaml:"nameAttribute"`
	Attributes    listedAttributes `yaml:"attributes"`
}

type capellaRequirements struct {
	Selector      rootQuery        `yaml:"selector"`
	Variants      []capellaVariant `yaml:"variants"`
	ChildrenField string           `yaml:"childrenField"`
	CaptionField  string           `yaml:"captionField"`
}

type capellaVariant struct {
	Type       string           `yaml:"type"`
	Match      rootQuery        `yaml:"match"`
	Attributes listedAttributes `yaml:"attributes"`
}

func (doc *capellaDocument) config() *MappingConfig {
	cfg := &MappingConfig{
		Version: doc.Version.String(),
		Dialect: DialectCapella,
		Header:  doc.Header,
		Specification: SpecificationMapping{
			Type:          doc.Specification.Type,
			ID:            doc.Specification.ID.Root,
			Selector:      doc.Specification.Selector.Root,
			NameAttribute: doc.Specification.NameAttribute,
			Attributes:    Attributes(doc.Specification.Attributes),
		},
		Requirements: RequirementsMapping{
			Selector:      doc.Requirements.Selector.Root,
			ChildrenField: doc.Requirements.ChildrenField,
			CaptionField:  doc.Requirements.CaptionField,
		},
	}

	for _, v := range doc.Requirements.Variants {
		cfg.Requirements.Variants = append(cfg.Requirements.Variants, VariantMapping{
			Type:       v.Type,
			Match:      v.Match.Root,
			Attributes: Attributes(v.Attributes),
		})
	}

	return cfg
}
