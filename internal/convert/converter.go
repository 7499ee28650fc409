package convert

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"json2reqif/internal/ident"
	"json2reqif/internal/mapping"
	"json2reqif/internal/query"
	"json2reqif/internal/reqif"
)

// Header values written into every document.
const (
	ToolID       = "JSON to ReqIF Converter"
	ReqIFVersion = "1.0"
	DefaultTitle = "Exported Reqif"
)

// Config holds the collaborators of a Converter.
type Config struct {
	// Title is written to the document header.
	Title string
	// IDs generates record identifiers.
	IDs ident.Generator
	// Clock supplies the creation time and LAST-CHANGE stamps.
	Clock ident.Clock
	// Logger receives one entry per conversion phase.
	Logger *zap.Logger
	// Assembler serializes bundles in Render.
	Assembler reqif.Assembler
}

// DefaultConfig returns random identifiers, the wall clock, no logging and
// indented XML output.
func DefaultConfig() Config {
	return Config{
		Title:     DefaultTitle,
		IDs:       ident.NewRandom(),
		Clock:     ident.SystemClock{},
		Logger:    zap.NewNop(),
		Assembler: reqif.NewXMLAssembler(true),
	}
}

// Stats summarizes a conversion.
type Stats struct {
	Objects        int
	Leaves         int
	Roots          int
	Specifications int
	DataTypes      int
	SpecTypes      int
}

// Result is the outcome of a conversion.
type Result struct {
	Bundle *reqif.Bundle
	Forest *Forest
	Stats  Stats
}

// Converter turns JSON documents into ReqIF bundles according to a mapping.
// Every call builds its own registry and resolvers; a Converter is still not
// safe for concurrent use because the identifier generator may be stateful.
type Converter struct {
	mapping *mapping.MappingConfig
	config  Config
}

// NewConverter creates a converter. Zero fields of config take their defaults.
func NewConverter(m *mapping.MappingConfig, config Config) *Converter {
	def := DefaultConfig()

	if config.Title == "" {
		config.Title = def.Title
	}

	if config.IDs == nil {
		config.IDs = def.IDs
	}

	if config.Clock == nil {
		config.Clock = def.Clock
	}

	if config.Logger == nil {
		config.Logger = def.Logger
	}

	if config.Assembler == nil {
		config.Assembler = def.Assembler
	}

	return &Converter{mapping: m, config: config}
}

// Convert builds the bundle for doc. Either the complete bundle is returned
// or an error; there are no partial results.
func (c *Converter) Convert(doc any) (*Result, error) {
	if c.mapping == nil {
		return nil, errors.New("converter has no mapping")
	}

	log := c.config.Logger
	stamp := stamper{ids: c.config.IDs, at: ident.Timestamp(c.config.Clock.Now())}

	registry := NewRegistry(stamp.ids, stamp.at)

	specTypes, err := NewSpecificationResolver(registry, &c.mapping.Specification)
	if err != nil {
		return nil, err
	}

	objectTypes, err := NewObjectResolver(registry, &c.mapping.Requirements)
	if err != nil {
		return nil, err
	}

	eval := query.NewEvaluator()
	values := NewValueBuilder(registry)

	t := &traversal{
		req:     &c.mapping.Requirements,
		eval:    eval,
		objects: objectTypes,
		values:  values,
		stamp:   stamp,
	}

	forest, err := t.run(doc)
	if err != nil {
		return nil, errors.Wrap(err, "extract objects")
	}

	log.Info("extracted objects",
		zap.Int("total", len(forest.AllObjects)),
		zap.Int("leaves", len(forest.LeafObjects)),
		zap.Int("roots", len(forest.Roots)))

	sb := &specificationBuilder{
		spec:   &c.mapping.Specification,
		eval:   eval,
		types:  specTypes,
		values: values,
		stamp:  stamp,
	}

	specs, err := sb.build(doc, forest)
	if err != nil {
		return nil, errors.Wrap(err, "build specifications")
	}

	log.Info("built specifications", zap.Int("count", len(specs)))

	bundle := &reqif.Bundle{
		Header:         c.header(stamp),
		DataTypes:      registry.All(),
		SpecTypes:      append(append([]*reqif.SpecType{}, specTypes.Types()...), objectTypes.Types()...),
		SpecObjects:    forest.AllObjects,
		Specifications: specs,
	}

	log.Debug("assembled bundle",
		zap.String("header", bundle.Header.Identifier),
		zap.Int("data_types", len(bundle.DataTypes)),
		zap.Int("spec_types", len(bundle.SpecTypes)))

	return &Result{
		Bundle: bundle,
		Forest: forest,
		Stats: Stats{
			Objects:        len(forest.AllObjects),
			Leaves:         len(forest.LeafObjects),
			Roots:          len(forest.Roots),
			Specifications: len(specs),
			DataTypes:      len(bundle.DataTypes),
			SpecTypes:      len(bundle.SpecTypes),
		},
	}, nil
}

// Render converts doc and serializes the bundle with the configured assembler.
func (c *Converter) Render(doc any) ([]byte, *Result, error) {
	res, err := c.Convert(doc)
	if err != nil {
		return nil, nil, err
	}

	out, err := c.config.Assembler.Assemble(res.Bundle)
	if err != nil {
		return nil, nil, errors.Wrap(err, "assemble document")
	}

	c.config.Logger.Info("assembled document", zap.Int("bytes", len(out)))

	return out, res, nil
}

func (c *Converter) header(stamp stamper) *reqif.Header {
	return &reqif.Header{
		Identifier:   stamp.id("HDR"),
		CreationTime: stamp.at,
		RepositoryID: c.mapping.Header.Repository,
		ReqIFToolID:  ToolID,
		ReqIFVersion: ReqIFVersion,
		SourceToolID: c.mapping.Header.SourceToolID(),
		Title:        c.config.Title,
	}
}
