package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/Alchemy_Go/internal/domain"
	"github.com/osse101/Alchemy_Go/internal/validation"
)

//go:embed schema/catalog.schema.json
var catalogSchema []byte

// Format is a catalog document encoding
type Format string

// Document is the on-disk catalog layout
type Document struct {
	Version     string              `json:"version" yaml:"version"`
	Description string              `json:"description" yaml:"description"`
	Effects     []domain.Effect     `json:"effects" yaml:"effects"`
	Ingredients []domain.Ingredient `json:"ingredients" yaml:"ingredients"`
}

// Loader reads catalog documents and builds snapshots from them
type Loader interface {
	// Load reads, schema-checks and decodes a JSON or YAML file
	Load(path string) (*Document, error)
	// Parse schema-checks and decodes an in-memory document
	Parse(data []byte, format Format) (*Document, error)
	// Build validates a document and returns its snapshot
	Build(doc *Document) (*Catalog, error)
}

type loader struct {
	schemaValidator validation.SchemaValidator
}

// NewLoader creates a new Loader instance
func NewLoader() (Loader, error) {
	v := validation.NewSchemaValidator()
	if err := v.Register(SchemaName, catalogSchema); err != nil {
		return nil, fmt.Errorf("failed to register catalog schema: %w", err)
	}
	return &loader{schemaValidator: v}, nil
}

// LoadFile is a shortcut for loading and building a catalog from one file
func LoadFile(path string) (*Catalog, error) {
	l, err := NewLoader()
	if err != nil {
		return nil, err
	}
	doc, err := l.Load(path)
	if err != nil {
		return nil, err
	}
	return l.Build(doc)
}

// FormatFromPath picks the document format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: "+ErrMsgUnsupportedFormat, ErrInvalidConfig, filepath.Ext(path))
	}
}

// Load reads and parses a catalog file
func (l *loader) Load(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadCatalogFailed, err)
	}

	doc, err := l.Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse validates data against the catalog schema, then decodes it
func (l *loader) Parse(data []byte, format Format) (*Document, error) {
	var doc Document

	switch format {
	case FormatJSON:
		if err := l.schemaValidator.ValidateBytes(data, SchemaName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
		}
	case FormatYAML:
		// The schema is JSON, so the YAML tree is re-encoded for the check
		var tree interface{}
		if err := yaml.Unmarshal(data, &tree); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
		}
		asJSON, err := json.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
		}
		if err := l.schemaValidator.ValidateBytes(asJSON, SchemaName); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf(ErrMsgParseCatalogFailed, err)
		}
	default:
		return nil, fmt.Errorf("%w: "+ErrMsgUnsupportedFormat, ErrInvalidConfig, format)
	}

	return &doc, nil
}

// Build validates the document's records and returns the snapshot
func (l *loader) Build(doc *Document) (*Catalog, error) {
	if doc == nil {
		return nil, fmt.Errorf("%w: document is nil", ErrInvalidConfig)
	}
	return New(doc.Effects, doc.Ingredients)
}
