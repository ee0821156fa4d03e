package catalog

import (
	"context"
	"fmt"

	"github.com/osse101/Alchemy_Go/internal/repository"
)

// FileSource loads snapshots from a JSON or YAML catalog file
type FileSource struct {
	path   string
	loader Loader
}

// NewFileSource creates a source reading path
func NewFileSource(path string) (*FileSource, error) {
	l, err := NewLoader()
	if err != nil {
		return nil, err
	}
	return &FileSource{path: path, loader: l}, nil
}

// Load reads the file and builds a snapshot
func (s *FileSource) Load(_ context.Context) (*Catalog, error) {
	doc, err := s.loader.Load(s.path)
	if err != nil {
		return nil, err
	}
	return s.loader.Build(doc)
}

// Name describes the source for logs
func (s *FileSource) Name() string {
	return "file:" + s.path
}

// Path returns the watched file path
func (s *FileSource) Path() string {
	return s.path
}

// RepositorySource loads snapshots from persistent storage
type RepositorySource struct {
	repo repository.Catalog
}

// NewRepositorySource creates a source reading from repo
func NewRepositorySource(repo repository.Catalog) *RepositorySource {
	return &RepositorySource{repo: repo}
}

// Load reads every effect and ingredient and builds a snapshot
func (s *RepositorySource) Load(ctx context.Context) (*Catalog, error) {
	effects, err := s.repo.GetAllEffects(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadEffectsFailed, err)
	}

	ingredients, err := s.repo.GetAllIngredients(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgLoadIngredientsFail, err)
	}

	return New(effects, ingredients)
}

// Name describes the source for logs
func (s *RepositorySource) Name() string {
	return "repository"
}
