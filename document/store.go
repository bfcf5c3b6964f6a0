package document

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"k8s.io/klog/v2"
)

// Store holds all markdown documents below a root directory.
type Store struct {
	RootDirectory string
	Documents     []*Document
	converter     *Converter
}

// NewStore loads every document below rootDirectory. Documents that fail to
// load are skipped; their errors are returned together with the store.
func NewStore(rootDirectory string, converter *Converter) (*Store, error) {
	store := &Store{
		RootDirectory: rootDirectory,
		converter:     converter,
	}

	paths, err := FindDocuments(rootDirectory)
	if err != nil {
		return nil, fmt.Errorf("load documents failed: %w", err)
	}

	store.Documents, err = store.LoadDocuments(paths)

	return store, err
}

// FindDocuments returns the paths of all markdown files below rootDirectory.
func FindDocuments(rootDirectory string) ([]string, error) {
	var paths []string

	err := filepath.WalkDir(rootDirectory, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.Type().IsRegular() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext != ".md" {
			return nil
		}

		paths = append(paths, path)
		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("could not find documents: %w", err)
	}

	return paths, nil
}

// LoadDocuments loads paths in order. All load errors are collected.
func (s *Store) LoadDocuments(paths []string) ([]*Document, error) {
	var docs []*Document
	var errs *multierror.Error

	for _, path := range paths {
		doc, err := s.converter.Load(path)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		klog.V(4).Infof("loaded %s (%d figures)", path, len(doc.Figures()))
		docs = append(docs, doc)
	}

	return docs, errs.ErrorOrNil()
}

// OrderDocuments sorts by date, newest first, then by title.
func (s *Store) OrderDocuments() {
	sort.SliceStable(s.Documents, func(i, j int) bool {
		a, b := s.Documents[i], s.Documents[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}

		return a.DisplayTitle() < b.DisplayTitle()
	})
}

func (s *Store) DocumentByGUID(guid uuid.UUID) *Document {
	for _, doc := range s.Documents {
		if doc.GUID == guid {
			return doc
		}
	}

	return nil
}

// ReloadByGUID reads the document from disk again, keeping its GUID.
func (s *Store) ReloadByGUID(guid uuid.UUID) (*Document, error) {
	doc := s.DocumentByGUID(guid)
	if doc == nil {
		return nil, fmt.Errorf("no such document")
	}

	newDoc, err := s.converter.Load(doc.Path)
	if err != nil {
		return nil, fmt.Errorf("new document failed: %w", err)
	}

	newDoc.GUID = doc.GUID
	for i, doc := range s.Documents {
		if newDoc.GUID == doc.GUID {
			s.Documents[i] = newDoc
		}
	}

	return newDoc, nil
}
