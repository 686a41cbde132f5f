// Package yaml loads the documentation catalog manifest.
package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"path"

	"github.com/fwojciec/alloydoc"
	"gopkg.in/yaml.v3"
)

// DefaultManifestPath is the manifest location within a corpus.
const DefaultManifestPath = "catalog.yaml"

// Manifest is the decoded corpus: documents, catalog entries and prompts.
type Manifest struct {
	Documents []*alloydoc.Document
	Entries   []*alloydoc.Entry
	Prompts   []*alloydoc.Prompt
}

type manifestFile struct {
	Resources []resourceRecord  `yaml:"resources"`
	Entries   []*alloydoc.Entry `yaml:"entries"`
	Prompts   []promptRecord    `yaml:"prompts"`
}

type resourceRecord struct {
	URI         string `yaml:"uri"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	MimeType    string `yaml:"mime_type"`
	Path        string `yaml:"path"`
}

type promptRecord struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Request     string `yaml:"request"`
	Path        string `yaml:"path"`
}

// LoadManifest reads the manifest at name from fsys along with every
// document and prompt body it references. Paths in the manifest are
// relative to the manifest's directory.
//
// Returns EINVALID for unknown fields, missing bodies, duplicate document
// URIs and entries referencing unknown documents.
func LoadManifest(fsys fs.FS, name string) (*Manifest, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var file manifestFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, alloydoc.Errorf(alloydoc.EINVALID, "malformed manifest %s: %s", name, err)
	}

	dir := path.Dir(name)
	m := &Manifest{Entries: file.Entries}

	uris := make(map[string]struct{}, len(file.Resources))
	for i, r := range file.Resources {
		if _, ok := uris[r.URI]; ok {
			return nil, alloydoc.Errorf(alloydoc.EINVALID, "duplicate resource URI %q", r.URI)
		}
		uris[r.URI] = struct{}{}

		content, err := readBody(fsys, dir, r.Path)
		if err != nil {
			return nil, alloydoc.Errorf(alloydoc.EINVALID, "resource %q: %s", r.URI, err)
		}

		mimeType := r.MimeType
		if mimeType == "" {
			mimeType = alloydoc.DefaultMimeType
		}

		doc := &alloydoc.Document{
			URI:         r.URI,
			Name:        r.Name,
			Description: r.Description,
			MimeType:    mimeType,
			Content:     content,
			Position:    i,
		}
		if err := doc.Validate(); err != nil {
			return nil, err
		}
		m.Documents = append(m.Documents, doc)
	}

	for i, e := range m.Entries {
		if e == nil {
			return nil, alloydoc.Errorf(alloydoc.EINVALID, "entry %d is empty", i)
		}
		if _, ok := uris[e.DocumentURI()]; !ok {
			return nil, alloydoc.Errorf(alloydoc.EINVALID, "entry %q references unknown resource %q", e.ID, e.DocumentURI())
		}
	}

	names := make(map[string]struct{}, len(file.Prompts))
	for _, p := range file.Prompts {
		if _, ok := names[p.Name]; ok {
			return nil, alloydoc.Errorf(alloydoc.EINVALID, "duplicate prompt %q", p.Name)
		}
		names[p.Name] = struct{}{}

		content, err := readBody(fsys, dir, p.Path)
		if err != nil {
			return nil, alloydoc.Errorf(alloydoc.EINVALID, "prompt %q: %s", p.Name, err)
		}

		prompt := &alloydoc.Prompt{
			Name:        p.Name,
			Description: p.Description,
			Request:     p.Request,
			Response:    content,
		}
		if err := prompt.Validate(); err != nil {
			return nil, err
		}
		m.Prompts = append(m.Prompts, prompt)
	}

	return m, nil
}

func readBody(fsys fs.FS, dir, name string) (string, error) {
	if name == "" {
		return "", errors.New("path required")
	}
	data, err := fs.ReadFile(fsys, path.Join(dir, name))
	if err != nil {
		return "", err
	}
	return string(data), nil
}
