package catalog

import (
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/entities"
	"github.com/dfox288/ledger-of-heroes-backend-sub012/internal/errors"
)

// LoadYAML decodes catalog data. Unknown fields are rejected so typos in
// hand-edited files surface at startup.
func LoadYAML(r io.Reader) (*entities.CatalogData, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var data entities.CatalogData
	if err := dec.Decode(&data); err != nil {
		if err == io.EOF {
			return &data, nil
		}
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to decode catalog yaml")
	}
	return &data, nil
}

// LoadFile reads catalog data from a YAML file
func LoadFile(path string) (*entities.CatalogData, error) {
	f, err := os.Open(path) // #nosec G304
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open catalog %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadYAML(f)
}

// WriteYAML encodes catalog data
func WriteYAML(w io.Writer, data *entities.CatalogData) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(data); err != nil {
		return errors.Wrap(err, "failed to encode catalog yaml")
	}
	return enc.Close()
}
