package dump

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schemas/*.json
var schemaFS embed.FS

var (
	schemasOnce sync.Once
	schemas     map[string]*jsonschema.Schema
	schemasErr  error
)

func loadSchemas() (map[string]*jsonschema.Schema, error) {
	schemasOnce.Do(func() {
		c := jsonschema.NewCompiler()
		out := map[string]*jsonschema.Schema{}
		for _, kind := range []string{KindRoute, KindObject} {
			name := kind + ".schema.json"
			data, err := schemaFS.ReadFile("schemas/" + name)
			if err != nil {
				schemasErr = err
				return
			}
			if err := c.AddResource(name, bytes.NewReader(data)); err != nil {
				schemasErr = fmt.Errorf("dump: schema %s: %w", name, err)
				return
			}
			s, err := c.Compile(name)
			if err != nil {
				schemasErr = fmt.Errorf("dump: schema %s: %w", name, err)
				return
			}
			out[kind] = s
		}
		schemas = out
	})
	return schemas, schemasErr
}

// Validate checks uncompressed dump bytes against the schema of their kind.
func Validate(data []byte) error {
	d, err := Parse(data)
	if err != nil {
		return fmt.Errorf("dump: validate: %w", err)
	}
	return d.Validate()
}

// Validate checks the body against the schema of the dump's kind.
func (d *Dump) Validate() error {
	all, err := loadSchemas()
	if err != nil {
		return err
	}
	s, ok := all[d.Header.Kind]
	if !ok {
		return fmt.Errorf("dump: validate: unknown kind %q", d.Header.Kind)
	}
	var v any
	if err := json.Unmarshal(d.Body, &v); err != nil {
		return fmt.Errorf("dump: validate: %w", err)
	}
	if err := s.Validate(v); err != nil {
		return fmt.Errorf("dump: validate %s: %w", d.Header.Kind, err)
	}
	return nil
}
