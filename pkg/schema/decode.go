package schema

import (
	"bytes"
	"encoding/json"
	"sort"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// exportDocument covers the shapes content model exports come in: a space
// export ({"contentTypes": [...]}) or a management API list ({"items": [...]}).
type exportDocument struct {
	ContentTypes []ContentType `json:"contentTypes" yaml:"contentTypes"`
	Items        []ContentType `json:"items" yaml:"items"`
}

// Decode parses a JSON or YAML export into content types sorted by id. A bare
// list of content types is accepted as well.
func Decode(doc Document) ([]ContentType, error) {
	raw := bytes.TrimSpace(doc.raw)
	if len(raw) == 0 {
		return nil, errors.Newf("schema: document %s is empty", doc.Location())
	}

	var (
		types []ContentType
		err   error
	)
	switch raw[0] {
	case '{', '[':
		// Flow-style YAML also starts with a bracket.
		types, err = decodeJSON(raw)
		if err != nil {
			var yamlErr error
			if types, yamlErr = decodeYAML(raw); yamlErr != nil {
				err = errors.WithSecondaryError(err, yamlErr)
			} else {
				err = nil
			}
		}
	default:
		types, err = decodeYAML(raw)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "schema: decode %s", doc.Location())
	}

	for idx, ct := range types {
		if ct.Sys.ID == "" {
			return nil, errors.Newf("schema: content type at index %d in %s has no sys.id", idx, doc.Location())
		}
	}

	sort.SliceStable(types, func(i, j int) bool {
		return types[i].Sys.ID < types[j].Sys.ID
	})
	return types, nil
}

func decodeJSON(raw []byte) ([]ContentType, error) {
	if raw[0] == '[' {
		var list []ContentType
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var export exportDocument
	if err := json.Unmarshal(raw, &export); err != nil {
		return nil, err
	}
	return export.contentTypes(), nil
}

func decodeYAML(raw []byte) ([]ContentType, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, err
	}
	if len(node.Content) == 0 {
		return nil, nil
	}
	root := node.Content[0]
	if root.Kind == yaml.SequenceNode {
		var list []ContentType
		if err := root.Decode(&list); err != nil {
			return nil, err
		}
		return list, nil
	}
	var export exportDocument
	if err := root.Decode(&export); err != nil {
		return nil, err
	}
	return export.contentTypes(), nil
}

func (d exportDocument) contentTypes() []ContentType {
	out := make([]ContentType, 0, len(d.ContentTypes)+len(d.Items))
	out = append(out, d.ContentTypes...)
	out = append(out, d.Items...)
	return out
}

// Filter returns the content types whose ids are listed in include, preserving
// the input order. An empty include list returns every content type. Unknown
// ids are reported so callers do not silently generate nothing.
func Filter(types []ContentType, include []string) ([]ContentType, error) {
	if len(include) == 0 {
		return types, nil
	}
	wanted := make(map[string]bool, len(include))
	for _, id := range include {
		wanted[id] = false
	}
	out := make([]ContentType, 0, len(include))
	for _, ct := range types {
		if _, ok := wanted[ct.Sys.ID]; ok {
			wanted[ct.Sys.ID] = true
			out = append(out, ct)
		}
	}
	var missing []string
	for id, found := range wanted {
		if !found {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return nil, errors.WithHint(
			errors.Newf("schema: unknown content types %v", missing),
			"check the ids against the export document",
		)
	}
	return out, nil
}
