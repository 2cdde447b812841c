package schema

// FieldType enumerates the field kinds a content type can declare. The string
// values match the names used by content model exports.
type FieldType string

const (
	FieldTypeSymbol   FieldType = "Symbol"
	FieldTypeText     FieldType = "Text"
	FieldTypeRichText FieldType = "RichText"
	FieldTypeInteger  FieldType = "Integer"
	FieldTypeNumber   FieldType = "Number"
	FieldTypeBoolean  FieldType = "Boolean"
	FieldTypeDate     FieldType = "Date"
	FieldTypeLocation FieldType = "Location"
	FieldTypeObject   FieldType = "Object"
	FieldTypeArray    FieldType = "Array"
	FieldTypeLink     FieldType = "Link"
)

// FieldTypes lists every supported kind in declaration order.
func FieldTypes() []FieldType {
	return []FieldType{
		FieldTypeSymbol,
		FieldTypeText,
		FieldTypeRichText,
		FieldTypeInteger,
		FieldTypeNumber,
		FieldTypeBoolean,
		FieldTypeDate,
		FieldTypeLocation,
		FieldTypeObject,
		FieldTypeArray,
		FieldTypeLink,
	}
}

// LinkType identifies the entity category a Link field points at.
type LinkType string

const (
	LinkTypeEntry LinkType = "Entry"
	LinkTypeAsset LinkType = "Asset"
)

// Sys carries the system metadata of a content type.
type Sys struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type,omitempty" yaml:"type,omitempty"`
}

// ContentType is a named schema entity composed of ordered fields. Name and
// Description are informational; generated identifiers derive from Sys.ID.
type ContentType struct {
	Sys          Sys     `json:"sys" yaml:"sys"`
	Name         string  `json:"name" yaml:"name"`
	Description  string  `json:"description,omitempty" yaml:"description,omitempty"`
	DisplayField string  `json:"displayField,omitempty" yaml:"displayField,omitempty"`
	Fields       []Field `json:"fields" yaml:"fields"`
}

// ID returns the content type identifier.
func (c ContentType) ID() string {
	return c.Sys.ID
}

// Field describes one field of a content type.
type Field struct {
	ID          string       `json:"id" yaml:"id"`
	Name        string       `json:"name" yaml:"name"`
	Type        FieldType    `json:"type" yaml:"type"`
	Required    bool         `json:"required" yaml:"required"`
	Omitted     bool         `json:"omitted" yaml:"omitted"`
	Disabled    bool         `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Localized   bool         `json:"localized,omitempty" yaml:"localized,omitempty"`
	LinkType    LinkType     `json:"linkType,omitempty" yaml:"linkType,omitempty"`
	Validations []Validation `json:"validations,omitempty" yaml:"validations,omitempty"`
	Items       *FieldItems  `json:"items,omitempty" yaml:"items,omitempty"`
}

// FieldItems describes the element kind of an Array field.
type FieldItems struct {
	Type        FieldType    `json:"type" yaml:"type"`
	LinkType    LinkType     `json:"linkType,omitempty" yaml:"linkType,omitempty"`
	Validations []Validation `json:"validations,omitempty" yaml:"validations,omitempty"`
}

// Validation holds the subset of field validations the exports carry. Only
// LinkContentType and In affect rendering.
type Validation struct {
	LinkContentType []string `json:"linkContentType,omitempty" yaml:"linkContentType,omitempty"`
	In              []string `json:"in,omitempty" yaml:"in,omitempty"`
	Size            *Range   `json:"size,omitempty" yaml:"size,omitempty"`
	Regexp          *Pattern `json:"regexp,omitempty" yaml:"regexp,omitempty"`
	Message         string   `json:"message,omitempty" yaml:"message,omitempty"`
}

// Range bounds a size validation.
type Range struct {
	Min *float64 `json:"min,omitempty" yaml:"min,omitempty"`
	Max *float64 `json:"max,omitempty" yaml:"max,omitempty"`
}

// Pattern is a regular expression validation.
type Pattern struct {
	Pattern string `json:"pattern" yaml:"pattern"`
	Flags   string `json:"flags,omitempty" yaml:"flags,omitempty"`
}

// IsOptional reports whether the generated property carries a question token.
func (f Field) IsOptional() bool {
	return f.Omitted || !f.Required
}

// LinksEntries reports whether the field is a Link to entries.
func (f Field) LinksEntries() bool {
	return f.Type == FieldTypeLink && f.LinkType == LinkTypeEntry
}

// LinkContentTypes flattens the linkContentType validations, dropping
// duplicates while preserving first-seen order.
func (f Field) LinkContentTypes() []string {
	return linkContentTypes(f.Validations)
}

// InValues flattens the "in" validations, dropping duplicates while preserving
// first-seen order.
func (f Field) InValues() []string {
	var out []string
	seen := make(map[string]struct{})
	for _, validation := range f.Validations {
		for _, value := range validation.In {
			if _, ok := seen[value]; ok {
				continue
			}
			seen[value] = struct{}{}
			out = append(out, value)
		}
	}
	return out
}

// AsField views the array element as a field so element rendering can reuse the
// same dispatch as top-level fields. The returned field is always required.
func (i FieldItems) AsField(id string) Field {
	return Field{
		ID:          id,
		Type:        i.Type,
		Required:    true,
		LinkType:    i.LinkType,
		Validations: i.Validations,
	}
}

func linkContentTypes(validations []Validation) []string {
	var out []string
	seen := make(map[string]struct{})
	for _, validation := range validations {
		for _, id := range validation.LinkContentType {
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}
