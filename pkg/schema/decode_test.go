package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

const exportJSON = `{
  "contentTypes": [
    {
      "sys": {"id": "post", "type": "ContentType"},
      "name": "Post",
      "displayField": "title",
      "fields": [
        {"id": "title", "name": "Title", "type": "Symbol", "required": true, "omitted": false},
        {
          "id": "author",
          "name": "Author",
          "type": "Link",
          "linkType": "Entry",
          "required": false,
          "omitted": false,
          "validations": [{"linkContentType": ["person"]}]
        },
        {
          "id": "tags",
          "name": "Tags",
          "type": "Array",
          "required": false,
          "omitted": false,
          "items": {"type": "Symbol", "validations": [{"in": ["news", "opinion"]}]}
        }
      ]
    },
    {
      "sys": {"id": "person", "type": "ContentType"},
      "name": "Person",
      "fields": [
        {"id": "name", "name": "Name", "type": "Symbol", "required": true, "omitted": false}
      ]
    }
  ]
}`

const exportYAML = `
contentTypes:
  - sys:
      id: post
      type: ContentType
    name: Post
    displayField: title
    fields:
      - id: title
        name: Title
        type: Symbol
        required: true
        omitted: false
      - id: author
        name: Author
        type: Link
        linkType: Entry
        required: false
        omitted: false
        validations:
          - linkContentType: [person]
      - id: tags
        name: Tags
        type: Array
        required: false
        omitted: false
        items:
          type: Symbol
          validations:
            - in: [news, opinion]
  - sys:
      id: person
      type: ContentType
    name: Person
    fields:
      - id: name
        name: Name
        type: Symbol
        required: true
        omitted: false
`

func TestDecode_JSONAndYAMLAgree(t *testing.T) {
	fromJSON, err := Decode(MustNewDocument(SourceFromFile("export.json"), []byte(exportJSON)))
	if err != nil {
		t.Fatalf("decode json: %v", err)
	}
	fromYAML, err := Decode(MustNewDocument(SourceFromFile("export.yaml"), []byte(exportYAML)))
	if err != nil {
		t.Fatalf("decode yaml: %v", err)
	}

	if diff := cmp.Diff(fromJSON, fromYAML); diff != "" {
		t.Fatalf("json/yaml mismatch (-json +yaml):\n%s", diff)
	}

	if len(fromJSON) != 2 {
		t.Fatalf("expected 2 content types, got %d", len(fromJSON))
	}
	if fromJSON[0].ID() != "person" || fromJSON[1].ID() != "post" {
		t.Fatalf("expected content types sorted by id, got %q, %q", fromJSON[0].ID(), fromJSON[1].ID())
	}

	post := fromJSON[1]
	if got := post.Fields[1].LinkContentTypes(); !cmp.Equal(got, []string{"person"}) {
		t.Fatalf("unexpected link content types %v", got)
	}
	if post.Fields[2].Items == nil || post.Fields[2].Items.Type != FieldTypeSymbol {
		t.Fatalf("expected array items to decode, got %+v", post.Fields[2].Items)
	}
}

func TestDecode_ItemsAndBareList(t *testing.T) {
	items := `{"items": [{"sys": {"id": "b"}, "name": "B", "fields": []}, {"sys": {"id": "a"}, "name": "A", "fields": []}]}`
	got, err := Decode(MustNewDocument(SourceFromFile("items.json"), []byte(items)))
	if err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(got) != 2 || got[0].ID() != "a" {
		t.Fatalf("unexpected content types %+v", got)
	}

	bare := "- sys: {id: only}\n  name: Only\n  fields: []\n"
	got, err = Decode(MustNewDocument(SourceFromFile("bare.yaml"), []byte(bare)))
	if err != nil {
		t.Fatalf("decode bare list: %v", err)
	}
	if len(got) != 1 || got[0].ID() != "only" {
		t.Fatalf("unexpected content types %+v", got)
	}
}

func TestDecode_FlowStyleYAML(t *testing.T) {
	cases := map[string]string{
		"mapping": `{contentTypes: [{sys: {id: a}, name: A, fields: [{id: title, name: Title, type: Symbol, required: true}]}]}`,
		"list":    `[{sys: {id: a}, name: A, fields: [{id: title, name: Title, type: Symbol, required: true}]}]`,
	}

	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := Decode(MustNewDocument(SourceFromFile("flow.yaml"), []byte(raw)))
			if err != nil {
				t.Fatalf("decode flow yaml: %v", err)
			}
			want := []ContentType{{
				Sys:    Sys{ID: "a"},
				Name:   "A",
				Fields: []Field{{ID: "title", Name: "Title", Type: FieldTypeSymbol, Required: true}},
			}}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("unexpected content types (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecode_InvalidBracketedInput(t *testing.T) {
	_, err := Decode(MustNewDocument(SourceFromFile("broken.json"), []byte(`{"contentTypes": [`)))
	if err == nil {
		t.Fatal("expected error for malformed document")
	}
}

func TestDecode_MissingID(t *testing.T) {
	_, err := Decode(MustNewDocument(SourceFromFile("bad.json"), []byte(`[{"name": "nameless"}]`)))
	if err == nil {
		t.Fatal("expected error for content type without sys.id")
	}
}

func TestFilter(t *testing.T) {
	types := []ContentType{
		{Sys: Sys{ID: "a"}},
		{Sys: Sys{ID: "b"}},
		{Sys: Sys{ID: "c"}},
	}

	got, err := Filter(types, []string{"c", "a"})
	if err != nil {
		t.Fatalf("filter: %v", err)
	}
	if len(got) != 2 || got[0].ID() != "a" || got[1].ID() != "c" {
		t.Fatalf("unexpected filter result %+v", got)
	}

	if _, err := Filter(types, []string{"missing"}); err == nil {
		t.Fatal("expected unknown id to fail")
	}

	all, err := Filter(types, nil)
	if err != nil || len(all) != 3 {
		t.Fatalf("expected empty include to keep everything, got %d (%v)", len(all), err)
	}
}

func TestField_Helpers(t *testing.T) {
	field := Field{
		Type:     FieldTypeLink,
		LinkType: LinkTypeEntry,
		Validations: []Validation{
			{LinkContentType: []string{"a", "b"}},
			{LinkContentType: []string{"b", "c"}},
			{In: []string{"x", "x", "y"}},
		},
	}

	if got := field.LinkContentTypes(); !cmp.Equal(got, []string{"a", "b", "c"}) {
		t.Fatalf("LinkContentTypes() = %v", got)
	}
	if got := field.InValues(); !cmp.Equal(got, []string{"x", "y"}) {
		t.Fatalf("InValues() = %v", got)
	}
	if !field.LinksEntries() {
		t.Fatal("expected entry link")
	}
	if !field.IsOptional() {
		t.Fatal("expected non-required field to be optional")
	}

	field.Required = true
	if field.IsOptional() {
		t.Fatal("expected required field to be mandatory")
	}
	field.Omitted = true
	if !field.IsOptional() {
		t.Fatal("expected omitted field to be optional")
	}
}
