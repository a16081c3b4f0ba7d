package dto

import (
	"github.com/lib/pq"

	"seo-backoffice/domain/models"
)

// FieldKind tells the mapper how to convert a value between shapes.
type FieldKind int

const (
	KindScalar FieldKind = iota
	KindIntList
)

// FieldMapping ผูกชื่อ field ฝั่ง public (ไฟล์ import/export) กับ column ในฐานข้อมูล
type FieldMapping struct {
	Public     string
	Column     string
	Kind       FieldKind
	ExportOnly bool // ไม่ส่งกลับไปตอน import
	Example    any
}

// TableSchema describes one allow-listed table in public and storage terms.
type TableSchema struct {
	Table      models.Table
	Label      string
	IDField    string
	ExportFile string
	Fields     []FieldMapping
	Required   []string
	Editable   []string
}

const ImportRule = "L'ID est optionnel: s'il existe, la ligne sera mise à jour, sinon elle sera insérée."

var seoFields = []FieldMapping{
	{Public: "meta_title", Column: "meta_title", Example: "Meta titre"},
	{Public: "meta_description", Column: "meta_description", Example: "Meta description"},
	{Public: "h1", Column: "h1", Example: "Titre H1"},
	{Public: "h2", Column: "h2", Example: "Titre H2"},
	{Public: "text_top", Column: "text_top", Example: "Texte du haut"},
	{Public: "text_bottom", Column: "text_bottom", Example: "Texte du bas"},
	{Public: "keywords", Column: "keywords", Example: "mots-clés"},
}

var seoEditable = []string{"meta_title", "meta_description", "h1", "h2", "text_top", "text_bottom", "keywords"}

func withSEO(fields ...FieldMapping) []FieldMapping {
	out := make([]FieldMapping, 0, len(fields)+len(seoFields))
	out = append(out, fields...)
	return append(out, seoFields...)
}

// TableSchemas is the single mapping table keyed by Table.
var TableSchemas = map[models.Table]*TableSchema{
	models.TableCategories: {
		Table:      models.TableCategories,
		Label:      "Catégories",
		IDField:    "id_categorie",
		ExportFile: "categories.json",
		Fields: withSEO(
			FieldMapping{Public: "id", Column: "id_categorie", Example: 1},
			FieldMapping{Public: "url", Column: "url_categorie", Example: "categorie-url"},
			FieldMapping{Public: "libelle", Column: "libelle_categorie", Example: "Nom catégorie"},
		),
		Required: []string{"url", "libelle"},
		Editable: seoEditable,
	},
	models.TableSubCategories: {
		Table:      models.TableSubCategories,
		Label:      "Sous-catégories",
		IDField:    "id_sous_categorie",
		ExportFile: "sous_categories.json",
		Fields: withSEO(
			FieldMapping{Public: "id", Column: "id_sous_categorie", Example: 1},
			FieldMapping{Public: "libelle", Column: "libelle_sous_categorie", Example: "Nom sous-catégorie"},
			FieldMapping{Public: "idCategorie", Column: "id_categorie", Example: 1},
			FieldMapping{Public: "url", Column: "url_sous_categorie", Example: "sous-categorie-url"},
		),
		Required: []string{"libelle", "idCategorie", "url"},
		Editable: seoEditable,
	},
	models.TableGovernorates: {
		Table:      models.TableGovernorates,
		Label:      "Gouvernorats",
		IDField:    "id_gouvernorat",
		ExportFile: "gouvernorats.json",
		Fields: withSEO(
			FieldMapping{Public: "id", Column: "id_gouvernorat", Example: 1},
			FieldMapping{Public: "libelle", Column: "libelle_gouvernorat", Example: "Nom gouvernorat"},
			FieldMapping{Public: "url", Column: "url_gouvernorat", Example: "gouvernorat-url"},
		),
		Required: []string{"libelle", "url"},
		Editable: seoEditable,
	},
	models.TableCities: {
		Table:      models.TableCities,
		Label:      "Villes",
		IDField:    "id_ville",
		ExportFile: "villes.json",
		Fields: withSEO(
			FieldMapping{Public: "id", Column: "id_ville", Example: 1},
			FieldMapping{Public: "libelle", Column: "libelle_ville", Example: "Nom ville"},
			FieldMapping{Public: "codeGouvernorat", Column: "code_gouvernorat", Example: 1},
			FieldMapping{Public: "url", Column: "url_ville", Example: "ville-url"},
		),
		Required: []string{"libelle", "codeGouvernorat", "url"},
		Editable: seoEditable,
	},
	models.TableLandingPages: {
		Table:      models.TableLandingPages,
		Label:      "Landing Pages",
		IDField:    "id",
		ExportFile: "landing_pages.json",
		Fields: []FieldMapping{
			{Public: "id", Column: "id", Example: 1},
			{Public: "slug", Column: "slug", Example: "landing-slug"},
			{Public: "active", Column: "active", Example: true},
			{Public: "categoryId", Column: "category_id", Example: 1},
			{Public: "subCategoryId", Column: "sub_category_id", Example: 1},
			{Public: "gouvernoratId", Column: "gouvernorat_id", Example: 1},
			{Public: "villeId", Column: "ville_id", Example: 1},
			{Public: "searchTerm", Column: "search_term", Example: "terme de recherche"},
			{Public: "featuredIds", Column: "featured_ids", Kind: KindIntList, Example: []int{1, 2, 3}},
			{Public: "bannedIds", Column: "banned_ids", Kind: KindIntList, Example: []int{}},
			{Public: "metaTitle", Column: "meta_title", Example: "Meta titre"},
			{Public: "metaDescription", Column: "meta_description", Example: "Meta description"},
			{Public: "h1", Column: "h1", Example: "Titre H1"},
			{Public: "h2", Column: "h2", Example: "Titre H2"},
			{Public: "textTop", Column: "text_top", Example: "Texte du haut"},
			{Public: "textBottom", Column: "text_bottom", Example: "Texte du bas"},
			{Public: "tags", Column: "tags", Example: "tags"},
			{Public: "createdAt", Column: "created_at", ExportOnly: true},
			{Public: "updatedAt", Column: "updated_at", ExportOnly: true},
		},
		Required: []string{"slug", "active"},
		Editable: []string{"metaTitle", "metaDescription", "h1", "h2", "textTop", "textBottom", "tags"},
	},
	models.TableBrands: {
		Table:      models.TableBrands,
		Label:      "Marques",
		IDField:    "id_marque",
		ExportFile: "marques.json",
		Fields: []FieldMapping{
			{Public: "id", Column: "id_marque", Example: 1},
			{Public: "libelle", Column: "libelle_marque", Example: "Nom marque"},
			{Public: "url", Column: "url_marque", Example: "marque-url"},
			{Public: "categorieMarque", Column: "categorie_marque", Example: 1},
			{Public: "titre", Column: "titre", Example: "Titre"},
			{Public: "desc", Column: "desc", Example: "Description"},
			{Public: "h1", Column: "h1", Example: "Titre H1"},
			{Public: "h2", Column: "h2", Example: "Titre H2"},
			{Public: "meta_desc", Column: "meta_desc", Example: "Meta description"},
			{Public: "cle", Column: "cle", Example: "mots-clés"},
		},
		Required: []string{"libelle", "url", "categorieMarque"},
		Editable: []string{"titre", "desc", "h1", "h2", "meta_desc", "cle"},
	},
}

// SchemaFor returns the mapping of an allow-listed table.
func SchemaFor(t models.Table) (*TableSchema, bool) {
	s, ok := TableSchemas[t]
	return s, ok
}

// idPublic คือชื่อ field ของ primary key ฝั่ง public ("id" ทุกตาราง)
const idPublic = "id"

func (s *TableSchema) field(public string) (FieldMapping, bool) {
	for _, f := range s.Fields {
		if f.Public == public {
			return f, true
		}
	}
	return FieldMapping{}, false
}

// ToPublic maps a storage row to the public shape. Missing columns become null.
func (s *TableSchema) ToPublic(row map[string]any) map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		v := row[f.Column]
		if f.Kind == KindIntList {
			v = intListFromStorage(v)
		}
		out[f.Public] = v
	}
	return out
}

// ToStorage maps a public record to storage columns for an import write.
// The primary key and export-only fields are dropped, absent keys stay
// absent and explicit nulls are kept. Int-list fields default to an empty
// list when absent or falsy.
func (s *TableSchema) ToStorage(record map[string]any) map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		if f.Public == idPublic || f.ExportOnly {
			continue
		}
		v, present := record[f.Public]
		if f.Kind == KindIntList {
			if !IsTruthy(v) {
				out[f.Column] = pq.Int64Array{}
				continue
			}
			out[f.Column] = intListToStorage(v)
			continue
		}
		if present {
			out[f.Column] = v
		}
	}
	return out
}

// EditableToStorage keeps only the editable SEO fields present in record.
func (s *TableSchema) EditableToStorage(record map[string]any) map[string]any {
	out := make(map[string]any, len(s.Editable))
	for _, name := range s.Editable {
		v, present := record[name]
		if !present {
			continue
		}
		f, ok := s.field(name)
		if !ok {
			continue
		}
		out[f.Column] = v
	}
	return out
}

// PublicNames lists public field names in declaration order.
func (s *TableSchema) PublicNames() []string {
	names := make([]string, len(s.Fields))
	for i, f := range s.Fields {
		names[i] = f.Public
	}
	return names
}

func intListFromStorage(v any) any {
	switch t := v.(type) {
	case nil:
		return nil
	case []int64:
		return t
	case pq.Int64Array:
		return []int64(t)
	case string, []byte:
		var arr pq.Int64Array
		if err := arr.Scan(t); err == nil {
			return []int64(arr)
		}
	}
	return v
}

// intListToStorage แปลง list ของตัวเลขเป็น pq.Int64Array; ค่าที่แปลงไม่ได้ส่งต่อไปให้ storage ตัดสิน
func intListToStorage(v any) any {
	switch t := v.(type) {
	case []int64:
		return pq.Int64Array(t)
	case pq.Int64Array:
		return t
	case []any:
		if ints, ok := Int64Slice(t); ok {
			return pq.Int64Array(ints)
		}
	}
	return v
}

// Int64Slice converts a decoded JSON array whose elements are all integers.
func Int64Slice(values []any) ([]int64, bool) {
	out := make([]int64, 0, len(values))
	for _, e := range values {
		n, ok := AsInt64(e)
		if !ok {
			return nil, false
		}
		out = append(out, n)
	}
	return out, true
}
