package models

import "regexp"

// FieldType is the expected shape of a field's value.
type FieldType int

const (
	FieldText FieldType = iota
	FieldPattern
	FieldURL
	FieldDate
	FieldEnum
)

// FieldSpec defines the validation rules for a single column. For list
// columns every element is checked independently against the same rule.
type FieldSpec struct {
	Name     string
	Required bool
	List     bool
	Type     FieldType
	Pattern  *regexp.Regexp // FieldPattern only
	Enum     []string       // FieldEnum only
}

// RefRule declares that a field's value (or every element of a list
// field) must resolve against another table's index. Composite rules
// carry "type/code" values where the type prefix selects the target
// table via BroadcastAreaTargets.
type RefRule struct {
	Field     string
	Target    string
	Noun      string
	List      bool
	Optional  bool
	Composite bool
}

// TableSpec is the per-table validation configuration: key field,
// schema rules, referential rules and duplicate policy. The set of
// specs is closed; adding a table is an edit to the Tables registry,
// not new control flow.
type TableSpec struct {
	Name            string
	KeyField        string
	NormalizeKey    bool
	Fields          []FieldSpec
	Refs            []RefRule
	CheckDuplicates bool
}

// BroadcastAreaTargets maps a broadcast area type prefix to the table
// its code must resolve against. Prefixes outside this map pass
// validation; only the three listed pairs are checked.
var BroadcastAreaTargets = map[string]string{
	"r": "regions",
	"c": "countries",
	"s": "subdivisions",
}

var (
	reCategoryID      = regexp.MustCompile(`^[a-z0-9]+$`)
	reChannelID       = regexp.MustCompile(`^[A-Za-z0-9]+\.[a-z]+$`)
	reCountryCode     = regexp.MustCompile(`^[A-Z]{2}$`)
	reLanguageCode    = regexp.MustCompile(`^[a-z]{3}$`)
	reSubdivisionCode = regexp.MustCompile(`^[A-Z]{2}-[A-Z0-9]{1,3}$`)
	reRegionCode      = regexp.MustCompile(`^[A-Z0-9]{2,7}$`)
	// Region membership lists tolerate case; the referential check is
	// what decides whether the country exists.
	reCountryRef = regexp.MustCompile(`^[A-Za-z]{2}$`)
	reBroadcastArea   = regexp.MustCompile(`^[a-z]/[A-Z0-9-]+$`)
)

// TableNames lists the known tables in the order the default run
// validates them.
var TableNames = []string{
	"blocklist",
	"categories",
	"channels",
	"countries",
	"languages",
	"regions",
	"subdivisions",
}

// Tables is the registry of per-table validation specs.
var Tables = map[string]TableSpec{
	"blocklist": {
		Name:     "blocklist",
		KeyField: "channel",
		Fields: []FieldSpec{
			{Name: "channel", Required: true, Type: FieldPattern, Pattern: reChannelID},
			{Name: "ref", Required: true, Type: FieldURL},
		},
		Refs: []RefRule{
			{Field: "channel", Target: "channels", Noun: "channel"},
		},
	},
	"categories": {
		Name:     "categories",
		KeyField: "id",
		Fields: []FieldSpec{
			{Name: "id", Required: true, Type: FieldPattern, Pattern: reCategoryID},
			{Name: "name", Required: true, Type: FieldText},
		},
	},
	"channels": {
		Name:         "channels",
		KeyField:     "id",
		NormalizeKey: true,
		Fields: []FieldSpec{
			{Name: "id", Required: true, Type: FieldPattern, Pattern: reChannelID},
			{Name: "name", Required: true, Type: FieldText},
			{Name: "network", Type: FieldText},
			{Name: "country", Required: true, Type: FieldPattern, Pattern: reCountryCode},
			{Name: "subdivision", Type: FieldPattern, Pattern: reSubdivisionCode},
			{Name: "city", Type: FieldText},
			{Name: "broadcast_area", Required: true, List: true, Type: FieldPattern, Pattern: reBroadcastArea},
			{Name: "languages", Required: true, List: true, Type: FieldPattern, Pattern: reLanguageCode},
			{Name: "categories", List: true, Type: FieldPattern, Pattern: reCategoryID},
			{Name: "is_nsfw", Required: true, Type: FieldEnum, Enum: []string{"TRUE", "FALSE"}},
			{Name: "launched", Type: FieldDate},
			{Name: "closed", Type: FieldDate},
			{Name: "replaced_by", Type: FieldPattern, Pattern: reChannelID},
			{Name: "website", Type: FieldURL},
			{Name: "logo", Required: true, Type: FieldURL},
		},
		Refs: []RefRule{
			{Field: "country", Target: "countries", Noun: "country"},
			{Field: "subdivision", Target: "subdivisions", Noun: "subdivision", Optional: true},
			{Field: "categories", Target: "categories", Noun: "category", List: true},
			{Field: "replaced_by", Target: "channels", Noun: "replaced_by", Optional: true},
			{Field: "languages", Target: "languages", Noun: "language", List: true},
			{Field: "broadcast_area", Noun: "broadcast_area", List: true, Composite: true},
		},
		CheckDuplicates: true,
	},
	"countries": {
		Name:     "countries",
		KeyField: "code",
		Fields: []FieldSpec{
			{Name: "name", Required: true, Type: FieldText},
			{Name: "code", Required: true, Type: FieldPattern, Pattern: reCountryCode},
			{Name: "lang", Required: true, Type: FieldPattern, Pattern: reLanguageCode},
			{Name: "flag", Required: true, Type: FieldText},
		},
		Refs: []RefRule{
			{Field: "lang", Target: "languages", Noun: "language"},
		},
	},
	"languages": {
		Name:     "languages",
		KeyField: "code",
		Fields: []FieldSpec{
			{Name: "name", Required: true, Type: FieldText},
			{Name: "code", Required: true, Type: FieldPattern, Pattern: reLanguageCode},
		},
	},
	"regions": {
		Name:     "regions",
		KeyField: "code",
		Fields: []FieldSpec{
			{Name: "name", Required: true, Type: FieldText},
			{Name: "code", Required: true, Type: FieldPattern, Pattern: reRegionCode},
			{Name: "countries", Required: true, List: true, Type: FieldPattern, Pattern: reCountryRef},
		},
		Refs: []RefRule{
			{Field: "countries", Target: "countries", Noun: "country", List: true},
		},
	},
	"subdivisions": {
		Name:     "subdivisions",
		KeyField: "code",
		Fields: []FieldSpec{
			{Name: "country", Required: true, Type: FieldPattern, Pattern: reCountryCode},
			{Name: "name", Required: true, Type: FieldText},
			{Name: "code", Required: true, Type: FieldPattern, Pattern: reSubdivisionCode},
		},
		Refs: []RefRule{
			{Field: "country", Target: "countries", Noun: "country"},
		},
	},
}

// ListColumns returns the names of the table's list-valued columns.
func (t TableSpec) ListColumns() map[string]bool {
	cols := make(map[string]bool)
	for _, f := range t.Fields {
		if f.List {
			cols[f.Name] = true
		}
	}
	return cols
}
