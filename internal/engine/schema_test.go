package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BartekS5/dbcheck/pkg/models"
)

// validChannel returns a row that passes every channels schema rule.
func validChannel(pos int) models.Row {
	return makeRow(pos,
		map[string]string{
			"id":          "BBCOne.uk",
			"name":        "BBC One",
			"network":     "BBC",
			"country":     "GB",
			"subdivision": "GB-ENG",
			"city":        "London",
			"is_nsfw":     "FALSE",
			"launched":    "1936-11-02",
			"closed":      "",
			"replaced_by": "",
			"website":     "https://www.bbc.co.uk/bbcone",
			"logo":        "https://example.com/bbcone.png",
		},
		map[string][]string{
			"broadcast_area": {"c/GB"},
			"languages":      {"eng"},
			"categories":     {"kids"},
		})
}

func TestSchemaValidRow(t *testing.T) {
	errs := ValidateSchema(models.Tables["channels"], validChannel(0))
	assert.Empty(t, errs)
}

func TestSchemaMissingRequiredField(t *testing.T) {
	row := validChannel(0)
	row.Fields["id"] = models.ScalarValue("")

	errs := ValidateSchema(models.Tables["channels"], row)
	require.Len(t, errs, 1)
	assert.Equal(t, 2, errs[0].Line)
	assert.Contains(t, errs[0].Message, "missing required id")
}

func TestSchemaOptionalFieldMayBeEmpty(t *testing.T) {
	row := validChannel(0)
	row.Fields["subdivision"] = models.ScalarValue("")
	row.Fields["website"] = models.ScalarValue("")

	errs := ValidateSchema(models.Tables["channels"], row)
	assert.Empty(t, errs)
}

func TestSchemaInvalidPattern(t *testing.T) {
	row := validChannel(0)
	row.Fields["country"] = models.ScalarValue("gbr")

	errs := ValidateSchema(models.Tables["channels"], row)
	require.Len(t, errs, 1)
	assert.Equal(t, `invalid country "gbr"`, errs[0].Message)
}

func TestSchemaInvalidURL(t *testing.T) {
	row := validChannel(0)
	row.Fields["logo"] = models.ScalarValue("not a url")

	errs := ValidateSchema(models.Tables["channels"], row)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "invalid logo")
}

func TestSchemaInvalidDate(t *testing.T) {
	row := validChannel(0)
	row.Fields["launched"] = models.ScalarValue("02/11/1936")

	errs := ValidateSchema(models.Tables["channels"], row)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0].Message, "invalid launched")
}

func TestSchemaInvalidEnum(t *testing.T) {
	row := validChannel(0)
	row.Fields["is_nsfw"] = models.ScalarValue("yes")

	errs := ValidateSchema(models.Tables["channels"], row)
	require.Len(t, errs, 1)
	assert.Equal(t, `invalid is_nsfw "yes"`, errs[0].Message)
}

func TestSchemaListElementsCheckedIndependently(t *testing.T) {
	row := validChannel(3)
	row.Fields["languages"] = models.ListValue([]string{"eng", "ENG", "fra"})

	errs := ValidateSchema(models.Tables["channels"], row)
	require.Len(t, errs, 1)
	assert.Equal(t, 5, errs[0].Line)
	assert.Equal(t, `invalid languages "ENG"`, errs[0].Message)
}

func TestSchemaReportsAllFailingFields(t *testing.T) {
	row := validChannel(0)
	row.Fields["id"] = models.ScalarValue("not a channel id")
	row.Fields["country"] = models.ScalarValue("gb")
	row.Fields["is_nsfw"] = models.ScalarValue("maybe")

	errs := ValidateSchema(models.Tables["channels"], row)
	assert.Len(t, errs, 3)
}
