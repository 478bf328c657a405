package engine

import (
	"github.com/BartekS5/dbcheck/pkg/models"
)

// crlf joins lines with CRLF terminators, matching the file format the
// loader requires.
func crlf(lines ...string) string {
	out := ""
	for _, l := range lines {
		out += l + "\r\n"
	}
	return out
}

// makeRow builds a Row from scalar and list cells.
func makeRow(pos int, scalars map[string]string, lists map[string][]string) models.Row {
	fields := make(map[string]models.Value)
	for k, v := range scalars {
		fields[k] = models.ScalarValue(v)
	}
	for k, v := range lists {
		fields[k] = models.ListValue(v)
	}
	return models.Row{Fields: fields, Position: pos}
}

const channelsHeader = "id,name,network,country,subdivision,city,broadcast_area,languages,categories,is_nsfw,launched,closed,replaced_by,website,logo"

// bbcOne is a fully valid channels row for the fixture dataset.
const bbcOne = "BBCOne.uk,BBC One,BBC,GB,GB-ENG,London,c/GB,eng,kids,FALSE,1936-11-02,,,https://www.bbc.co.uk/bbcone,https://example.com/bbcone.png"

// fixtureDataset is a minimal, mutually consistent seven-table dataset:
// every foreign key resolves, no duplicates, all required fields set.
func fixtureDataset() map[string]string {
	return map[string]string{
		"data/blocklist.csv": crlf(
			"channel,ref",
			"BBCOne.uk,https://example.com/claim",
		),
		"data/categories.csv": crlf(
			"id,name",
			"kids,Kids",
			"news,News",
		),
		"data/channels.csv": crlf(
			channelsHeader,
			bbcOne,
		),
		"data/countries.csv": crlf(
			"name,code,lang,flag",
			"United Kingdom,GB,eng,\U0001F1EC\U0001F1E7",
			"France,FR,fra,\U0001F1EB\U0001F1F7",
		),
		"data/languages.csv": crlf(
			"name,code",
			"English,eng",
			"French,fra",
		),
		"data/regions.csv": crlf(
			"name,code,countries",
			"Europe,EU,GB;FR",
		),
		"data/subdivisions.csv": crlf(
			"country,name,code",
			"GB,England,GB-ENG",
		),
	}
}

// fixtureReader reads table text from an in-memory dataset.
func fixtureReader(files map[string]string) ReadFunc {
	return func(path string) (string, error) {
		raw, ok := files[path]
		if !ok {
			return "", errNotFound(path)
		}
		return raw, nil
	}
}

type errNotFound string

func (e errNotFound) Error() string { return "no such file: " + string(e) }
