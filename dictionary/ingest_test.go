package dictionary

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fieldTableHTML = `
<html><body>
<table>
<tr><th>Status</th><th>Tag</th><th>Name</th><th>Qualifier</th></tr>
<tr><td>M</td><td>20</td><td>Sender's Reference</td><td></td></tr>
<tr><td>O</td><td>23E</td><td>Instruction Code</td><td><a href="/field/23e">code</a></td></tr>
</table>
</body></html>`

type fakeLoader struct {
	pages map[string]string
	calls []string
}

func (f *fakeLoader) Get(_ context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	return f.pages[url], nil
}

func TestExtractRows(t *testing.T) {
	rows, err := ExtractRows(fieldTableHTML)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{Status: "M", Tag: "20", Name: "Sender's Reference"}, rows[0])
	assert.Equal(t, "23E", rows[1].Tag)
	assert.Equal(t, "/field/23e", rows[1].Link)
}

func TestExtractRowsSkipsHeaderRow(t *testing.T) {
	rows, err := ExtractRows(fieldTableHTML)
	require.NoError(t, err)
	for _, r := range rows {
		assert.NotEqual(t, "Tag", r.Tag)
	}
}

func TestIngestMergesByMessageType(t *testing.T) {
	loader := &fakeLoader{pages: map[string]string{}}
	url103 := baseURL + "standards_mt103/2_1/field_table.htm"
	url202 := baseURL + "standards_mt202/2_1/field_table.htm"
	loader.pages[url103] = fieldTableHTML
	loader.pages[url202] = fieldTableHTML

	dict, err := Ingest(context.Background(), loader, []string{"103", "202"})
	require.NoError(t, err)

	assert.Len(t, dict, 2)
	assert.Len(t, dict["103"], 2)
	assert.Len(t, loader.calls, 2)
}

func TestMergeByTagLastWriteWins(t *testing.T) {
	existing := []Row{{Tag: "20", Name: "old"}}
	fresh := []Row{{Tag: "20", Name: "new"}, {Tag: "23E", Name: "added"}}

	merged := mergeByTag(existing, fresh)

	require.Len(t, merged, 2)
	assert.Equal(t, "new", merged[0].Name)
	assert.Equal(t, "23E", merged[1].Tag)
}
