package export

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDataset() Dataset {
	return Dataset{
		Headers: []string{"role_id", "role_title", "role_desc"},
		Rows: []map[string]string{
			{"role_id": "1", "role_title": "Teacher", "role_desc": "teaches, a lot"},
			{"role_id": "2", "role_title": "Director"},
		},
	}
}

func TestCSVExporterRender(t *testing.T) {
	out, err := NewCSVExporter().Render(sampleDataset())
	require.NoError(t, err)
	assert.Equal(t, "role_id,role_title,role_desc\n1,Teacher,\"teaches, a lot\"\n2,Director,\n", string(out))

	_, err = NewCSVExporter().Render(Dataset{})
	assert.ErrorIs(t, err, errNoHeaders)
}

func TestCSVExporterNeutralisesFormulas(t *testing.T) {
	data := Dataset{
		Headers: []string{"student_name", "student_addr", "student_scholarship"},
		Rows: []map[string]string{
			{"student_name": "=HYPERLINK(\"http://x\")", "student_addr": "@home", "student_scholarship": "-12.5"},
		},
	}
	exporter := &CSVExporter{Comma: ';'}

	var buf bytes.Buffer
	require.NoError(t, exporter.Write(&buf, data))
	assert.Equal(t, "student_name;student_addr;student_scholarship\n\"'=HYPERLINK(\"\"http://x\"\")\";'@home;-12.5\n", buf.String())
}

func TestXLSXExporterRender(t *testing.T) {
	out, err := NewXLSXExporter().Render(sampleDataset(), "roles")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close() //nolint:errcheck

	rows, err := f.GetRows("roles")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"role_id", "role_title", "role_desc"}, rows[0])
	assert.Equal(t, "Teacher", rows[1][1])
}

func TestPDFExporterRender(t *testing.T) {
	out, err := NewPDFExporter().Render(sampleDataset(), "roles")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF")))
}
