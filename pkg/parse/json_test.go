package parse

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagovrs/standards/pkg/sderr"
)

func TestParseJSONArray(t *testing.T) {
	t.Parallel()
	input := `[{"ime":"Petar","iznos":"1.234,56"},{"ime":"Jovana","iznos":"500"}]`

	result, err := ParseJSON(context.Background(), input, Options{ParseNumbers: true})
	require.NoError(t, err)

	require.Len(t, result.Data, 2)
	assert.InDelta(t, 1234.56, result.Data[0]["iznos"], 1e-9)
	assert.Equal(t, "Petar", result.Data[0]["ime"])
	assert.Empty(t, result.ParseErrors)
}

func TestParseJSONEnvelope(t *testing.T) {
	t.Parallel()
	input := `{"meta":{"source":"data.gov.rs"},"data":[{"grad":"Ниш"},{"grad":"Београд"}]}`

	result, err := ParseJSON(context.Background(), input, Options{DetectScript: true})
	require.NoError(t, err)

	assert.Len(t, result.Data, 2)
	assert.Equal(t, "cyrillic", string(result.Metadata.Script))
}

func TestParseJSONSingleObject(t *testing.T) {
	t.Parallel()
	result, err := ParseJSON(context.Background(), `{"grad":"Niš","broj":42}`, Options{})
	require.NoError(t, err)

	require.Len(t, result.Data, 1)
	assert.Equal(t, "Niš", result.Data[0]["grad"])
	assert.Equal(t, 42.0, result.Data[0]["broj"])
}

func TestParseJSONDecodedValue(t *testing.T) {
	t.Parallel()
	input := []any{
		map[string]any{"jmbg": validJMBG},
		map[string]any{"jmbg": "000"},
	}

	result, err := ParseJSON(context.Background(), input, Options{ValidateJMBG: true})
	require.NoError(t, err)

	require.Len(t, result.Data, 2)
	assert.Equal(t, "000", result.Data[1]["jmbg"])
	require.Len(t, result.ParseErrors, 1)
	assert.Equal(t, sderr.CodeInvalidJMBG, result.ParseErrors[0].Code)
}

func TestParseJSONMalformed(t *testing.T) {
	t.Parallel()
	result, err := ParseJSON(context.Background(), `{"broken":`, Options{})
	require.NoError(t, err)

	assert.Empty(t, result.Data)
	assert.Equal(t, 0, result.Metadata.ParsedRows)
	require.Len(t, result.ParseErrors, 1)
	assert.Equal(t, sderr.CodeInvalidJSON, result.ParseErrors[0].Code)
}

func TestParseJSONNonObjectRow(t *testing.T) {
	t.Parallel()
	result, err := ParseJSON(context.Background(), `[{"a":1},"naked string"]`, Options{})
	require.NoError(t, err)

	assert.Len(t, result.Data, 1)
	require.Len(t, result.ParseErrors, 1)
	assert.Equal(t, sderr.CodeRowTruncated, result.ParseErrors[0].Code)
}
