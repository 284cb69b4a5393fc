package parse

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/datagovrs/standards/pkg/locale"
	"github.com/datagovrs/standards/pkg/script"
)

func TestStringify(t *testing.T) {
	t.Parallel()
	records := []Record{
		{"stavka": "Plata", "iznos": 1234.56, "datum": time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)},
	}

	out := StringifyCSV(records, StringifyOptions{
		Columns:      []string{"stavka", "iznos", "datum"},
		Decimals:     2,
		UseThousands: true,
	})

	assert.Equal(t, "stavka;iznos;datum\nPlata;1.234,56;15.03.2024.", out)
}

func TestStringifyEscapesDelimiter(t *testing.T) {
	t.Parallel()
	records := []Record{{"napomena": "prvo; drugo"}}

	out := StringifyCSV(records, StringifyOptions{})
	assert.Equal(t, "napomena\n\"prvo; drugo\"", out)
}

func TestStringifyCyrillicDates(t *testing.T) {
	t.Parallel()
	records := []Record{{"datum": time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)}}

	out := StringifyCSV(records, StringifyOptions{
		DateStyle: locale.StyleLong,
		Script:    script.Cyrillic,
	})
	assert.Equal(t, "datum\n15. март 2024.", out)
}

func TestStringifyEmptyInput(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "", StringifyCSV(nil, StringifyOptions{}))
}

func TestParseStringifyRoundTrip(t *testing.T) {
	t.Parallel()
	input := "grad;broj\nNiš;\"1.234,50\"\nBeograd;500"

	parsed, err := ParseCSV(context.Background(), input, Options{ParseNumbers: true})
	require.NoError(t, err)

	out := StringifyCSV(parsed.Data, StringifyOptions{
		Columns:      parsed.Metadata.Columns,
		Decimals:     2,
		UseThousands: true,
	})

	reparsed, err := ParseCSV(context.Background(), out, Options{ParseNumbers: true})
	require.NoError(t, err)
	assert.Equal(t, parsed.Data[0]["broj"], reparsed.Data[0]["broj"])
	assert.Equal(t, parsed.Data[1]["grad"], reparsed.Data[1]["grad"])
}
