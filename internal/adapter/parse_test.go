package adapter

import (
	"testing"

	"github.com/MKhiriev/go-deed-keeper/models"
	"github.com/stretchr/testify/assert"
)

func TestParseDeedJSON(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   models.DeedFields
		wantOK bool
	}{
		{
			name:   "plain object",
			text:   `{"NoHakmilik":"GRN 1","Negeri":"PERAK"}`,
			want:   models.DeedFields{NoHakmilik: "GRN 1", Negeri: "PERAK"},
			wantOK: true,
		},
		{
			name:   "code fence",
			text:   "```json\n{\"NoPetak\":\"45\"}\n```",
			want:   models.DeedFields{NoPetak: "45"},
			wantOK: true,
		},
		{
			name:   "object inside prose",
			text:   `Here you go: {"Bandar":"KLANG","Daerah":"KLANG"} hope it helps`,
			want:   models.DeedFields{Bandar: "KLANG", Daerah: "KLANG"},
			wantOK: true,
		},
		{
			name:   "numbers are rendered",
			text:   `{"NoTingkat":3,"NoPetak":45}`,
			want:   models.DeedFields{NoTingkat: "3", NoPetak: "45"},
			wantOK: true,
		},
		{
			name:   "unknown keys ignored",
			text:   `{"Owner":"0xabc","NoBangunan":" B1 "}`,
			want:   models.DeedFields{NoBangunan: "B1"},
			wantOK: true,
		},
		{name: "empty", text: "   ", wantOK: false},
		{name: "no object", text: "No. Hakmilik: GRN 1", wantOK: false},
		{name: "unbalanced", text: `{"NoHakmilik":"GRN 1"`, wantOK: false},
		{name: "broken inner object", text: `see {"NoHakmilik": } end`, wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseDeedJSON(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFirstObject_Nested(t *testing.T) {
	got, ok := firstObject(`x {"a":{"b":1}} {"c":2}`)

	assert.True(t, ok)
	assert.Equal(t, `{"a":{"b":1}}`, got)
}

func TestFallbackExtract(t *testing.T) {
	text := "NO. HAKMILIK : PN 55021\nNo Bangunan: M1\nNo. Tingkat - 7\nNo. Petak: 701\nNegeri: SELANGOR\nDaerah: PETALING\nBandar: BANDAR PETALING JAYA\n"

	got := fallbackExtract(text)

	assert.Equal(t, models.DeedFields{
		NoHakmilik: "PN 55021",
		NoBangunan: "M1",
		NoTingkat:  "7",
		NoPetak:    "701",
		Negeri:     "SELANGOR",
		Daerah:     "PETALING",
		Bandar:     "BANDAR PETALING JAYA",
	}, got)
}

func TestFallbackExtract_GeranNumber(t *testing.T) {
	got := fallbackExtract("title geran 12345 issued")

	assert.Equal(t, "geran 12345", got.NoHakmilik)
	assert.Empty(t, got.Negeri)
}

func TestFallbackExtract_Nothing(t *testing.T) {
	assert.Equal(t, models.DeedFields{}, fallbackExtract("unrelated"))
}
