package estimate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractRanges(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   Ranges
		wantOK bool
	}{
		{
			name:   "separators and plain digits",
			text:   "Low Estimate Range: $1,000 - $2,000\nHigh Estimate Range: $3000 - $4000\nCost Breakdown: ...",
			want:   Ranges{LowStart: 1000, LowEnd: 2000, HighStart: 3000, HighEnd: 4000},
			wantOK: true,
		},
		{
			name:   "thousands separator",
			text:   "Low Estimate Range: $12,345 - $13,000\nHigh Estimate Range: $20,000 - $25,500",
			want:   Ranges{LowStart: 12345, LowEnd: 13000, HighStart: 20000, HighEnd: 25500},
			wantOK: true,
		},
		{
			name:   "lower case labels",
			text:   "low estimate range: $800 - $900\nhigh estimate range: $1,100 - $1,400",
			want:   Ranges{LowStart: 800, LowEnd: 900, HighStart: 1100, HighEnd: 1400},
			wantOK: true,
		},
		{
			name:   "no colon, no dollar, tight hyphen",
			text:   "LOW ESTIMATE RANGE 500-700 and HIGH ESTIMATE RANGE 900-1200",
			want:   Ranges{LowStart: 500, LowEnd: 700, HighStart: 900, HighEnd: 1200},
			wantOK: true,
		},
		{
			name:   "millions",
			text:   "Low Estimate Range: $1,234,567 - $2,000,000\nHigh Estimate Range: $3,000,000 - $4,000,000",
			want:   Ranges{LowStart: 1234567, LowEnd: 2000000, HighStart: 3000000, HighEnd: 4000000},
			wantOK: true,
		},
		{
			name:   "no-break space after colon",
			text:   "Low Estimate Range:\u00a0$1,000 - $2,000\nHigh Estimate Range:\u00a0$3,000 - $4,000",
			want:   Ranges{LowStart: 1000, LowEnd: 2000, HighStart: 3000, HighEnd: 4000},
			wantOK: true,
		},
		{
			name:   "narrow no-break space around hyphen",
			text:   "Low Estimate Range: $1,000\u202f-\u202f$2,000\nHigh Estimate Range: $3,000\u2009-\u2009$4,000",
			want:   Ranges{LowStart: 1000, LowEnd: 2000, HighStart: 3000, HighEnd: 4000},
			wantOK: true,
		},
		{
			name:   "vertical tab and ideographic space",
			text:   "Low Estimate Range:\v$1,000 - $2,000\nHigh Estimate Range:\u3000$3,000 -\u2028$4,000",
			want:   Ranges{LowStart: 1000, LowEnd: 2000, HighStart: 3000, HighEnd: 4000},
			wantOK: true,
		},
		{
			name:   "zero width space is not whitespace",
			text:   "Low Estimate Range:\u200b$1,000 - $2,000\nHigh Estimate Range: $3,000 - $4,000",
			wantOK: false,
		},
		{
			name:   "markdown bold between label and amount",
			text:   "**Low Estimate Range:** $1,500 - $2,200\n**High Estimate Range:** $3,100 - $4,800",
			wantOK: false,
		},
		{
			name:   "first occurrence wins",
			text:   "High Estimate Range: $10 - $20\nLow Estimate Range: $1 - $2\nHigh Estimate Range: $30 - $40",
			want:   Ranges{LowStart: 1, LowEnd: 2, HighStart: 10, HighEnd: 20},
			wantOK: true,
		},
		{
			name:   "missing high range",
			text:   "Low Estimate Range: $1,000 - $2,000\nCost Breakdown: flights",
			wantOK: false,
		},
		{
			name:   "missing low range",
			text:   "High Estimate Range: $3000 - $4000",
			wantOK: false,
		},
		{
			name:   "en dash is not a hyphen",
			text:   "Low Estimate Range: $1,000 – $2,000\nHigh Estimate Range: $3000 – $4000",
			wantOK: false,
		},
		{
			name:   "number too large for int",
			text:   "Low Estimate Range: $99999999999999999999999 - $1\nHigh Estimate Range: $1 - $2",
			wantOK: false,
		},
		{
			name:   "empty text",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ExtractRanges(tt.text)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			} else {
				assert.Equal(t, Ranges{}, got)
			}
		})
	}
}
