package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractPlate(t *testing.T) {
	tests := map[string]struct {
		text string
		want string
	}{
		"plain plate": {
			text: "ABC123",
			want: "ABC123",
		},
		"plate with dash": {
			text: "ABC-123",
			want: "ABC123",
		},
		"lowercase input": {
			text: "abc123",
			want: "ABC123",
		},
		"registration card noise": {
			text: "REPUBLIC OF\nVEHICLE REGISTRATION\nPLATE\nGHT482\nEXPIRES 2027",
			want: "GHT482",
		},
		"prefers longer candidate": {
			text: "AB12\nWXYZ9876",
			want: "WXYZ9876",
		},
		"letters only is not a plate": {
			text: "TOYOTA PRADO",
			want: "",
		},
		"digits only is not a plate": {
			text: "2018 84500",
			want: "",
		},
		"surrounding punctuation stripped": {
			text: "plate: [KJU-309].",
			want: "KJU309",
		},
		"empty input": {
			text: "",
			want: "",
		},
		"too long token ignored": {
			text: "1HGBH41JXMN109186", // VIN, not a plate
			want: "",
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractPlate(tc.text))
		})
	}
}
