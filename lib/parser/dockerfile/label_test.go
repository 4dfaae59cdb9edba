package dockerfile

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewLabelDirective(t *testing.T) {
	tests := []struct {
		desc    string
		succeed bool
		input   string
		labels  LabelRecord
	}{
		{"single", true, "label k1=v1", LabelRecord{"k1": "v1"}},
		{"quotes", true, `label k1="v1a v1b"`, LabelRecord{"k1": "v1a v1b"}},
		{"mutiple", true, "label k1=v1 k2=v2", LabelRecord{"k1": "v1", "k2": "v2"}},
		{"empty value", true, `LABEL k1= k2=""`, LabelRecord{"k1": "", "k2": ""}},
		{"quoted keys", true, `LABEL "com.example.vendor"="ACME Incorporated" "com.example.label-with-value"="foo"`,
			LabelRecord{"com.example.vendor": "ACME Incorporated", "com.example.label-with-value": "foo"}},
		{"quoted key empty value", true, `LABEL "com.example.empty"=""`, LabelRecord{"com.example.empty": ""}},
		{"legacy pair", true, "LABEL Description This image is used", LabelRecord{"Description": "This image is used"}},
		{"legacy quoted", true, `LABEL Vendor "ACME Inc"`, LabelRecord{"Vendor": "ACME Inc"}},
		{"legacy missing value", false, "LABEL k1", nil},
		{"bad pair", false, `LABEL k1="v1`, nil},
		{"missing args", false, "LABEL", nil},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			require := require.New(t)
			directive, err := newDirective(test.input, 1)
			if test.succeed {
				require.NoError(err)
				label, ok := directive.(*LabelDirective)
				require.True(ok)
				require.Equal(test.labels, label.Labels)
			} else {
				require.Error(err)
			}
		})
	}
}

func TestLabelQuotedKeys(t *testing.T) {
	require := require.New(t)

	result, err := ParseFile("FROM ubuntu\nLABEL \"com.example.vendor\"=\"ACME Incorporated\"\n")
	require.NoError(err)
	require.Empty(result.Diagnostics)
	require.Equal([]LabelRecord{{"com.example.vendor": "ACME Incorporated"}}, result.Document.Label)
}
