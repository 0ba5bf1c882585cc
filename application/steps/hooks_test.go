package steps

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArtifactName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Successful login reaches the dashboard", "successful-login-reaches-the-dashboard"},
		{"URL: /login?next=%2Fdashboard", "url-loginnext2fdashboard"},
		{"  spaced  ", "spaced"},
		{"!!!", "scenario"},
		{"", "scenario"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, artifactName(tc.in), "input %q", tc.in)
	}
}
