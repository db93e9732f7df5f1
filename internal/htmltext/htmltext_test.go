package htmltext

import "testing"

func TestStrip(t *testing.T) {
	cases := []struct {
		name string
		html string
		want string
	}{
		{
			"plain text untouched",
			"Entry-level role, training provided",
			"Entry-level role, training provided",
		},
		{
			"tags removed",
			"<p>Entry-level role.</p><p>Training provided.</p>",
			"Entry-level role. Training provided.",
		},
		{
			"script and style dropped",
			"<style>p{}</style><p>0-2 years</p><script>track()</script>",
			"0-2 years",
		},
		{
			"lists keep word boundaries",
			"<ul><li>entry level</li><li>internship welcome</li></ul>",
			"entry level internship welcome",
		},
		{
			"whitespace collapsed",
			"<div>up to\n\t 2   years</div>",
			"up to 2 years",
		},
		{
			"empty input",
			"",
			"",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Strip(tc.html)
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}
