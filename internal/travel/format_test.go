package travel

import "testing"

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{3600, "1時間0分"},
		{9000, "2時間30分"},
		{2700, "45分"},
		{59, "0分"},
		{0, "0分"},
	}

	for _, c := range cases {
		if got := FormatDuration(c.seconds); got != c.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}

func TestFormatDistance(t *testing.T) {
	cases := []struct {
		meters int
		want   string
	}{
		{2000, "2.0 km"},
		{1050, "1.1 km"},
		{1000, "1.0 km"},
		{999, "999 m"},
		{0, "0 m"},
	}

	for _, c := range cases {
		if got := FormatDistance(c.meters); got != c.want {
			t.Errorf("FormatDistance(%d) = %q, want %q", c.meters, got, c.want)
		}
	}
}
