package tui

import "testing"

func TestThreshold_Battery(t *testing.T) {
	cases := []struct {
		pct      int
		charging bool
		want     severity
	}{
		{100, false, severityNormal},
		{21, false, severityNormal},
		{20, false, severityWarning}, // boundary: <=20 triggers warning
		{11, false, severityWarning},
		{10, false, severityCritical}, // boundary: <=10 triggers critical
		{0, false, severityCritical},
		{5, true, severityNormal},
	}
	for _, tc := range cases {
		got := batterySeverity(tc.pct, tc.charging)
		if got != tc.want {
			t.Errorf("batterySeverity(%v, %v) = %v, want %v", tc.pct, tc.charging, got, tc.want)
		}
	}
}

func TestThreshold_Stale(t *testing.T) {
	cases := []struct {
		age      int
		interval int
		want     severity
	}{
		{0, 30, severityNormal},
		{60, 30, severityNormal}, // boundary: >2 intervals triggers warning
		{61, 30, severityWarning},
		{120, 30, severityWarning}, // boundary: >4 intervals triggers critical
		{121, 30, severityCritical},
		{500, 0, severityNormal},
	}
	for _, tc := range cases {
		got := staleSeverity(tc.age, tc.interval)
		if got != tc.want {
			t.Errorf("staleSeverity(%v, %v) = %v, want %v", tc.age, tc.interval, got, tc.want)
		}
	}
}

func TestSeverityToStyle(t *testing.T) {
	if severityToStyle(severityCritical).GetForeground() != colorRed {
		t.Error("critical should render red")
	}
	if severityToStyle(severityWarning).GetForeground() != colorYellow {
		t.Error("warning should render yellow")
	}
	if severityToStyle(severityNormal).GetForeground() != colorGreen {
		t.Error("normal should render green")
	}
}
