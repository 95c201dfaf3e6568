package heart

import "testing"

func TestClassifyBoundaries(t *testing.T) {
	cases := []struct {
		bpm     int
		status  string
		kondisi string
	}{
		{59, StatusAbnormal, KondisiBradycardia},
		{60, StatusNormal, KondisiNormal},
		{100, StatusNormal, KondisiNormal},
		{101, StatusAbnormal, KondisiTachycardia},
	}
	for _, tc := range cases {
		status, kondisi := Classify(tc.bpm)
		if status != tc.status || kondisi != tc.kondisi {
			t.Fatalf("Classify(%d) = %q/%q, want %q/%q", tc.bpm, status, kondisi, tc.status, tc.kondisi)
		}
	}
}

func TestClassifyExtremes(t *testing.T) {
	if s, k := Classify(0); s != StatusAbnormal || k != KondisiBradycardia {
		t.Fatalf("Classify(0) = %q/%q", s, k)
	}
	if s, _ := Classify(-5); s != StatusAbnormal {
		t.Fatalf("negative bpm should classify abnormal, got %q", s)
	}
	if s, k := Classify(220); s != StatusAbnormal || k != KondisiTachycardia {
		t.Fatalf("Classify(220) = %q/%q", s, k)
	}
	if s, _ := Classify(72); s != StatusNormal {
		t.Fatalf("resting rate should classify normal, got %q", s)
	}
}
