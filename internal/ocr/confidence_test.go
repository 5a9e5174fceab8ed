package ocr

import "testing"

func TestHeuristicConfidenceSignals(t *testing.T) {
	flyer := "Spring League\nSaturday, March 15, 2025\nTime: 10:00 AM\nRegister at https://example.com/signup\nCall 555-123-4567"
	noise := "xq zzv"

	hi := heuristicConfidence(flyer)
	lo := heuristicConfidence(noise)
	if hi <= lo {
		t.Errorf("flyer text %v should score above noise %v", hi, lo)
	}
	if lo != 0.2 {
		t.Errorf("noise should sit at base, got %v", lo)
	}
	if hi > 1.0 {
		t.Errorf("confidence over 1.0: %v", hi)
	}
}

func TestHeuristicSignalDetectors(t *testing.T) {
	if !hasDatePattern("march 15") {
		t.Error("month name not detected")
	}
	if !hasDatePattern("3/15/2025") {
		t.Error("numeric date not detected")
	}
	if !hasTimePattern("10:00 am") {
		t.Error("clock not detected")
	}
	if !hasContactPattern("call 555-123-4567") {
		t.Error("phone not detected")
	}
	if !hasContactPattern("visit www.example.com/reg") {
		t.Error("url not detected")
	}
	if hasTimePattern("score was 3 to 2") {
		t.Error("false positive clock")
	}
}
