package heart

// Status values derived from a reading.
const (
	StatusNormal   = "Normal"
	StatusAbnormal = "Abnormal"
)

// Condition labels returned alongside the status.
const (
	KondisiBradycardia = "Bradycardia - low heart rate (<60 BPM)"
	KondisiTachycardia = "Tachycardia - high heart rate (>100 BPM)"
	KondisiNormal      = "Heart rate within normal range (60-100 BPM)"
)

// Classify maps a BPM value to its status and condition label.
// The normal band is inclusive: 60 and 100 both classify Normal.
func Classify(bpm int) (status, kondisi string) {
	switch {
	case bpm < 60:
		return StatusAbnormal, KondisiBradycardia
	case bpm > 100:
		return StatusAbnormal, KondisiTachycardia
	default:
		return StatusNormal, KondisiNormal
	}
}
