package meitav

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDetectProvider(t *testing.T) {
	assert.Equal(t, ProviderName, DetectProvider(`מיטב דש גמל ופנסיה בע"מ`))
	assert.Empty(t, DetectProvider("קופת גמל אחרת"))
	assert.Empty(t, DetectProvider(""))
}

func TestExtractReportDate(t *testing.T) {
	date, ok := ExtractReportDate("שם העמית: ישראל ישראלי תאריך הדוח: 15.02.2025")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2025, time.February, 15, 0, 0, 0, 0, time.UTC), date)

	// pattern present but not a calendar date
	_, ok = ExtractReportDate("תאריך הדוח: 32.13.2025")
	assert.False(t, ok)

	_, ok = ExtractReportDate("אין כאן תאריך")
	assert.False(t, ok)
}

func TestExtractMemberName(t *testing.T) {
	name, ok := ExtractMemberName("שם העמית: ישראל ישראלי תאריך הדוח: 15.02.2025")
	assert.True(t, ok)
	assert.Equal(t, "ישראל ישראלי", name)

	name, ok = ExtractMemberName("שם העמית: ישראל ישראלי\nשורה נוספת")
	assert.True(t, ok)
	assert.Equal(t, "ישראל ישראלי", name)

	name, ok = ExtractMemberName("שם העמית: ישראל ישראלי מספר עמית: 12345")
	assert.True(t, ok)
	assert.Equal(t, "ישראל ישראלי", name)

	_, ok = ExtractMemberName("דוח ללא שם")
	assert.False(t, ok)
}
