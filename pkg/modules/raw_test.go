package modules

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExamRecordUnmarshal(t *testing.T) {
	data := []byte(`{
		"Date": "26/10/2016 (Wednesday)",
		"Time": "1:00 PM",
		"Duration": "2 hrs",
		"Venue": "MPSH 1",
		"": "*"
	}`)

	var exam ExamRecord
	require.NoError(t, json.Unmarshal(data, &exam))

	assert.Equal(t, "26/10/2016 (Wednesday)", exam.Date)
	assert.Equal(t, "1:00 PM", exam.Time)
	assert.Equal(t, "2 hrs", exam.Duration)
	assert.Equal(t, "MPSH 1", exam.Venue)
	assert.Equal(t, "*", exam.Marker, "the unnamed column carries the open-book marker")
}

func TestExamRecordUnmarshalNoMarker(t *testing.T) {
	var exam ExamRecord
	require.NoError(t, json.Unmarshal([]byte(`{"Date": "07/05/2015 ", "Time": "9:00 AM"}`), &exam))

	assert.Equal(t, "07/05/2015 ", exam.Date)
	assert.Empty(t, exam.Marker)
}

func TestRawRecordIVLEPresence(t *testing.T) {
	var absent RawRecord
	require.NoError(t, json.Unmarshal([]byte(`{}`), &absent))
	assert.Nil(t, absent.IVLE)

	var empty RawRecord
	require.NoError(t, json.Unmarshal([]byte(`{"IVLE": []}`), &empty))
	require.NotNil(t, empty.IVLE, "a present-but-empty feed is distinct from an absent one")
	assert.Empty(t, *empty.IVLE)

	var null RawRecord
	require.NoError(t, json.Unmarshal([]byte(`{"IVLE": null}`), &null))
	assert.Nil(t, null.IVLE)
}

func TestModuleDepartmentAlwaysSerializes(t *testing.T) {
	data, err := json.Marshal(Module{ModuleCode: "CS1010"})
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Department"`)
	assert.NotContains(t, string(data), "ModuleTitle")
}
