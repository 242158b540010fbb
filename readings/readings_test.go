package readings_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/thermofit/readings"
)

const sample = `61.0 63.0 50.0 58.0
80.0 81.0 68.0 77.0

62.0 63.0 52.0 60.0
`

func TestParse(t *testing.T) {
	rs, err := readings.Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, rs, 3, "blank lines are skipped")

	assert.Equal(t, []float64{0, 30, 60}, []float64{rs[0].Time, rs[1].Time, rs[2].Time})
	assert.Equal(t, []float64{80, 81, 68, 77}, rs[1].Temps)
}

func TestParse_StepSize(t *testing.T) {
	rs, err := readings.Parse(strings.NewReader("1\n2\n3\n"), readings.WithStepSize(2.5))
	require.NoError(t, err)
	assert.Equal(t, 5.0, rs[2].Time)
}

func TestParse_NilOption(t *testing.T) {
	rs, err := readings.Parse(strings.NewReader("1\n2\n"), nil, readings.WithStepSize(10), nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, rs[1].Time)
}

func TestParse_Malformed(t *testing.T) {
	for name, in := range map[string]string{
		"ragged":  "1 2\n3\n",
		"garbage": "1 2\n3 abc\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := readings.Parse(strings.NewReader(in))
			assert.ErrorIs(t, err, readings.ErrMalformed)
			assert.Contains(t, err.Error(), "line 2")
		})
	}
}

func TestParse_Empty(t *testing.T) {
	_, err := readings.Parse(strings.NewReader("\n  \n"))
	assert.ErrorIs(t, err, readings.ErrEmpty)
}

func TestWithStepSize_Panics(t *testing.T) {
	assert.Panics(t, func() { readings.WithStepSize(0) })
	assert.Panics(t, func() { readings.WithStepSize(-30) })
}

func TestChannels(t *testing.T) {
	rs, err := readings.Parse(strings.NewReader(sample))
	require.NoError(t, err)

	times, channels, err := readings.Channels(rs)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 30, 60}, times)
	require.Len(t, channels, 4)
	assert.Equal(t, []float64{61, 80, 62}, channels[0])
	assert.Equal(t, []float64{58, 77, 60}, channels[3])

	_, _, err = readings.Channels([]readings.Reading{{Temps: []float64{1, 2}}, {Temps: []float64{1}}})
	assert.ErrorIs(t, err, readings.ErrMalformed)

	_, _, err = readings.Channels(nil)
	assert.ErrorIs(t, err, readings.ErrEmpty)
}

func TestChannelName(t *testing.T) {
	assert.Equal(t, "core-00", readings.ChannelName(0))
	assert.Equal(t, "core-13", readings.ChannelName(13))
}
