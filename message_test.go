package cadence

import (
	"github.com/jd3nn1s/cadence/haptic"
	"github.com/jd3nn1s/cadence/mailbox"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestDecodeMessage(t *testing.T) {
	msg, err := DecodeMessage(mailbox.Dict{}.
		Add(mailbox.NewCString(KeySpeed, "24.3")).
		Add(mailbox.NewInt32(KeyCadence, 90)).
		Add(mailbox.NewInt8(KeyVibePattern, 3)).
		Add(mailbox.NewInt32(42, 1)))
	require.NoError(t, err)
	require.NotNil(t, msg.Speed)
	require.NotNil(t, msg.Cadence)
	assert.Equal(t, "24.3", *msg.Speed)
	assert.Equal(t, int32(90), *msg.Cadence)
	assert.True(t, msg.HasZone)
	assert.Equal(t, ZoneGood, msg.Zone)

	msg, err = DecodeMessage(mailbox.Dict{})
	require.NoError(t, err)
	assert.True(t, msg.Empty())

	msg, err = DecodeMessage(mailbox.Dict{}.Add(mailbox.NewInt8(KeyVibePattern, 9)))
	require.NoError(t, err)
	assert.True(t, msg.HasZone)
	assert.Equal(t, ZoneUnknown, msg.Zone)
}

func TestDecodeMessageWrongTypes(t *testing.T) {
	for _, d := range []mailbox.Dict{
		mailbox.Dict{}.Add(mailbox.NewInt32(KeySpeed, 1)),
		mailbox.Dict{}.Add(mailbox.NewCString(KeyCadence, "90")),
		mailbox.Dict{}.Add(mailbox.NewCString(KeyVibePattern, "3")),
	} {
		_, err := DecodeMessage(d)
		assert.Error(t, err)
	}
}

func TestMessageDict(t *testing.T) {
	msg := Message{}.Merge(SpeedMessage("12.0")).Merge(CadenceMessage(64)).Merge(ZoneMessage(ZoneLow))
	decoded, err := DecodeMessage(msg.Dict())
	require.NoError(t, err)
	assert.Equal(t, msg, decoded)
	assert.Empty(t, Message{}.Dict())
}

func TestMessageMerge(t *testing.T) {
	msg := SpeedMessage("1.0").Merge(SpeedMessage("2.0"))
	assert.Equal(t, "2.0", *msg.Speed)
	assert.Nil(t, msg.Cadence)
	assert.False(t, msg.HasZone)
	assert.False(t, msg.Empty())
}

func TestDecodeZone(t *testing.T) {
	assert.Equal(t, ZoneLow, DecodeZone(1))
	assert.Equal(t, ZoneHigh, DecodeZone(2))
	assert.Equal(t, ZoneGood, DecodeZone(3))
	for _, code := range []int8{0, 4, -128, 127} {
		assert.Equal(t, ZoneUnknown, DecodeZone(code))
	}
	for _, z := range []Zone{ZoneLow, ZoneGood, ZoneHigh} {
		assert.Equal(t, z, DecodeZone(z.Code()), z.String())
	}
	assert.Equal(t, int8(0), ZoneUnknown.Code())
	assert.Equal(t, "unknown", ZoneUnknown.String())
}

func TestZoneFeedback(t *testing.T) {
	_, ok := ZoneUnknown.Feedback()
	assert.False(t, ok)

	fb, ok := ZoneLow.Feedback()
	require.True(t, ok)
	assert.Equal(t, ColourDarkCandyAppleRed, fb.Colour)
	assert.Equal(t, []uint32{100, 100, 100, 100, 400}, fb.Pattern.Milliseconds())

	// callers cannot alter the fixed table
	fb.Pattern[0] = 0
	fb, _ = ZoneLow.Feedback()
	assert.Equal(t, haptic.Milliseconds(100, 100, 100, 100, 400), fb.Pattern)
}

func TestFormatCadence(t *testing.T) {
	tests := []struct {
		rpm     int32
		text    string
		clamped bool
	}{
		{0, "0", false},
		{7, "7", false},
		{85, "85", false},
		{142, "142", false},
		{999, "999", false},
		{1000, "999", true},
		{2147483647, "999", true},
		{-1, "0", true},
	}
	for _, tt := range tests {
		text, clamped := FormatCadence(tt.rpm)
		assert.Equal(t, tt.text, text, "rpm %d", tt.rpm)
		assert.Equal(t, tt.clamped, clamped, "rpm %d", tt.rpm)
		assert.True(t, len(text) <= 3)
	}
}
