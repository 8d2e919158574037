package credential

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateOTP_SixDigitRange(t *testing.T) {
	for i := 0; i < 500; i++ {
		otp := GenerateOTP()
		assert.Len(t, otp, 6)

		n, err := strconv.Atoi(otp)
		assert.NoError(t, err)
		assert.GreaterOrEqual(t, n, 100000)
		assert.LessOrEqual(t, n, 999999)
	}
}

func TestHashAndCompare(t *testing.T) {
	hash, err := Hash("hunter22")
	assert.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	assert.True(t, Compare(hash, "hunter22"))
	assert.False(t, Compare(hash, "hunter23"))
	assert.False(t, Compare("not-a-hash", "hunter22"))
}
