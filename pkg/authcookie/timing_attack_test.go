package authcookie_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigestTimingAttackResistance(t *testing.T) {
	t.Parallel()

	jar := newTestJar(t)
	tok, err := jar.Issue(testExpiry, testData)
	require.NoError(t, err)

	valid := tok.String()
	at := strings.Index(valid, "&digest=") + len("&digest=")
	digest := tok.Digest()
	prefix := valid[:at]

	flip := func(i int) string {
		b := []byte(digest)
		if b[i] == '0' {
			b[i] = '1'
		} else {
			b[i] = '0'
		}
		return string(b)
	}

	testCases := []struct {
		name   string
		digest string
	}{
		{"first_byte_wrong", flip(0)},
		{"middle_byte_wrong", flip(len(digest) / 2)},
		{"last_byte_wrong", flip(len(digest) - 1)},
		{"completely_wrong", strings.Repeat("0", len(digest))},
	}

	const iterations = 200
	averages := make(map[string]time.Duration)

	for _, tc := range testCases {
		raw := prefix + tc.digest + `"`

		var total time.Duration
		for range iterations {
			start := time.Now()
			ok := jar.IsValidString(raw)
			total += time.Since(start)

			assert.False(t, ok)
		}
		averages[tc.name] = total / iterations
	}

	var maxAverage, minAverage time.Duration
	for name, avg := range averages {
		t.Logf("%s average timing: %v", name, avg)
		if maxAverage == 0 || avg > maxAverage {
			maxAverage = avg
		}
		if minAverage == 0 || avg < minAverage {
			minAverage = avg
		}
	}

	if maxAverage > 0 && minAverage > 0 {
		ratio := float64(maxAverage) / float64(minAverage)
		if ratio > 3.0 {
			t.Logf("WARNING: Timing variance ratio %.2f may indicate timing attack vulnerability", ratio)
		}
	}
}
