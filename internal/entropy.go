package internal

import (
	"math"
	"strconv"
)

// floatSlack absorbs representation error so that exact results such as
// 3*log2(8) are not truncated to 8.99.
const floatSlack = 1e-9

// EntropyBits returns wordCount*log2(corpusSize) truncated toward zero at two
// decimal places. Working in the log domain avoids computing
// corpusSize^wordCount, which overflows float64 for realistic inputs.
func EntropyBits(corpusSize, wordCount int) float64 {
	if corpusSize <= 1 || wordCount <= 0 {
		return 0
	}
	bits := float64(wordCount) * math.Log2(float64(corpusSize))
	return math.Floor(bits*100+floatSlack) / 100
}

// FormatEntropy renders bits with exactly two decimals.
func FormatEntropy(bits float64) string {
	return strconv.FormatFloat(bits, 'f', 2, 64)
}
