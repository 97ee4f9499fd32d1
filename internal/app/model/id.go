package model

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const idSuffixAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

// newRecordID builds a prefixed, time-derived public identifier such as
// "BUSMF2K81TQ4X7". The base36 millisecond timestamp keeps ids roughly
// monotonic; the short random suffix disambiguates same-millisecond
// writes. Once assigned the id never changes.
func newRecordID(prefix string) string {
	ts := strings.ToUpper(strconv.FormatInt(time.Now().UnixMilli(), 36))

	var b strings.Builder
	b.WriteString(prefix)
	b.WriteString(ts)
	for i := 0; i < 4; i++ {
		b.WriteByte(idSuffixAlphabet[rand.Intn(len(idSuffixAlphabet))])
	}
	return b.String()
}
