package util

import (
	"fmt"
	"os"
	"sort"
	"time"

	"golang.org/x/exp/constraints"
)

func SortedKeys[A constraints.Ordered, B any](m map[A]B) []A {
	keys := make([]A, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i] < keys[j]
	})
	return keys
}

// FormatTime renders a duration as MM:SS, truncating fractional seconds.
func FormatTime(d time.Duration) string {
	totalSeconds := int64(d / time.Second)
	return fmt.Sprintf("%02d:%02d", totalSeconds/60, totalSeconds%60)
}

func PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
