// Package align computes longest-common-subsequence alignments between
// ordered sequences. The alignment drives the minimal insert/delete
// walks over live sequences and text.
package align

// Align returns the positions, in left and right respectively, of a
// longest common subsequence under eq. Both returned slices are
// strictly increasing and of equal length.
//
// The classic O(|left|*|right|) dynamic-programming table is walked
// back from the far corner; when the up and left neighbors tie, the
// right sequence is consumed first, so the alignment is deterministic.
// Callers diffing unbounded inputs need their own size guard; quadratic
// cost is a scaling limit here, not a correctness one.
func Align[T any](left, right []T, eq func(a, b T) bool) (leftIdx, rightIdx []int) {
	n, m := len(left), len(right)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			if eq(left[i-1], right[j-1]) {
				dp[i][j] = dp[i-1][j-1] + 1
			} else if dp[i-1][j] > dp[i][j-1] {
				dp[i][j] = dp[i-1][j]
			} else {
				dp[i][j] = dp[i][j-1]
			}
		}
	}
	i, j := n, m
	length := dp[n][m]
	leftIdx = make([]int, length)
	rightIdx = make([]int, length)
	for i > 0 && j > 0 {
		if eq(left[i-1], right[j-1]) && dp[i][j] == dp[i-1][j-1]+1 {
			length--
			leftIdx[length] = i - 1
			rightIdx[length] = j - 1
			i--
			j--
			continue
		}
		if dp[i][j-1] >= dp[i-1][j] {
			j--
		} else {
			i--
		}
	}
	return leftIdx, rightIdx
}

// Runes aligns two strings rune-wise.
func Runes(a, b string) (leftIdx, rightIdx []int) {
	return Align([]rune(a), []rune(b), func(x, y rune) bool { return x == y })
}
