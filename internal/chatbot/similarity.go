package chatbot

// similarityRating 은 두 문자열의 rune 바이그램 Dice 계수를 [0,1] 범위로 반환한다.
// 동일 문자열은 1.0, 공통 바이그램이 없으면 0이다.
func similarityRating(first, second string) float64 {
	if first == second {
		return 1
	}

	a := []rune(first)
	b := []rune(second)
	if len(a) < 2 || len(b) < 2 {
		return 0
	}

	bigrams := make(map[string]int, len(a)-1)
	for i := 0; i < len(a)-1; i++ {
		bigrams[string(a[i:i+2])]++
	}

	matches := 0
	for i := 0; i < len(b)-1; i++ {
		key := string(b[i : i+2])
		if bigrams[key] > 0 {
			bigrams[key]--
			matches++
		}
	}

	return 2 * float64(matches) / float64(len(a)+len(b)-2)
}

// bestMatch 는 후보 목록에서 가장 유사한 문자열과 그 점수를 반환한다.
func bestMatch(query string, candidates []string) (string, float64) {
	best := ""
	bestRating := 0.0
	for i, candidate := range candidates {
		rating := similarityRating(query, candidate)
		if i == 0 || rating > bestRating {
			best = candidate
			bestRating = rating
		}
	}
	return best, bestRating
}
