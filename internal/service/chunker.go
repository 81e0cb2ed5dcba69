package service

import "strings"

// DefaultChunkWords is the chunk size used when none is configured.
const DefaultChunkWords = 1200

// ChunkText splits text into successive chunks of maxWords words, the last
// one possibly shorter. Words are split on any whitespace and rejoined with
// single spaces; sentence boundaries are not respected. Empty text yields no
// chunks.
func ChunkText(text string, maxWords int) []string {
	if maxWords <= 0 {
		maxWords = DefaultChunkWords
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	chunks := make([]string, 0, (len(words)+maxWords-1)/maxWords)
	for start := 0; start < len(words); start += maxWords {
		end := min(start+maxWords, len(words))
		chunks = append(chunks, strings.Join(words[start:end], " "))
	}
	return chunks
}

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.Fields(text))
}
