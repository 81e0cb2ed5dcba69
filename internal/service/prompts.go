package service

import "fmt"

const structuredPromptTemplate = `You are an AI research paper summarization assistant.

Perform these tasks in a clean academic format:

### ABSTRACT-LEVEL SUMMARY
- Provide a concise abstract-like summary (6-8 sentences).

### 10 KEY POINTS
- Provide exactly 10 bullet points covering objectives, methods, results, implications.

### KEYWORDS
- Extract 8-12 important technical keywords.

### TECHNICAL DIFFICULTY (1-10)
- Rate the difficulty based on mathematical complexity, domain expertise required, and technical vocabulary.

### SENTIMENT
- Identify sentiment: neutral, critical, or positive.
- Include 1 sentence explaining why.

The output must STRICTLY follow this formatting:

ABSTRACT-LEVEL SUMMARY:
<paragraph>

10 KEY POINTS:
- point1
- point2

KEYWORDS:
- keyword1
- keyword2

TECHNICAL DIFFICULTY:
<number>

SENTIMENT:
<sentiment>
<justification>

---------------------
%s:
%s
`

const chunkPromptTemplate = `Summarize the following section of a research paper in a few factual sentences.
Keep concrete methods, datasets, numbers and findings. Do not add headings or commentary.

Section %d of %d:
%s
`

// StructuredPrompt asks for the five-section summary of the whole paper.
func StructuredPrompt(paperText string) string {
	return fmt.Sprintf(structuredPromptTemplate, "Paper Content", paperText)
}

// CombinedPrompt asks for the five-section summary built from per-chunk
// summaries.
func CombinedPrompt(chunkSummaries string) string {
	return fmt.Sprintf(structuredPromptTemplate, "Section Summaries of the Paper", chunkSummaries)
}

// ChunkPrompt asks for a short factual summary of one chunk.
func ChunkPrompt(index, total int, chunk string) string {
	return fmt.Sprintf(chunkPromptTemplate, index, total, chunk)
}
