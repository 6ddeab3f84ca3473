package synthesizer

import (
	"fmt"
	"strings"
)

const notesPromptTemplate = `You are an expert study guide creator. Create comprehensive, well-organized study notes from the following lecture material.

Format the notes with:
- Clear section headings
- Key concepts highlighted
- Main points as bullet points
- Important definitions and explanations

Lecture Transcript:
%s

%s

Generate clear, concise, and comprehensive study notes suitable for a student studying this lecture.`

const flashcardsPromptTemplate = `Create %d flashcards for studying this lecture material.

Format your response as a JSON array with this structure:
[
    {"question": "What is...", "answer": "Definition and explanation...", "difficulty": "easy"},
    {"question": "How does...", "answer": "...", "difficulty": "medium"}
]

Include a mix of difficulty levels (easy, medium, hard).
Ensure questions test understanding, not just memorization.

Lecture Transcript:
%s

%s

Generate exactly %d flashcards as a valid JSON array only, no other text.`

const quizPromptTemplate = `Create %d multiple-choice quiz questions from this lecture material.

Format your response ONLY as a valid JSON array, nothing else. No markdown, no explanation before or after.

[
    {
        "question": "Which of the following is...",
        "options": {"A": "Option 1", "B": "Option 2", "C": "Option 3", "D": "Option 4"},
        "correct_answer": "B",
        "explanation": "The correct answer is B because..."
    }
]

Requirements:
- Each question must have exactly 4 options with keys A, B, C, D
- correct_answer must be a single letter: A, B, C, or D
- Include clear explanations
- Return ONLY the JSON array, no other text or formatting

Lecture Transcript:
%s

%s`

func notesPrompt(transcript, slidesContent string) string {
	return fmt.Sprintf(notesPromptTemplate, transcript, slidesSection(slidesContent))
}

func flashcardsPrompt(transcript, slidesContent string, count int) string {
	return fmt.Sprintf(flashcardsPromptTemplate, count, transcript, slidesSection(slidesContent), count)
}

func quizPrompt(transcript, slidesContent string, count, transcriptLimit, slidesLimit int) string {
	var slidesPart string
	if slidesContent != "" {
		slidesPart = "Slides:" + truncate(slidesContent, slidesLimit)
	}
	return fmt.Sprintf(quizPromptTemplate, count, truncate(transcript, transcriptLimit), slidesPart)
}

func slidesSection(slidesContent string) string {
	if strings.TrimSpace(slidesContent) == "" {
		return ""
	}
	return "Additional Materials (Slides/PDF):" + slidesContent
}
