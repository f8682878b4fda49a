package image

import (
	"fmt"
	"strings"
)

const imagePromptTemplate = `Modern, professional illustration of %s in cloud computing context.
The image should represent: %s
Related technologies: %s

Style: Clean, minimalist design with blue and white color scheme.
Suitable for technology blog or professional presentation.
High quality, detailed but not cluttered.`

// buildImagePrompt composes the fixed-template prompt. Tags fall back to the
// topic alone when absent.
func buildImagePrompt(title, topic string, tags []string) string {
	related := topic
	if len(tags) > 0 {
		related = strings.Join(tags, ", ")
	}
	return fmt.Sprintf(imagePromptTemplate, topic, title, related)
}
