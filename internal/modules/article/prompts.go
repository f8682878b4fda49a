package article

import "fmt"

const (
	// System turn: writer persona, fixed output language.
	contentSystemPrompt = "Та бол cloud технологийн мэргэжлийн бичээч. Монгол хэлээр бичнэ."

	contentPromptTemplate = `
Та бол cloud технологийн мэргэжлийн бичээч. Дараах сэдэвтэй холбоотой сонирхолтой,
сүүлийн үеийн мэдээлэл агуулсан нийтлэл бичнэ үү:

Сэдэв: %s

Нийтлэл нь дараах бүтэцтэй байх ёстой:
1. Гоо үзэмжтэй, сонирхолтой гарчиг
2. 3-4 догол мөрөөс бүрдсэн үндсэн агуулга
3. Cloud технологийн практик жишээнүүд
4. Сүүлийн үеийн хөгжлийн мэдээлэл
5. Ирээдүйн чиглэлүүд

Хариултыг дараах JSON форматтай болгоно уу:
{
  "title": "Гарчиг",
  "content": "Бүтэн агуулга",
  "tags": ["tag1", "tag2", "tag3"],
  "imageDescription": "Зургийн тайлбар"
}
`

	// fallbackTitleSuffix completes the degraded-record title.
	fallbackTitleSuffix = " - Cloud технологийн шийдлүүд"
)

func buildContentPrompt(topic string) (systemPrompt string, prompt string) {
	return contentSystemPrompt, fmt.Sprintf(contentPromptTemplate, topic)
}

// defaultTags is the fixed 3-tag set used whenever structured extraction
// fails or the parsed object carries no tags.
func defaultTags(topic string) []string {
	return []string{topic, "Cloud", "Technology"}
}
