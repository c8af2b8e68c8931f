package ai

import (
	"fmt"
	"strings"

	"github.com/maheshrc27/kolink/internal/i18n"
	"github.com/maheshrc27/kolink/internal/models"
)

// Prompt is a system instruction plus the user turn sent to the model.
type Prompt struct {
	System string
	User   string
}

var lengthMap = map[string]string{
	LengthShort:  "corto y conciso (alrededor de 50 palabras)",
	LengthMedium: "de longitud media (alrededor de 150 palabras)",
	LengthLong:   "detallado y largo (alrededor de 300 palabras)",
}

var emojiMap = map[string]string{
	EmojiNone:     "No utilices emojis.",
	EmojiSubtle:   "Usa 1 o 2 emojis de forma sutil y profesional.",
	EmojiModerate: "Usa entre 3 y 5 emojis para añadir personalidad y mejorar la legibilidad.",
}

var ctaMap = map[string]string{
	CTAQuestion: "Termina siempre con una pregunta directa a la audiencia.",
	CTADebate:   "Finaliza invitando a la audiencia a compartir su opinión o a debatir sobre el tema.",
	CTALink:     "Incluye un placeholder como `[enlace]` donde el usuario pueda añadir una URL.",
	CTANone:     "No incluyas una llamada a la acción explícita.",
}

var hashtagsMap = map[string]string{
	HashtagsBroad: "Incluye entre 3 y 5 hashtags populares y amplios relacionados con el tema.",
	HashtagsNiche: "Incluye entre 3 y 5 hashtags muy específicos y de nicho para llegar a una audiencia concreta.",
	HashtagsNone:  "No incluyas hashtags.",
}

const writingRules = `Considera siempre los siguientes puntos:
1. **Hook potente:** Comienza con una frase que capte la atención inmediatamente.
2. **Estructura clara:** Usa párrafos cortos, listas y saltos de línea para facilitar la lectura.
3. **Valor aportado:** Ofrece insights, consejos prácticos o perspectivas únicas.`

const postSystemInstruction = `Eres un experto en marketing de contenidos y redes sociales, especializado en crear posts virales para LinkedIn. Tu objetivo es escribir contenido que maximice el engagement, la visibilidad y siga las mejores prácticas de la plataforma.

` + writingRules + `

**IMPORTANTE:** Tu respuesta debe ser ÚNICAMENTE el texto del post para LinkedIn. No incluyas introducciones, saludos, explicaciones o frases como "Aquí tienes el post:". La respuesta debe empezar directamente con el contenido del post.`

const autopilotSystemInstruction = `Eres un estratega de contenido experto en LinkedIn y un asistente de redacción. Tu tarea es generar borradores de posts para LinkedIn que sean relevantes, atractivos y que sigan las mejores prácticas de la plataforma para maximizar el engagement.

Para cada post, ` + writingRules + `

**IMPORTANTE:** El contenido de cada post debe ser únicamente el texto para LinkedIn. No incluyas introducciones, saludos o explicaciones.`

const themesSystemInstruction = `Eres un analista de contenido experto en LinkedIn. Tu tarea es identificar los temas principales y recurrentes en un historial de posts de un usuario para entender su área de especialización y sus intereses.`

const enhanceSystemInstruction = `Eres un experto en "prompt engineering". Tu tarea es reescribir el siguiente prompt de usuario para que sea más claro, detallado y efectivo para una IA que genera posts de LinkedIn.
Mantén la intención original del usuario, pero enriquece el prompt con detalles que podrían mejorar el resultado.
Por ejemplo, si el usuario dice "post sobre IA", podrías convertirlo en "Escribe un post para LinkedIn sobre el impacto de la Inteligencia Artificial en el marketing digital, destacando 3 beneficios clave para pequeñas empresas y terminando con una pregunta para fomentar el debate".
El resultado debe ser únicamente el prompt mejorado, sin ninguna explicación o texto adicional.`

const defaultAudience = "una audiencia profesional general."

func identitySection(identity models.Identity, plural bool) string {
	target := "el post"
	if plural {
		target = "los posts"
	}
	return fmt.Sprintf(`**Identidad del Autor (TÚ):**
- **Nombre:** %s
- **Titular/Profesión:** %s
- **Biografía/Contexto:** %s
- **Instrucciones de Identidad por Defecto:** %s

Debes escribir %s desde la perspectiva de esta persona, usando su voz y contexto.`,
		identity.Name, identity.Occupation, identity.Bio, identity.CustomInstructions, target)
}

func inspirationSection(posts []models.InspirationPost, intro string) string {
	if len(posts) == 0 {
		return ""
	}
	examples := make([]string, 0, len(posts))
	for i, p := range posts {
		examples = append(examples, fmt.Sprintf("--- EJEMPLO %d ---\n%s\n--- FIN EJEMPLO %d ---", i+1, p.Content, i+1))
	}
	return "**Ejemplos de Posts Virales (Inspiración de Estilo):**\n" + intro + "\n\n" + strings.Join(examples, "\n\n") + "\n"
}

func bulletList(items []string) string {
	return "- " + strings.Join(items, "\n- ")
}

func audience(a AdvancedSettings) string {
	if strings.TrimSpace(a.Audience) == "" {
		return defaultAudience
	}
	return a.Audience
}

// KnowledgeBaseContent joins knowledge items into the block injected into prompts.
func KnowledgeBaseContent(items []models.KnowledgeItem) string {
	blocks := make([]string, 0, len(items))
	for _, item := range items {
		blocks = append(blocks, fmt.Sprintf("**%s**\n%s", item.Title, item.Content))
	}
	return strings.Join(blocks, "\n\n---\n\n")
}

func BuildPostPrompt(req PostRequest) Prompt {
	adv := req.Advanced.WithDefaults()

	sections := []string{
		fmt.Sprintf("**IDIOMA DE SALIDA:** Responde EXCLUSIVAMENTE en **%s**. No incluyas ninguna frase en otro idioma.", i18n.LanguageName(req.Language)),
		identitySection(req.Identity, false),
	}

	if s := inspirationSection(req.Inspiration, "Analiza los siguientes posts para entender el estilo, tono, formato, uso de emojis y estructura que el usuario prefiere. Aplica estos aprendizajes al generar el nuevo post."); s != "" {
		sections = append(sections, s)
	}
	if strings.TrimSpace(req.KnowledgeBase) != "" {
		sections = append(sections, "**Base de Conocimiento del Usuario (Contexto Clave):**\nUtiliza la siguiente información como contexto principal para dar forma al post. Esta información contiene datos sobre la marca, productos, estilo de comunicación o conocimientos específicos del usuario que deben reflejarse en el contenido.\n\n---\n"+req.KnowledgeBase+"\n---")
	}
	if len(req.BestPractices) > 0 {
		sections = append(sections, "**Mejores Prácticas a Seguir (Instrucciones Adicionales de Estructura y Estilo):**\nAdemás de todo lo anterior, aplica estrictamente las siguientes reglas al generar el post:\n"+bulletList(req.BestPractices))
	}

	custom := req.CustomInstructions
	if strings.TrimSpace(custom) == "" {
		custom = "Ninguna"
	}

	sections = append(sections,
		fmt.Sprintf("**Instrucción Específica para este Post:**\n\"%s\"", req.Prompt),
		fmt.Sprintf("**Parámetros de Personalización:**\n- **Tono:** %s\n- **Tipo de Post:** %s\n- **Instrucciones Adicionales para este post:** %s",
			req.Tone, req.PostType, custom),
		fmt.Sprintf("**Parámetros de Generación Avanzados:**\n- **Público Objetivo:** %s\n- **Longitud del Post:** Debe ser %s.\n- **Uso de Emojis:** %s\n- **Llamada a la Acción (CTA):** %s\n- **Estrategia de Hashtags:** %s",
			audience(adv), lengthMap[adv.Length], emojiMap[adv.EmojiUsage], ctaMap[adv.CTA], hashtagsMap[adv.Hashtags]),
		"Basado en TODA esta información, genera el post para LinkedIn.",
	)

	return Prompt{System: postSystemInstruction, User: strings.Join(sections, "\n\n")}
}

func BuildAutopilotPrompt(req AutopilotRequest) Prompt {
	adv := req.Advanced.WithDefaults()

	sections := []string{
		fmt.Sprintf("**IDIOMA DE SALIDA:** Genera todos los posts EXCLUSIVAMENTE en **%s**.", i18n.LanguageName(req.Language)),
		identitySection(req.Identity, true),
	}

	if s := inspirationSection(req.Inspiration, "Analiza los siguientes posts para entender el estilo, tono y formato que el usuario prefiere. Aplica estos aprendizajes al generar las nuevas sugerencias."); s != "" {
		sections = append(sections, s)
	}
	if strings.TrimSpace(req.KnowledgeBase) != "" {
		sections = append(sections, "**Base de Conocimiento del Usuario (Contexto Clave):**\nUtiliza la siguiente información como contexto para dar forma a los posts.\n\n---\n"+req.KnowledgeBase+"\n---")
	}
	if len(req.BestPractices) > 0 {
		sections = append(sections, "**Mejores Prácticas a Seguir:**\nAplica estrictamente las siguientes reglas al generar cada post:\n"+bulletList(req.BestPractices))
	}

	sections = append(sections, fmt.Sprintf("**Contexto e Inspiración Adicional:**\nBasado en TODA la información anterior, y la siguiente, genera %d borradores de posts para LinkedIn.", req.Frequency))

	if len(req.Themes) > 0 {
		sections = append(sections, "**Temas recurrentes identificados en su historial:**\n"+bulletList(req.Themes))
	}
	if topics := strings.TrimSpace(req.CustomTopics); topics != "" {
		sections = append(sections, "**Temas específicos proporcionados por el usuario (priorizar):**\n- "+topics)
	}

	sections = append(sections,
		fmt.Sprintf("**Directivas de Contenido Avanzadas:**\n- **Tono:** %s.\n- **Longitud del Post:** Debe ser %s.\n- **Llamada a la Acción (CTA):** %s.\n- **Estrategia de Hashtags:** %s.\n- **Público Objetivo:** %s",
			req.Tone, lengthMap[adv.Length], ctaMap[adv.CTA], hashtagsMap[adv.Hashtags], audience(adv)),
		"**Instrucciones para los posts:**\n1. Cada post debe ser único y estar alineado con el área de expertise del autor.\n2. Cada post debe tener una estructura clara, usando párrafos cortos y saltos de línea para que sea fácil de leer en dispositivos móviles.\n3. Varía el formato de los posts (ej. un consejo, una pregunta, una reflexión).",
		"Devuelve el resultado como un objeto JSON.",
	)

	return Prompt{System: autopilotSystemInstruction, User: strings.Join(sections, "\n\n")}
}

func BuildThemesPrompt(posts []string) Prompt {
	lines := make([]string, 0, len(posts))
	for _, p := range posts {
		lines = append(lines, fmt.Sprintf("- %q", p))
	}

	user := `Analiza el siguiente historial de posts de LinkedIn y resume los 3 a 5 temas más recurrentes.
Los temas deben ser concisos y claros (ej: "Inteligencia Artificial en Marketing", "Liderazgo de Equipos Remotos", "Desarrollo de Software Sostenible").

Historial de Posts:
` + strings.Join(lines, "\n") + `

Devuelve el resultado como un objeto JSON.`

	return Prompt{System: themesSystemInstruction, User: user}
}

func BuildEnhancePrompt(raw string) Prompt {
	return Prompt{System: enhanceSystemInstruction, User: fmt.Sprintf("Prompt del usuario: \"%s\"", raw)}
}

// CleanEnhancedPrompt trims the model output and strips one pair of wrapping
// double quotes.
func CleanEnhancedPrompt(text string) string {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, `"`)
	text = strings.TrimSuffix(text, `"`)
	return text
}
