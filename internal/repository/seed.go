package repository

import (
	"time"

	"github.com/maheshrc27/kolink/internal/models"
)

const day = 24 * time.Hour

func ptr[T any](v T) *T { return &v }

// DemoPosts is the sample workspace shown on first run. Publication times are
// relative to now so the statistics page always has recent data.
func DemoPosts(now time.Time) []*models.Post {
	at := func(d time.Duration) *time.Time { return ptr(now.Add(d)) }

	posts := []*models.Post{
		{
			ID:         "dummy-1",
			Content:    "Este es un borrador de ejemplo. ¡Puedes programarlo, editarlo o eliminarlo!",
			Status:     models.PostStatusDraft,
			TaskStatus: models.TaskStatusTodo,
		},
		{
			ID:          "dummy-2",
			Content:     "Este es un post programado para mañana. Kolink se encargará de publicarlo por ti.",
			Image:       ptr("https://images.unsplash.com/photo-1611162617213-6d22e709c6d6?q=80&w=1974&auto=format&fit=crop"),
			Status:      models.PostStatusScheduled,
			ScheduledAt: at(day),
			TaskStatus:  models.TaskStatusInProgress,
		},
		{
			ID:          "dummy-3",
			Content:     "¡Gran noticia! Hemos lanzado nuestra nueva integración con la API de Gemini. Ahora puedes crear contenido aún más potente directamente desde tus herramientas. #AI #Developer #API",
			Status:      models.PostStatusScheduled,
			ScheduledAt: at(-2 * day),
			Views:       ptr[int64](8451),
			Likes:       ptr[int64](512),
			Comments:    ptr[int64](45),
			TaskStatus:  models.TaskStatusCompleted,
		},
		{
			ID:          "dummy-4",
			Content:     "Aquí van 3 consejos para mejorar tu engagement en LinkedIn:\n1. Haz preguntas abiertas.\n2. Publica de forma consistente.\n3. Interactúa con los comentarios.\n¿Cuál es tu mejor truco? #LinkedInTips #MarketingDigital",
			Status:      models.PostStatusScheduled,
			ScheduledAt: at(-5 * day),
			Views:       ptr[int64](12345),
			Likes:       ptr[int64](987),
			Comments:    ptr[int64](102),
			TaskStatus:  models.TaskStatusCompleted,
		},
		{
			ID:          "dummy-5",
			Content:     "Reflexionando sobre el futuro del trabajo remoto. ¿Estamos realmente preparados para un modelo híbrido a largo plazo? Me encantaría conocer vuestra opinión. #FutureOfWork #RemoteWork",
			Image:       ptr("https://images.unsplash.com/photo-1589998059171-988d887df646?q=80&w=2070&auto=format&fit=crop"),
			Status:      models.PostStatusScheduled,
			ScheduledAt: at(-10 * day),
			Views:       ptr[int64](7500),
			Likes:       ptr[int64](450),
			Comments:    ptr[int64](68),
			TaskStatus:  models.TaskStatusCompleted,
		},
		{
			ID:          "dummy-6",
			Content:     "Acabo de leer un libro fascinante sobre la psicología de la persuasión. La clave no está en lo que dices, sino en cómo lo dices. Un pequeño cambio en el enfoque puede duplicar los resultados. #Libros #Business",
			Status:      models.PostStatusScheduled,
			ScheduledAt: at(-25 * day),
			Views:       ptr[int64](15200),
			Likes:       ptr[int64](1100),
			Comments:    ptr[int64](150),
			TaskStatus:  models.TaskStatusCompleted,
		},
		{
			ID:          "dummy-7",
			Content:     "Nuestro equipo ha crecido un 50% este último trimestre. ¡Increíblemente orgulloso de lo que estamos construyendo juntos en Kolink! #Startup #Growth #Team",
			Image:       ptr("https://images.unsplash.com/photo-1521737604893-d14cc237f11d?q=80&w=1784&auto=format&fit=crop"),
			Status:      models.PostStatusScheduled,
			ScheduledAt: at(-40 * day),
			Views:       ptr[int64](25000),
			Likes:       ptr[int64](2300),
			Comments:    ptr[int64](320),
			TaskStatus:  models.TaskStatusCompleted,
		},
	}

	for _, p := range posts {
		p.CreatedAt = now
		p.UpdatedAt = now
	}
	return posts
}

func DemoKnowledge() []models.KnowledgeItem {
	return []models.KnowledgeItem{
		{
			ID:      "kb-1",
			Title:   "Sobre Kolink (Mi Producto)",
			Content: "Kolink es un micro-SaaS que ayuda a profesionales y empresas a crear contenido viral para LinkedIn usando IA. Las características clave son: Generador de Posts con plantillas, Autopilot para sugerencias automáticas, y una Base de Conocimiento para personalizar la IA.",
		},
		{
			ID:      "kb-2",
			Title:   "Tono de Voz de la Marca",
			Content: "El tono de Kolink debe ser: profesional pero cercano, experto pero no arrogante, innovador y enfocado en los beneficios para el usuario. Usar emojis con moderación. Siempre terminar con una pregunta para fomentar la conversación.",
		},
	}
}

func DemoInspiration() []models.InspirationPost {
	return []models.InspirationPost{
		{
			ID:      "insp-1",
			Content: "Acabo de pasar de 0 a 10,000€/mes en 90 días.\n\nSin página web.\nSin seguidores.\nSin un producto complejo.\n\n¿El secreto? Una oferta irresistible y un sistema de ventas simple.\n\nNo necesitas más.\n\nDeja de complicarte y enfócate en lo esencial.",
		},
		{
			ID:      "insp-2",
			Content: "La mayoría de la gente fracasa en LinkedIn por una razón:\n\nIntentan ser perfectos.\n\nPero la gente no conecta con la perfección.\nConecta con la autenticidad.\n\nMuestra tus dudas.\nComparte tus errores.\nHabla de tus miedos.\n\nLa vulnerabilidad es tu mayor superpoder aquí.",
		},
	}
}

func DemoIdentity() models.Identity {
	return models.Identity{
		Name:               "Aram",
		Occupation:         "AI Content Specialist @ Kolink",
		Bio:                "Especialista en contenido IA con más de 5 años de experiencia ayudando a startups B2B a crecer su presencia online. Apasionado por la tecnología y la comunicación.",
		CustomInstructions: "Usa un tono optimista y motivador. Incluye anécdotas personales cuando sea relevante.",
	}
}

func DemoNotifications(now time.Time) []models.Notification {
	return []models.Notification{
		{ID: "notif-1", Type: models.NotificationComment, Text: "Aram Miquel ha comentado tu post.", CreatedAt: now.Add(-5 * time.Minute)},
		{ID: "notif-2", Type: models.NotificationLike, Text: "A 15 personas más les ha gustado tu post sobre IA.", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "notif-3", Type: models.NotificationSystem, Read: true, Text: "¡Bienvenido a Kolink! Completa tu perfil para empezar.", CreatedAt: now.Add(-day)},
		{ID: "notif-4", Type: models.NotificationLike, Read: true, Text: "Tu post ha superado las 100 recomendaciones.", CreatedAt: now.Add(-2 * day)},
	}
}

func DemoHistory(now time.Time) []models.GenerationHistoryItem {
	return []models.GenerationHistoryItem{
		{ID: "hist-1", Content: "Este es un ejemplo de un post generado anteriormente sobre IA en marketing.", Date: now.Add(-2 * time.Hour)},
		{ID: "hist-2", Content: "Otro post del historial, esta vez sobre liderazgo en equipos remotos.", Date: now.Add(-day)},
	}
}

func DemoKeywords() []string {
	return []string{"Inteligencia Artificial", "Marketing Digital", "Crecimiento de Startups"}
}
