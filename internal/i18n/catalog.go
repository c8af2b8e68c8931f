package i18n

const (
	KeyTotalPosts          = "statistics.insights.totalPosts"
	KeyAvgImpressions      = "statistics.insights.avgImpressions"
	KeyBestPost            = "statistics.insights.bestPost"
	KeyTotalEngagement     = "statistics.insights.totalEngagement"
	KeyBestDay             = "statistics.insights.bestDay"
	KeyBestPostType        = "statistics.insights.bestPostType"
	KeyPostTypeWithImage   = "statistics.insights.postTypes.with_image"
	KeyPostTypeNoImage     = "statistics.insights.postTypes.without_image"
	KeyNoBestPost          = "statistics.insights.noBestPost"
	KeyDefaultTip          = "statistics.insights.defaultTip"
	KeyPostLive            = "notifications.postLive"
	KeyCreditsRefilled     = "notifications.creditsRefilled"
	KeyLevelUp             = "gamification.levelUp"
	KeyPracticeHook        = "personalization.practices.hook"
	KeyPracticeStory       = "personalization.practices.storytelling"
	KeyPracticePainPoints  = "personalization.practices.pain_points"
	KeyPracticeParagraphs  = "personalization.practices.short_paragraphs"
	KeyPracticeEndQuestion = "personalization.practices.end_with_question"
)

var catalog = map[string]map[string]string{
	"es": {
		KeyTotalPosts:          "Has publicado <strong>{{count}} posts</strong> en este periodo.",
		KeyAvgImpressions:      "Tus posts consiguen una media de <strong>{{avgImpressions}} impresiones</strong>.",
		KeyBestPost:            "Tu mejor post, «{{postTitle}}», alcanzó <strong>{{impressions}} impresiones</strong>.",
		KeyTotalEngagement:     "Has generado <strong>{{engagement}} interacciones</strong> entre likes y comentarios.",
		KeyBestDay:             "El <strong>{{day}}</strong> es el día en que tus posts logran más impresiones.",
		KeyBestPostType:        "Los posts <strong>{{type}}</strong> generan un <strong>{{percent}}% más</strong> de interacción.",
		KeyPostTypeWithImage:   "con imagen",
		KeyPostTypeNoImage:     "sin imagen",
		KeyNoBestPost:          "Todavía no hay datos suficientes para destacar un post.",
		KeyDefaultTip:          "Publica con constancia y responde a los comentarios en la primera hora para ganar alcance.",
		KeyPostLive:            "Tu post «{{snippet}}» ya está publicado.",
		KeyCreditsRefilled:     "Tus créditos se han renovado: ahora tienes {{credits}}.",
		KeyLevelUp:             "¡Has subido al nivel {{level}}!",
		KeyPracticeHook:        "Empieza con un gancho potente en la primera línea que despierte la curiosidad.",
		KeyPracticeStory:       "Usa storytelling: cuenta una experiencia personal o un caso real.",
		KeyPracticePainPoints:  "Menciona un problema concreto de la audiencia y cómo resolverlo.",
		KeyPracticeParagraphs:  "Escribe párrafos de una o dos frases con saltos de línea.",
		KeyPracticeEndQuestion: "Termina con una pregunta abierta que invite a comentar.",
	},
	"en": {
		KeyTotalPosts:          "You published <strong>{{count}} posts</strong> in this period.",
		KeyAvgImpressions:      "Your posts average <strong>{{avgImpressions}} impressions</strong>.",
		KeyBestPost:            "Your best post, \"{{postTitle}}\", reached <strong>{{impressions}} impressions</strong>.",
		KeyTotalEngagement:     "You generated <strong>{{engagement}} interactions</strong> across likes and comments.",
		KeyBestDay:             "<strong>{{day}}</strong> is the day your posts get the most impressions.",
		KeyBestPostType:        "Posts <strong>{{type}}</strong> get <strong>{{percent}}% more</strong> engagement.",
		KeyPostTypeWithImage:   "with an image",
		KeyPostTypeNoImage:     "without an image",
		KeyNoBestPost:          "There is not enough data yet to highlight a post.",
		KeyDefaultTip:          "Post consistently and reply to comments within the first hour to grow your reach.",
		KeyPostLive:            "Your post \"{{snippet}}\" is now live.",
		KeyCreditsRefilled:     "Your credits were renewed: you now have {{credits}}.",
		KeyLevelUp:             "You reached level {{level}}!",
		KeyPracticeHook:        "Open with a strong hook in the first line that sparks curiosity.",
		KeyPracticeStory:       "Use storytelling: share a personal experience or a real case.",
		KeyPracticePainPoints:  "Name a concrete audience pain point and how to solve it.",
		KeyPracticeParagraphs:  "Write paragraphs of one or two sentences with line breaks.",
		KeyPracticeEndQuestion: "End with an open question that invites comments.",
	},
	"fr": {
		KeyTotalPosts:          "Vous avez publié <strong>{{count}} posts</strong> sur cette période.",
		KeyAvgImpressions:      "Vos posts obtiennent en moyenne <strong>{{avgImpressions}} impressions</strong>.",
		KeyBestPost:            "Votre meilleur post, « {{postTitle}} », a atteint <strong>{{impressions}} impressions</strong>.",
		KeyTotalEngagement:     "Vous avez généré <strong>{{engagement}} interactions</strong> entre likes et commentaires.",
		KeyBestDay:             "Le <strong>{{day}}</strong> est le jour où vos posts obtiennent le plus d'impressions.",
		KeyBestPostType:        "Les posts <strong>{{type}}</strong> génèrent <strong>{{percent}}% d'interactions en plus</strong>.",
		KeyPostTypeWithImage:   "avec image",
		KeyPostTypeNoImage:     "sans image",
		KeyNoBestPost:          "Pas encore assez de données pour mettre un post en avant.",
		KeyDefaultTip:          "Publiez régulièrement et répondez aux commentaires dans la première heure pour gagner en portée.",
		KeyPostLive:            "Votre post « {{snippet}} » est maintenant publié.",
		KeyCreditsRefilled:     "Vos crédits ont été renouvelés : vous en avez maintenant {{credits}}.",
		KeyLevelUp:             "Vous avez atteint le niveau {{level}} !",
		KeyPracticeHook:        "Commencez par une accroche forte dès la première ligne.",
		KeyPracticeStory:       "Racontez une expérience personnelle ou un cas réel.",
		KeyPracticePainPoints:  "Citez un problème concret de l'audience et comment le résoudre.",
		KeyPracticeParagraphs:  "Écrivez des paragraphes d'une ou deux phrases avec des sauts de ligne.",
		KeyPracticeEndQuestion: "Terminez par une question ouverte qui invite à commenter.",
	},
}
