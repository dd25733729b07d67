package generation

const mockTranscription = `Bem-vindos a esta aula sobre fotossíntese. A fotossíntese é um processo biológico fundamental que permite às plantas converter a energia luminosa em energia química.

Esse processo acontece principalmente nos cloroplastos das células vegetais e envolve duas fases principais:

1. As reações fotoquímicas (fase clara)
- Absorção da luz pela clorofila
- Produção de ATP e NADPH
- Liberação de oxigênio

2. O ciclo de Calvin (fase escura)
- Fixação do CO2
- Síntese de glicose
- Regeneração dos aceptores de CO2

A equação global da fotossíntese pode ser escrita assim:
6CO2 + 6H2O + energia luminosa → C6H12O6 + 6O2

Essa reação é essencial para a vida na Terra, pois produz o oxigênio que respiramos e forma a base da cadeia alimentar.`

type cardTemplate struct {
	question   string
	answer     string
	difficulty string
	tags       []string
}

var mockFlashcards = []cardTemplate{
	{
		question:   "O que é a fotossíntese?",
		answer:     "Um processo biológico que permite às plantas converter a energia luminosa em energia química.",
		difficulty: "easy",
		tags:       []string{"biologia", "fotossíntese"},
	},
	{
		question:   "Quais são as duas fases principais da fotossíntese?",
		answer:     "As reações fotoquímicas (fase clara) e o ciclo de Calvin (fase escura).",
		difficulty: "medium",
		tags:       []string{"biologia", "fotossíntese", "fases"},
	},
}

const (
	mockQuizTitle       = "Quiz sobre a fotossíntese"
	mockQuizQuestion    = "Onde ocorre principalmente a fotossíntese?"
	mockQuizCorrect     = 1
	mockQuizExplanation = "A fotossíntese ocorre principalmente nos cloroplastos das células vegetais."
)

var mockQuizOptions = []string{
	"Nas mitocôndrias",
	"Nos cloroplastos",
	"No núcleo",
	"Nos vacúolos",
}

var mockReplies = []string{
	"Com base na sua aula sobre fotossíntese, posso explicar: a fotossíntese é de fato um processo fundamental que permite às plantas converter a energia luminosa em energia química.",
	"Excelente pergunta! Segundo a sua transcrição, as duas fases principais são as reações fotoquímicas (fase clara) e o ciclo de Calvin (fase escura). Quer que eu detalhe alguma delas?",
	"Posso ajudar você a revisar esse conceito. Pelo seu conteúdo, a clorofila tem papel essencial na absorção da luz. Quer que eu faça um resumo dessa parte?",
	"Pela análise da sua aula, esta equação está correta: 6CO2 + 6H2O + energia luminosa → C6H12O6 + 6O2. Devo explicar cada elemento da reação?",
}
