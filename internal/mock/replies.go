package mock

import (
	"strings"

	"github.com/manduvi/mentor-tui/sdk/mentor"
)

// gapTopics maps keywords in a message to the knowledge gap recorded
// for the session.
var gapTopics = map[string]string{
	"fração":   "frações",
	"fracao":   "frações",
	"equação":  "equações de primeiro grau",
	"equacao":  "equações de primeiro grau",
	"gráfico":  "leitura de gráficos",
	"grafico":  "leitura de gráficos",
	"regra de": "regra de três",
}

// detectGaps appends topics mentioned in the message that are not yet
// in the gap list.
func detectGaps(message string, gaps []string) []string {
	lower := strings.ToLower(message)
	for keyword, topic := range gapTopics {
		if !strings.Contains(lower, keyword) {
			continue
		}
		seen := false
		for _, g := range gaps {
			if g == topic {
				seen = true
				break
			}
		}
		if !seen {
			gaps = append(gaps, topic)
		}
	}
	return gaps
}

// replyFor picks a canned reply for the message.
func replyFor(message, agentID string) (reply, nextTask string, sources []mentor.SourceHit) {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "olá"), strings.Contains(lower, "ola"), strings.Contains(lower, "oi"):
		return "Oi! Sou o Mentor Virtual do Instituto Manduvi. Em que posso ajudar nos seus estudos hoje?",
			"Me conte qual matéria você quer revisar.", nil

	case strings.Contains(lower, "fração"), strings.Contains(lower, "fracao"):
		return "Frações representam partes de um todo. O número de cima é o **numerador** e o de baixo é o **denominador**. Por exemplo, 3/4 significa três partes de quatro.",
			"Resolva: quanto é 1/2 + 1/4?",
			[]mentor.SourceHit{
				{Source: "matematica/fracoes.md", Score: mentor.Float(0.91), Snippet: "Uma fração indica quantas partes de um todo estamos considerando..."},
				{Source: "matematica/operacoes-basicas.md", Score: mentor.Float(0.78), Snippet: "Para somar frações com denominadores diferentes..."},
			}

	case strings.Contains(lower, "plano de estudo"), strings.Contains(lower, "cronograma"):
		return "Vamos montar um plano: comece com 25 minutos de estudo focado e 5 de pausa. Priorize as matérias em que você sente mais dificuldade.",
			"Liste as três matérias que mais te desafiam.", nil

	case agentID == "planner":
		return "Como planejador, sugiro dividir esse conteúdo em blocos menores e revisar um por dia.",
			"Escolha o primeiro bloco para começarmos.", nil

	default:
		return "Boa pergunta! Vamos por partes: " + message + " envolve conceitos que podemos explorar juntos. Quer que eu comece pelo básico?",
			"", nil
	}
}

// retrieverFixtures returns the canned retriever hits for a query.
func retrieverFixtures(q string) []mentor.SourceHit {
	if strings.TrimSpace(q) == "" {
		return nil
	}
	lower := strings.ToLower(q)
	if strings.Contains(lower, "nada") || strings.Contains(lower, "xyzzy") {
		return nil
	}
	return []mentor.SourceHit{
		{Source: "matematica/fracoes.md", Score: mentor.Float(0.89), Snippet: "Uma fração indica quantas partes de um todo estamos considerando. O numerador conta as partes e o denominador diz em quantas o todo foi dividido."},
		{Source: "matematica/operacoes-basicas.md", Score: mentor.Float(0.74), Snippet: "Adição, subtração, multiplicação e divisão formam a base das operações aritméticas."},
		{Source: "portugues/interpretacao.md", Score: mentor.Float(0.61), Snippet: "Interpretar um texto é identificar a ideia central e as informações que a sustentam."},
	}
}
